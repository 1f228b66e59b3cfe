package http

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mindcare/internal/service"
)

const (
	sessionClaimsKey = "session_claims"
	sessionTokenKey  = "session_token"
)

// SessionAuthMiddleware valida el token de sesión y guarda claims en el contexto.
func SessionAuthMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := jwtSvc.ParseSessionToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// GetSessionClaims obtiene claims de la sesión desde el contexto.
func GetSessionClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(sessionClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}

// RateLimitMiddleware limita mensajes por sesión. Sin limiter configurado no restringe.
func RateLimitMiddleware(limiter service.ChatRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		claims, ok := GetSessionClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
			c.Abort()
			return
		}
		decision := limiter.Allow(claims.SessionID)
		if !decision.Allowed {
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":               "too many messages, please slow down",
				"retry_after_seconds": retry,
			})
			c.Abort()
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Next()
	}
}
