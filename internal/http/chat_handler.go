package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindcare/internal/service"
)

const (
	apiVersion        = "1.0.0"
	technicalErrorMsg = "I apologize for the technical difficulty. I'm still here to support you."
)

// ChatHandler mantiene dependencias para los endpoints de sesión, chat y monitor de estrés.
type ChatHandler struct {
	logger     *zap.Logger
	jwt        *service.JWTService
	chat       *service.ChatService
	monitor    *service.StressMonitor
	corpusSize int
	now        func() time.Time
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	chat *service.ChatService,
	monitor *service.StressMonitor,
	corpusSize int,
) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{
		logger:     logger,
		jwt:        jwtSvc,
		chat:       chat,
		monitor:    monitor,
		corpusSize: corpusSize,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Health maneja GET /health.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"message":        "MindCare wellness assistant is running",
		"version":        apiVersion,
		"corpus_entries": h.corpusSize,
		"timestamp":      h.now(),
	})
}

// CreateSession maneja POST /session.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	session, err := h.jwt.IssueSession()
	if err != nil {
		h.logger.Error("issue session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// EndSession maneja DELETE /session: revoca el token y borra el historial.
func (h *ChatHandler) EndSession(c *gin.Context) {
	token := c.GetString(sessionTokenKey)
	sessionID, err := h.jwt.EndSession(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if err := h.chat.Reset(c.Request.Context(), sessionID); err != nil {
		h.logger.Warn("clear history failed", zap.String("session_id", sessionID), zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}

// PostChat maneja POST /chat.
func (h *ChatHandler) PostChat(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.chat.Chat(c.Request.Context(), claims.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}
		h.logger.Error("chat turn failed", zap.String("session_id", claims.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "could not generate response",
			"response": technicalErrorMsg,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// StressMonitor maneja GET /stress-monitor.
func (h *ChatHandler) StressMonitor(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	summary, err := h.monitor.Summary(c.Request.Context(), claims.SessionID)
	if err != nil {
		h.logger.Error("stress summary failed", zap.String("session_id", claims.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stress history"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
