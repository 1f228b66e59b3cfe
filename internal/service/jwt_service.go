package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mindcare/internal/domain"
)

const (
	defaultSessionTTL = 2 * time.Hour
	sessionTokenType  = "session"
)

// JWTService emite y valida los tokens de sesión de chat.
type JWTService struct {
	secret     []byte
	sessionTTL time.Duration
	issuer     string
	store      SessionStore
	now        func() time.Time
}

type Claims struct {
	SessionID string `json:"sid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewJWTService(secret string, sessionTTL time.Duration) *JWTService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &JWTService{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		issuer:     "mindcare",
		store:      NewMemorySessionStore(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func NewJWTServiceWithStore(secret string, sessionTTL time.Duration, store SessionStore) *JWTService {
	svc := NewJWTService(secret, sessionTTL)
	if store != nil {
		svc.store = store
	}
	return svc
}

// IssueSession crea una sesión nueva con su token firmado.
func (s *JWTService) IssueSession() (domain.Session, error) {
	if len(s.secret) == 0 {
		return domain.Session{}, ErrJWTInvalid
	}
	now := s.now()
	sessionID := uuid.NewString()
	claims := Claims{
		SessionID: sessionID,
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return domain.Session{}, err
	}
	if s.store != nil {
		if err := s.store.Store(sessionID, s.sessionTTL); err != nil {
			return domain.Session{}, err
		}
	}
	return domain.Session{
		ID:        sessionID,
		Token:     signed,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}, nil
}

// ParseSessionToken valida firma, tipo y que la sesión siga activa.
func (s *JWTService) ParseSessionToken(token string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(token) == "" {
		return Claims{}, ErrJWTInvalid
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != sessionTokenType {
		return Claims{}, ErrJWTInvalid
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrJWTInvalid
	}
	if s.store != nil {
		ok, err := s.store.Exists(claims.SessionID)
		if err != nil || !ok {
			return Claims{}, ErrJWTInvalid
		}
	}
	return claims, nil
}

// EndSession revoca la sesión del token. Un token ya revocado es inválido.
func (s *JWTService) EndSession(token string) (string, error) {
	claims, err := s.ParseSessionToken(token)
	if err != nil {
		return "", err
	}
	if s.store == nil {
		return "", ErrJWTInvalid
	}
	if err := s.store.Revoke(claims.SessionID); err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

func (s *JWTService) parseToken(tokenString string) (Claims, error) {
	var claims Claims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

func (s *JWTService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.SessionID) == "" {
		return false
	}
	if claims.Subject != claims.SessionID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
