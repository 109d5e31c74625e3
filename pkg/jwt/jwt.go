package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Sylvio143/G-stagiaire/config"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expiré")
	ErrTokenInvalid = errors.New("token invalide")
)

// Claims are the custom JWT claims carried by both token kinds.
type Claims struct {
	CompteDocumentID string `json:"compteDocumentId"`
	TypeCompte       string `json:"typeCompte"`
	EntityDocumentID string `json:"entityDocumentId,omitempty"`
	TokenType        string `json:"tokenType"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager signs and verifies tokens with a single HMAC secret.
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager creates the JWT manager.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken issues a short-lived token for API calls.
func (m *Manager) GenerateAccessToken(compteDocumentID, typeCompte, entityDocumentID string) (string, error) {
	return m.generate(compteDocumentID, typeCompte, entityDocumentID, TokenAccess, m.accessTokenTTL)
}

// GenerateRefreshToken issues the longer-lived token used to renew the pair.
func (m *Manager) GenerateRefreshToken(compteDocumentID, typeCompte, entityDocumentID string) (string, error) {
	return m.generate(compteDocumentID, typeCompte, entityDocumentID, TokenRefresh, m.refreshTokenTTL)
}

func (m *Manager) generate(compteDocumentID, typeCompte, entityDocumentID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		CompteDocumentID: compteDocumentID,
		TypeCompte:       typeCompte,
		EntityDocumentID: entityDocumentID,
		TokenType:        tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "g-stagiaire",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies the signature and expiry, then returns the claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
