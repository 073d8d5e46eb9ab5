package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"sorabora/config"
	"sorabora/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// SessionClaims is the payload of the session cookie token. The cookie only
// carries the session ID; all session state lives server-side.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Tokens signs and validates the session cookie value. A forged or expired
// cookie never resolves to a session ID.
type Tokens interface {
	IssueSessionToken(sessionID string) (string, error)
	ParseSessionToken(token string) (sessionID string, err error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) Tokens {
	return &Service{
		config: cfg,
	}
}

// IssueSessionToken wraps the session ID in a signed HS256 token with the
// configured session lifetime.
func (s *Service) IssueSessionToken(sessionID string) (string, error) {
	now := timezone.Now()

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.App.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.Session.TTLMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken validates the signature and expiry and returns the
// embedded session ID.
func (s *Service) ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	})

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpiredToken
	default:
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidClaim
	}

	return claims.SessionID, nil
}
