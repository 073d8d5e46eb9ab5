package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sorabora/config"
	"sorabora/infras/jwt"
)

func newTokens(secret string) jwt.Tokens {
	cfg := &config.Config{}
	cfg.App.Name = "sorabora"
	cfg.Session.Secret = secret
	cfg.Session.TTLMinutes = 60

	return jwt.New(cfg)
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := newTokens("test-secret")

	signed, err := tokens.IssueSessionToken("session-id")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	sessionID, err := tokens.ParseSessionToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, "session-id", sessionID)
}

func TestTokens_ForgedTokenRejected(t *testing.T) {
	tokens := newTokens("test-secret")

	signed, err := tokens.IssueSessionToken("session-id")
	assert.NoError(t, err)

	t.Run("tampered payload", func(t *testing.T) {
		_, err := tokens.ParseSessionToken(signed + "x")

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newTokens("different-secret")

		_, err := other.ParseSessionToken(signed)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage cookie value", func(t *testing.T) {
		_, err := tokens.ParseSessionToken("not-a-token")

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestTokens_ExpiredTokenRejected(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "sorabora"
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLMinutes = -1

	tokens := jwt.New(cfg)

	signed, err := tokens.IssueSessionToken("session-id")
	assert.NoError(t, err)

	_, err = tokens.ParseSessionToken(signed)

	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
