package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, svc Service, exp time.Time) string {
	t.Helper()
	_, token, err := svc.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "owner",
		"type":    "access",
		"exp":     exp.Unix(),
	})
	require.NoError(t, err)
	return token
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("secret")
	token := signToken(t, svc, time.Now().Add(time.Hour))

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRevokeToken_PrunesExpiredEntries(t *testing.T) {
	svc := NewJWTService("secret").(*JWTService)
	start := time.Now()
	svc.now = func() time.Time { return start }

	svc.RevokeToken("not-a-jwt")
	assert.True(t, svc.IsTokenRevoked("not-a-jwt"))

	svc.now = func() time.Time { return start.Add(revocationGrace + time.Minute) }
	svc.RevokeToken("another")

	assert.False(t, svc.IsTokenRevoked("not-a-jwt"))
	assert.True(t, svc.IsTokenRevoked("another"))
}

func TestRevokeToken_EntryLivesUntilTokenExpiry(t *testing.T) {
	svc := NewJWTService("secret").(*JWTService)
	start := time.Now()
	svc.now = func() time.Time { return start }
	token := signToken(t, svc, start.Add(time.Hour))

	svc.RevokeToken(token)
	assert.Equal(t, start.Add(time.Hour).Unix(), svc.revokedTokens[token])
}
