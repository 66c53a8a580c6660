package session

import (
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "0192a4b0-7c1e-7d2f-8a3b-4c5d6e7f8a9b"

func signToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	b := jwt.NewBuilder()
	for k, v := range claims {
		b = b.Claim(k, v)
	}
	tok, err := b.Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("some-other-secret")))
	require.NoError(t, err)
	return string(signed)
}

func TestClaims_DecodesWithoutVerification(t *testing.T) {
	token := signToken(t, map[string]interface{}{
		"user_id":    "user-1",
		"company_id": "company-1",
		"role":       "manager",
	})

	claims := New(token, "", nil).Claims()
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, user.RoleManager, claims.Role)
}

func TestClaims_MalformedTokenIsSwallowed(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		sess := New(token, testCompanyID, nil)
		assert.Equal(t, Claims{}, sess.Claims(), token)
		assert.Equal(t, "", sess.TenantID(), token)
	}
}

func TestTenantID(t *testing.T) {
	admin := signToken(t, map[string]interface{}{"role": "admin", "company_id": "home"})
	owner := signToken(t, map[string]interface{}{"role": "owner", "company_id": "home"})

	assert.Equal(t, testCompanyID, New(admin, testCompanyID, nil).TenantID())
	assert.Equal(t, "", New(admin, "", nil).TenantID())
	assert.Equal(t, "", New(owner, testCompanyID, nil).TenantID())

	assert.Equal(t, testCompanyID, New(admin, testCompanyID, nil).CompanyID())
	assert.Equal(t, "home", New(owner, testCompanyID, nil).CompanyID())
}

func TestInvalidate_RunsOnce(t *testing.T) {
	calls := 0
	sess := New("token", "", func() { calls++ })

	sess.Invalidate()
	sess.Invalidate()
	copied := sess
	copied.Invalidate()

	assert.Equal(t, 1, calls)
	assert.NotPanics(t, func() { New("token", "", nil).Invalidate() })
	assert.NotPanics(t, func() { Context{}.Invalidate() })
}
