// Package session carries the caller's credentials explicitly through the
// request layer instead of reading them from ambient state.
package session

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claims are the fields the dashboard reads from an access token.
type Claims struct {
	UserID     string
	EmployeeID string
	CompanyID  string
	Role       user.Role
}

// Context is one caller's session: the bearer credential, the company the
// caller selected (if any) and the hook to run when the backend rejects the
// credential.
type Context struct {
	AccessToken       string
	SelectedCompanyID string

	onInvalidate func()
	once         *sync.Once
}

// New returns a session. onInvalidate may be nil.
func New(accessToken, selectedCompanyID string, onInvalidate func()) Context {
	return Context{
		AccessToken:       accessToken,
		SelectedCompanyID: selectedCompanyID,
		onInvalidate:      onInvalidate,
		once:              &sync.Once{},
	}
}

// Claims decodes the access token without verifying it. The backend remains
// the authority on the token; decode failures yield zero Claims.
func (c Context) Claims() Claims {
	if c.AccessToken == "" {
		return Claims{}
	}
	token, err := jwt.ParseInsecure([]byte(c.AccessToken))
	if err != nil {
		return Claims{}
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}
	}
	return Claims{
		UserID:     stringClaim(claims, "user_id"),
		EmployeeID: stringClaim(claims, "employee_id"),
		CompanyID:  stringClaim(claims, "company_id"),
		Role:       user.Role(stringClaim(claims, "role")),
	}
}

// Role is shorthand for Claims().Role.
func (c Context) Role() user.Role {
	return c.Claims().Role
}

// TenantID returns the selected company when the caller's role may switch
// companies, and "" otherwise.
func (c Context) TenantID() string {
	if c.SelectedCompanyID == "" {
		return ""
	}
	if !c.Role().CanSwitchCompany() {
		return ""
	}
	return c.SelectedCompanyID
}

// CompanyID is the company the session acts on: the selected tenant when
// allowed, else the company in the token.
func (c Context) CompanyID() string {
	if tenant := c.TenantID(); tenant != "" {
		return tenant
	}
	return c.Claims().CompanyID
}

// Key identifies the session's dashboard (user and effective company).
func (c Context) Key() string {
	return c.Claims().UserID + "|" + c.CompanyID()
}

// Invalidate runs the invalidation hook at most once.
func (c Context) Invalidate() {
	if c.onInvalidate == nil || c.once == nil {
		return
	}
	c.once.Do(c.onInvalidate)
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return v
}
