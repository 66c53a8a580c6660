package apiclient

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const requestIDHeader = "X-Request-ID"

// sessionRoundTripper scopes every outgoing request to the session's tenant
// and tags it with a request id.
type sessionRoundTripper struct {
	base         http.RoundTripper
	sess         session.Context
	tenantHeader string
}

func (t *sessionRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	if tenant := t.sess.TenantID(); tenant != "" {
		req.Header.Set(t.tenantHeader, tenant)
	}
	if req.Header.Get(requestIDHeader) == "" {
		if id, err := uuid.NewV7(); err == nil {
			req.Header.Set(requestIDHeader, id.String())
		}
	}
	return t.base.RoundTrip(req)
}

// buildTransport layers bearer authentication over the session headers.
func buildTransport(base http.RoundTripper, sess session.Context, tenantHeader string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	var rt http.RoundTripper = &sessionRoundTripper{
		base:         base,
		sess:         sess,
		tenantHeader: tenantHeader,
	}
	if sess.AccessToken == "" {
		return rt
	}
	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: sess.AccessToken,
			TokenType:   "Bearer",
		}),
		Base: rt,
	}
}
