package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
)

type DashboardHandler interface {
	// GetDashboard returns the last good dashboard snapshot, building one if needed
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// RefreshDashboard rebuilds the dashboard from fresh data
	RefreshDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	tokens           jwt.Service
	loginURL         string
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, tokens jwt.Service, loginURL string) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		tokens:           tokens,
		loginURL:         loginURL,
	}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Latest(r.Context(), h.session(r))
	h.respond(w, result, err)
}

// RefreshDashboard handles POST /dashboard/refresh
func (h *dashboardHandlerImpl) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Refresh(r.Context(), h.session(r))
	h.respond(w, result, err)
}

// session builds the caller's session. When the HRIS API rejects the
// credential, the token is revoked here so later requests fail fast.
func (h *dashboardHandlerImpl) session(r *http.Request) session.Context {
	token := middleware.BearerToken(r)
	return session.New(token, middleware.SelectedCompanyFromContext(r.Context()), func() {
		h.tokens.RevokeToken(token)
		slog.Info("session invalidated by upstream", "path", r.URL.Path)
	})
}

func (h *dashboardHandlerImpl) respond(w http.ResponseWriter, result *dashboard.DashboardSnapshot, err error) {
	if errors.Is(err, auth.ErrSessionExpired) {
		response.SessionExpired(w, h.loginURL)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
