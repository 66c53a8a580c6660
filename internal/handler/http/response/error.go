package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrSessionExpired):
		SessionExpired(w, "")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Dashboard domain errors
	case errors.Is(err, dashboard.ErrCompanyScopeMissing):
		Forbidden(w, "No company is associated with this account")
	case errors.Is(err, apiclient.ErrRateLimited):
		TooManyRequests(w, "The HRIS API is rate limiting requests, try again shortly")
	case errors.Is(err, dashboard.ErrSnapshotUnavailable):
		ServiceUnavailable(w, "Dashboard data is temporarily unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
