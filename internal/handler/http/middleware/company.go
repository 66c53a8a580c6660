package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// CompanyHeader carries the company an administrator selected in the client.
const CompanyHeader = "X-Company-ID"

type selectedCompanyKey struct{}

// SelectedCompany stores the X-Company-ID header in the request context.
// Whether the selection is honoured depends on the caller's role.
func SelectedCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := strings.TrimSpace(r.Header.Get(CompanyHeader))
		if validator.IsEmpty(companyID) {
			next.ServeHTTP(w, r)
			return
		}

		if !validator.IsValidUUID(companyID) {
			response.HandleError(w, validator.ValidationErrors{
				{Field: CompanyHeader, Message: user.ErrCompanyIDInvalid.Error()},
			})
			return
		}

		ctx := context.WithValue(r.Context(), selectedCompanyKey{}, strings.ToLower(companyID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SelectedCompanyFromContext returns the selected company, or "".
func SelectedCompanyFromContext(ctx context.Context) string {
	companyID, _ := ctx.Value(selectedCompanyKey{}).(string)
	return companyID
}
