package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Latest returns the last good snapshot for the session, refreshing when there is none
	Latest(ctx context.Context, sess session.Context) (*DashboardSnapshot, error)

	// Refresh fetches and aggregates a new snapshot for the session
	Refresh(ctx context.Context, sess session.Context) (*DashboardSnapshot, error)
}
