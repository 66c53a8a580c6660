package dashboard

import "errors"

var (
	ErrEmployeeFallbackMissing = errors.New("employee roster missing after fallback")
	ErrSnapshotUnavailable     = errors.New("dashboard data is temporarily unavailable")
	ErrSourceNotConfigured     = errors.New("dashboard source not configured")
	ErrCompanyScopeMissing     = errors.New("no company associated with this session")
)
