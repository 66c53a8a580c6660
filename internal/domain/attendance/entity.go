package attendance

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

// TimeLogEntry is one check-in/check-out record.
type TimeLogEntry struct {
	ID         string
	EmployeeID string
	// EmployeeName is the resolved display name; empty when none could be resolved.
	EmployeeName string
	LogDate      calendar.Date
	CheckInTime  string // HH:MM[:SS], empty when absent
	CheckOutTime string
}

// HasCheckIn reports whether the entry carries a check-in time.
func (e TimeLogEntry) HasCheckIn() bool {
	return e.CheckInTime != ""
}
