package leave

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string // resolved display name, may be empty
	LeaveType    string
	StartDate    calendar.Date
	EndDate      calendar.Date
	Status       LeaveStatus
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

func (r LeaveRequest) IsPending() bool {
	return r.Status == LeaveStatusPending
}
