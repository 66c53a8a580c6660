package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
)

// EmployeeRoster is the canonical employee collection
type EmployeeRoster struct {
	Employees []employee.Employee
	// ReportedTotal is the server's totalElements when the source was paginated
	ReportedTotal *int
}

// Inputs is the workday snapshot fetched in one refresh cycle
type Inputs struct {
	Roster        *EmployeeRoster
	Departments   []department.Department
	LeaveRequests []leave.LeaveRequest
	Tickets       []ticket.Ticket
	TimeLogs      []attendance.TimeLogEntry
}

// Source provides the raw collections in canonical shape
type Source interface {
	// ListEmployees returns the company's employees
	ListEmployees(ctx context.Context) (EmployeeRoster, error)

	// ListDepartments returns the company's departments
	ListDepartments(ctx context.Context) ([]department.Department, error)

	// ListLeaveRequests returns leave requests in listing order (most recent first)
	ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error)

	// ListTickets returns company-wide or self-owned tickets depending on scope
	ListTickets(ctx context.Context, scope ticket.Scope) ([]ticket.Ticket, error)

	// ListTimeLogs returns time-log entries
	ListTimeLogs(ctx context.Context) ([]attendance.TimeLogEntry, error)
}

// SourceFactory binds a Source to one caller's session
type SourceFactory func(sess session.Context) (Source, error)
