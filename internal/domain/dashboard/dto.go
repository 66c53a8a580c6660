package dashboard

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

// ========== VIEW MODEL ==========

// DashboardViewModel is the fully aggregated, presentation-ready dashboard
type DashboardViewModel struct {
	Role              user.Role         `json:"role"`
	Stats             DashboardStats    `json:"stats"`
	RecentLeaves      []LeaveSummary    `json:"recent_leaves"`
	RecentTickets     []TicketSummary   `json:"recent_tickets"`
	UpcomingBirthdays []BirthdayEntry   `json:"upcoming_birthdays"`
	AttendanceAlerts  []AttendanceAlert `json:"attendance_alerts"`
	DepartmentStats   []DepartmentStat  `json:"department_stats"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

// DashboardSnapshot wraps the view model handed to presentation.
// When a refresh fails, the last good view model is returned with Stale set
// and Notice carrying the error to show inline.
type DashboardSnapshot struct {
	ViewModel   DashboardViewModel `json:"view_model"`
	RefreshedAt time.Time          `json:"refreshed_at"`
	Stale       bool               `json:"stale"`
	Notice      string             `json:"notice,omitempty"`
}

// ========== STATS ==========

// DashboardStats holds the head-count and workload counters
type DashboardStats struct {
	TotalEmployees  int `json:"total_employees"`
	ActiveEmployees int `json:"active_employees"` // ACTIVE and not deleted
	PendingLeaves   int `json:"pending_leaves"`   // status PENDING
	PendingTickets  int `json:"pending_tickets"`  // OPEN or IN_PROGRESS
	TodayAbsences   int `json:"today_absences"`   // active employees without a time log today
	ThisMonthHires  int `json:"this_month_hires"` // hire date in the current month
}

// ========== LISTS ==========

// BirthdayEntry is one upcoming birthday within the window
type BirthdayEntry struct {
	EmployeeID     string        `json:"employee_id"`
	EmployeeName   string        `json:"employee_name"`
	DepartmentName string        `json:"department_name"`
	Date           calendar.Date `json:"date"`
	DateLabel      string        `json:"date_label"` // e.g. "Oct 16"
	DaysUntil      int           `json:"days_until"`
}

// AttendanceAlert flags a late check-in today
type AttendanceAlert struct {
	EmployeeName string `json:"employee_name"`
	CheckInTime  string `json:"check_in_time"`
	Message      string `json:"message"`
}

// DepartmentStat is the per-department head count and attendance rate
type DepartmentStat struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	EmployeeCount  int    `json:"employee_count"`
	AttendanceRate int    `json:"attendance_rate"` // 0-100
}

// LeaveSummary is a pending leave request projected for display
type LeaveSummary struct {
	ID           string            `json:"id"`
	EmployeeName string            `json:"employee_name"`
	LeaveType    string            `json:"leave_type"`
	StartDate    calendar.Date     `json:"start_date"`
	EndDate      calendar.Date     `json:"end_date"`
	Status       leave.LeaveStatus `json:"status"`
}

// TicketSummary is a pending ticket projected for display
type TicketSummary struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Priority  ticket.Priority `json:"priority"`
	Status    ticket.Status   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
