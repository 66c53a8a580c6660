package dashboard

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/locale"
)

// BuildViewModel aggregates one refresh cycle's inputs into the dashboard.
// It is a pure function of its arguments: the same inputs, role, now and
// labels always produce the same view model. "Today" is the calendar date of
// now in now's location.
func BuildViewModel(in dashboard.Inputs, role user.Role, now time.Time, labels *locale.Labels) dashboard.DashboardViewModel {
	today := calendar.FromTime(now)
	todayLogs := TodayLogs(in.TimeLogs, today)
	present := PresentEmployeeIDs(todayLogs)

	return dashboard.DashboardViewModel{
		Role:              role,
		Stats:             ComputeStats(in, today),
		RecentLeaves:      RecentLeaves(in.LeaveRequests, labels),
		RecentTickets:     RecentTickets(in.Tickets),
		UpcomingBirthdays: UpcomingBirthdays(in.Roster, in.Departments, today, labels),
		AttendanceAlerts:  LateArrivals(todayLogs, labels),
		DepartmentStats:   DepartmentStats(in.Departments, in.Roster, present),
		GeneratedAt:       now,
	}
}
