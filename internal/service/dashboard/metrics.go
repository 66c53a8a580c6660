package dashboard

import (
	"math"
	"sort"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/locale"
)

const (
	// BirthdayWindowDays is the inclusive look-ahead for upcoming birthdays.
	BirthdayWindowDays = 30
	// ListLimit caps every list on the dashboard.
	ListLimit = 5
	// Check-ins at or after LateThresholdHour:LateThresholdMinute are late.
	// Fixed business rule, not configurable per company or shift.
	LateThresholdHour   = 9
	LateThresholdMinute = 0
)

// ========== HEAD COUNT ==========

// TotalEmployees is the server-reported total for a paginated roster, else
// the number of non-deleted employees in it.
func TotalEmployees(roster *dashboard.EmployeeRoster) int {
	if roster == nil {
		return 0
	}
	if roster.ReportedTotal != nil {
		return *roster.ReportedTotal
	}
	total := 0
	for _, e := range roster.Employees {
		if !e.IsDeleted {
			total++
		}
	}
	return total
}

// ComputeStats derives the dashboard counters.
//
// TodayAbsences counts active employees with no time-log entry dated today.
// This is an approximation: approved leave, weekends and holidays are not
// taken into account, so a missing log does not prove an absence.
func ComputeStats(in dashboard.Inputs, today calendar.Date) dashboard.DashboardStats {
	stats := dashboard.DashboardStats{
		TotalEmployees: TotalEmployees(in.Roster),
		PendingLeaves:  len(pendingLeaves(in.LeaveRequests)),
		PendingTickets: len(pendingTickets(in.Tickets)),
	}
	if in.Roster == nil {
		return stats
	}

	present := PresentEmployeeIDs(TodayLogs(in.TimeLogs, today))
	for _, e := range in.Roster.Employees {
		if e.IsDeleted {
			continue
		}
		if e.IsActive() {
			stats.ActiveEmployees++
			if _, ok := present[e.ID]; !ok {
				stats.TodayAbsences++
			}
		}
		if e.HireDate.SameMonth(today) {
			stats.ThisMonthHires++
		}
	}
	return stats
}

// ========== TODAY'S ATTENDANCE ==========

// TodayLogs keeps the entries whose log date is today, in input order.
func TodayLogs(logs []attendance.TimeLogEntry, today calendar.Date) []attendance.TimeLogEntry {
	out := make([]attendance.TimeLogEntry, 0, len(logs))
	for _, entry := range logs {
		if entry.LogDate.Equal(today) {
			out = append(out, entry)
		}
	}
	return out
}

// PresentEmployeeIDs is the set of employees with at least one of the given entries.
func PresentEmployeeIDs(logs []attendance.TimeLogEntry) map[string]struct{} {
	present := make(map[string]struct{}, len(logs))
	for _, entry := range logs {
		if entry.EmployeeID != "" {
			present[entry.EmployeeID] = struct{}{}
		}
	}
	return present
}

// LateArrivals returns at most ListLimit alerts for check-ins at or after the
// late threshold, in encounter order. Entries without a readable check-in are skipped.
func LateArrivals(todayLogs []attendance.TimeLogEntry, labels *locale.Labels) []dashboard.AttendanceAlert {
	alerts := make([]dashboard.AttendanceAlert, 0, ListLimit)
	for _, entry := range todayLogs {
		if len(alerts) == ListLimit {
			break
		}
		hour, minute, ok := calendar.ParseClock(entry.CheckInTime)
		if !ok || !calendar.AtOrAfter(hour, minute, LateThresholdHour, LateThresholdMinute) {
			continue
		}
		name := orNotAvailable(entry.EmployeeName, labels)
		alerts = append(alerts, dashboard.AttendanceAlert{
			EmployeeName: name,
			CheckInTime:  entry.CheckInTime,
			Message:      labels.LateArrival(name, entry.CheckInTime),
		})
	}
	return alerts
}

// ========== BIRTHDAYS ==========

// UpcomingBirthdays lists employees whose next birthday falls within
// BirthdayWindowDays of today (both ends inclusive), nearest first, at most
// ListLimit entries. Deleted employees are skipped and each employee appears once.
func UpcomingBirthdays(roster *dashboard.EmployeeRoster, departments []department.Department, today calendar.Date, labels *locale.Labels) []dashboard.BirthdayEntry {
	entries := make([]dashboard.BirthdayEntry, 0)
	if roster == nil {
		return entries
	}

	names := departmentNames(departments)
	seen := make(map[string]struct{})
	for _, e := range roster.Employees {
		if e.IsDeleted || e.BirthDate == nil || e.BirthDate.IsZero() {
			continue
		}
		key := birthdayKey(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		next := e.BirthDate.NextOccurrence(today)
		days := today.DaysUntil(next)
		if days < 0 || days > BirthdayWindowDays {
			continue
		}

		departmentName := ""
		if e.DepartmentID != nil {
			departmentName = names[*e.DepartmentID]
		}
		entries = append(entries, dashboard.BirthdayEntry{
			EmployeeID:     e.ID,
			EmployeeName:   orNotAvailable(e.FullName, labels),
			DepartmentName: orNotAvailable(departmentName, labels),
			Date:           next,
			DateLabel:      labels.ShortDate(next),
			DaysUntil:      days,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysUntil < entries[j].DaysUntil
	})
	if len(entries) > ListLimit {
		entries = entries[:ListLimit]
	}
	return entries
}

// birthdayKey identifies an employee for deduplication; rows without an id
// fall back to name and birth date.
func birthdayKey(e employee.Employee) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return "name:" + strings.TrimSpace(e.FullName) + "|" + e.BirthDate.String()
}

// ========== DEPARTMENTS ==========

// DepartmentStats returns head count and today's attendance rate per
// department, in department list order. Empty departments have rate 0.
func DepartmentStats(departments []department.Department, roster *dashboard.EmployeeRoster, present map[string]struct{}) []dashboard.DepartmentStat {
	stats := make([]dashboard.DepartmentStat, 0, len(departments))
	for _, d := range departments {
		count, attended := 0, 0
		if roster != nil {
			for _, e := range roster.Employees {
				if e.IsDeleted || !e.InDepartment(d.ID) {
					continue
				}
				count++
				if _, ok := present[e.ID]; ok {
					attended++
				}
			}
		}
		stats = append(stats, dashboard.DepartmentStat{
			DepartmentID:   d.ID,
			DepartmentName: d.Name,
			EmployeeCount:  count,
			AttendanceRate: attendanceRate(attended, count),
		})
	}
	return stats
}

func attendanceRate(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(attended) / float64(total)))
}

// ========== LEAVES & TICKETS ==========

// RecentLeaves projects the first ListLimit pending requests, keeping the
// source's listing order (most recent first).
func RecentLeaves(requests []leave.LeaveRequest, labels *locale.Labels) []dashboard.LeaveSummary {
	pending := pendingLeaves(requests)
	if len(pending) > ListLimit {
		pending = pending[:ListLimit]
	}
	out := make([]dashboard.LeaveSummary, 0, len(pending))
	for _, r := range pending {
		out = append(out, dashboard.LeaveSummary{
			ID:           r.ID,
			EmployeeName: orNotAvailable(r.EmployeeName, labels),
			LeaveType:    r.LeaveType,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			Status:       r.Status,
		})
	}
	return out
}

// RecentTickets projects the first ListLimit open or in-progress tickets.
func RecentTickets(tickets []ticket.Ticket) []dashboard.TicketSummary {
	pending := pendingTickets(tickets)
	if len(pending) > ListLimit {
		pending = pending[:ListLimit]
	}
	out := make([]dashboard.TicketSummary, 0, len(pending))
	for _, t := range pending {
		out = append(out, dashboard.TicketSummary{
			ID:        t.ID,
			Title:     t.Title,
			Priority:  t.Priority,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

func pendingLeaves(requests []leave.LeaveRequest) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0)
	for _, r := range requests {
		if r.IsPending() {
			out = append(out, r)
		}
	}
	return out
}

func pendingTickets(tickets []ticket.Ticket) []ticket.Ticket {
	out := make([]ticket.Ticket, 0)
	for _, t := range tickets {
		if t.IsPending() {
			out = append(out, t)
		}
	}
	return out
}

func departmentNames(departments []department.Department) map[string]string {
	names := make(map[string]string, len(departments))
	for _, d := range departments {
		names[d.ID] = d.Name
	}
	return names
}

func orNotAvailable(s string, labels *locale.Labels) string {
	if s == "" {
		return labels.NotAvailable()
	}
	return s
}
