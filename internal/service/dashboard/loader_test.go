package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	in   dashboard.Inputs
	errs map[string]error

	mu     sync.Mutex
	calls  []string
	scopes []ticket.Scope
}

func (f *fakeSource) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeSource) ListEmployees(context.Context) (dashboard.EmployeeRoster, error) {
	if err := f.record("employees"); err != nil {
		return dashboard.EmployeeRoster{}, err
	}
	if f.in.Roster == nil {
		return dashboard.EmployeeRoster{}, nil
	}
	return *f.in.Roster, nil
}

func (f *fakeSource) ListDepartments(context.Context) ([]department.Department, error) {
	if err := f.record("departments"); err != nil {
		return nil, err
	}
	return f.in.Departments, nil
}

func (f *fakeSource) ListLeaveRequests(context.Context) ([]leave.LeaveRequest, error) {
	if err := f.record("leave_requests"); err != nil {
		return nil, err
	}
	return f.in.LeaveRequests, nil
}

func (f *fakeSource) ListTickets(_ context.Context, scope ticket.Scope) ([]ticket.Ticket, error) {
	f.mu.Lock()
	f.scopes = append(f.scopes, scope)
	f.mu.Unlock()
	if err := f.record("tickets"); err != nil {
		return nil, err
	}
	return f.in.Tickets, nil
}

func (f *fakeSource) ListTimeLogs(context.Context) ([]attendance.TimeLogEntry, error) {
	if err := f.record("time_logs"); err != nil {
		return nil, err
	}
	return f.in.TimeLogs, nil
}

func newTestLoader(src dashboard.Source, pauses *[]time.Duration, calls func() []string, seen *[]string) *Loader {
	l := NewLoader(src, DefaultTierPause)
	l.sleep = func(ctx context.Context, d time.Duration) error {
		*pauses = append(*pauses, d)
		if calls != nil {
			*seen = append(*seen, calls()...)
		}
		return ctx.Err()
	}
	return l
}

func TestLoadInputs_TiersAndPause(t *testing.T) {
	src := &fakeSource{in: fixtureInputs()}
	var pauses []time.Duration
	var beforePause []string
	l := newTestLoader(src, &pauses, func() []string {
		src.mu.Lock()
		defer src.mu.Unlock()
		return append([]string(nil), src.calls...)
	}, &beforePause)

	in, err := l.LoadInputs(context.Background(), user.RoleOwner)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{DefaultTierPause}, pauses)
	assert.Equal(t, []string{"employees", "departments"}, beforePause)
	assert.ElementsMatch(t, []string{"employees", "departments", "leave_requests", "tickets", "time_logs"}, src.calls)
	assert.Len(t, in.Roster.Employees, 7)
	assert.Len(t, in.TimeLogs, 4)
}

func TestLoadInputs_TicketScopeByRole(t *testing.T) {
	tests := []struct {
		role  user.Role
		scope ticket.Scope
	}{
		{user.RoleAdmin, ticket.ScopeCompany},
		{user.RoleOwner, ticket.ScopeCompany},
		{user.RoleManager, ticket.ScopeCompany},
		{user.RoleEmployee, ticket.ScopeOwn},
		{user.RolePending, ticket.ScopeOwn},
		{user.Role(""), ticket.ScopeOwn},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			src := &fakeSource{in: fixtureInputs()}
			var pauses []time.Duration
			_, err := newTestLoader(src, &pauses, nil, nil).LoadInputs(context.Background(), tt.role)
			require.NoError(t, err)
			assert.Equal(t, []ticket.Scope{tt.scope}, src.scopes)
		})
	}
}

func TestLoadInputs_PartialFailureFallsBackToEmpty(t *testing.T) {
	src := &fakeSource{
		in: fixtureInputs(),
		errs: map[string]error{
			"departments": errors.New("connection reset"),
			"tickets":     errors.New("upstream returned 500"),
		},
	}
	var pauses []time.Duration

	in, err := newTestLoader(src, &pauses, nil, nil).LoadInputs(context.Background(), user.RoleOwner)
	require.NoError(t, err)

	assert.Len(t, in.Roster.Employees, 7)
	assert.NotNil(t, in.Departments)
	assert.Empty(t, in.Departments)
	assert.NotNil(t, in.Tickets)
	assert.Empty(t, in.Tickets)
	assert.Len(t, in.LeaveRequests, 3)
	assert.Len(t, in.TimeLogs, 4)

	vm := BuildViewModel(in, user.RoleOwner, testNow, english)
	assert.Equal(t, 6, vm.Stats.TotalEmployees)
	assert.Equal(t, 0, vm.Stats.PendingTickets)
	assert.Empty(t, vm.DepartmentStats)
	assert.Equal(t, "N/A", vm.UpcomingBirthdays[0].DepartmentName)
}

func TestLoadInputs_SecondaryTierFailuresFallBackToEmpty(t *testing.T) {
	src := &fakeSource{
		in: fixtureInputs(),
		errs: map[string]error{
			"leave_requests": errors.New("upstream returned 502"),
			"tickets":        errors.New("upstream returned 500"),
			"time_logs":      errors.New("connection refused"),
		},
	}
	var pauses []time.Duration

	in, err := newTestLoader(src, &pauses, nil, nil).LoadInputs(context.Background(), user.RoleOwner)
	require.NoError(t, err)

	assert.NotNil(t, in.LeaveRequests)
	assert.Empty(t, in.LeaveRequests)
	assert.NotNil(t, in.Tickets)
	assert.Empty(t, in.Tickets)
	assert.NotNil(t, in.TimeLogs)
	assert.Empty(t, in.TimeLogs)

	vm := BuildViewModel(in, user.RoleOwner, testNow, english)
	assert.Equal(t, 0, vm.Stats.PendingLeaves)
	assert.Equal(t, 0, vm.Stats.PendingTickets)
	assert.Equal(t, 6, vm.Stats.TotalEmployees)
	assert.Equal(t, 4, vm.Stats.ActiveEmployees)
	// no time logs: every active employee counts as absent
	assert.Equal(t, vm.Stats.ActiveEmployees, vm.Stats.TodayAbsences)
	assert.Empty(t, vm.RecentLeaves)
	assert.Empty(t, vm.RecentTickets)
	assert.Empty(t, vm.AttendanceAlerts)
	require.Len(t, vm.DepartmentStats, 3)
	for _, d := range vm.DepartmentStats {
		assert.Equal(t, 0, d.AttendanceRate, d.DepartmentName)
	}
}

func TestLoadInputs_EmployeeFailureYieldsEmptyRoster(t *testing.T) {
	src := &fakeSource{in: fixtureInputs(), errs: map[string]error{"employees": errors.New("boom")}}
	var pauses []time.Duration

	in, err := newTestLoader(src, &pauses, nil, nil).LoadInputs(context.Background(), user.RoleOwner)
	require.NoError(t, err)

	require.NotNil(t, in.Roster)
	assert.NotNil(t, in.Roster.Employees)
	assert.Empty(t, in.Roster.Employees)
}

func TestLoadInputs_SessionExpiredAborts(t *testing.T) {
	for _, failing := range []string{"employees", "departments", "time_logs"} {
		t.Run(failing, func(t *testing.T) {
			src := &fakeSource{in: fixtureInputs(), errs: map[string]error{failing: auth.ErrSessionExpired}}
			var pauses []time.Duration

			_, err := newTestLoader(src, &pauses, nil, nil).LoadInputs(context.Background(), user.RoleOwner)
			assert.ErrorIs(t, err, auth.ErrSessionExpired)
		})
	}
}

func TestLoadInputs_SessionExpiredSkipsSecondaryTier(t *testing.T) {
	src := &fakeSource{in: fixtureInputs(), errs: map[string]error{"employees": auth.ErrSessionExpired}}
	var pauses []time.Duration

	_, err := newTestLoader(src, &pauses, nil, nil).LoadInputs(context.Background(), user.RoleOwner)
	require.ErrorIs(t, err, auth.ErrSessionExpired)

	assert.Equal(t, []string{"employees"}, src.calls)
	assert.Empty(t, pauses)
}

func TestLoadInputs_CancelledContext(t *testing.T) {
	src := &fakeSource{in: fixtureInputs()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(src, time.Second).LoadInputs(ctx, user.RoleOwner)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLoader_NegativePause(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewLoader(&fakeSource{}, -time.Second).pause)
}
