package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

// DefaultTierPause separates the critical fetches from the secondary ones.
const DefaultTierPause = 500 * time.Millisecond

// Loader fetches one refresh cycle's inputs in two tiers.
//
// The critical tier (employees, then departments) runs sequentially. After a
// pause the secondary tier (leave requests, tickets, time logs) runs
// concurrently. A failing source degrades to an empty collection; only an
// expired session or a cancelled context aborts the load.
type Loader struct {
	source dashboard.Source
	pause  time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewLoader returns a loader over source. A negative pause is treated as zero.
func NewLoader(source dashboard.Source, pause time.Duration) *Loader {
	if pause < 0 {
		pause = 0
	}
	return &Loader{
		source: source,
		pause:  pause,
		sleep:  sleepContext,
	}
}

// LoadInputs fetches every collection the dashboard needs. role decides the
// ticket scope: elevated roles see company-wide tickets, others their own.
func (l *Loader) LoadInputs(ctx context.Context, role user.Role) (dashboard.Inputs, error) {
	var in dashboard.Inputs

	// Critical tier
	roster, err := l.source.ListEmployees(ctx)
	if err != nil {
		if err := absorb(ctx, "employees", err); err != nil {
			return dashboard.Inputs{}, err
		}
		roster = dashboard.EmployeeRoster{Employees: []employee.Employee{}}
	}
	in.Roster = &roster

	departments, err := l.source.ListDepartments(ctx)
	if err != nil {
		if err := absorb(ctx, "departments", err); err != nil {
			return dashboard.Inputs{}, err
		}
		departments = nil
	}
	in.Departments = departments

	if err := l.sleep(ctx, l.pause); err != nil {
		return dashboard.Inputs{}, err
	}

	// Secondary tier
	scope := ticket.ScopeOwn
	if role.IsElevated() {
		scope = ticket.ScopeCompany
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		requests, err := l.source.ListLeaveRequests(gCtx)
		if err != nil {
			return absorb(gCtx, "leave_requests", err)
		}
		in.LeaveRequests = requests
		return nil
	})
	g.Go(func() error {
		tickets, err := l.source.ListTickets(gCtx, scope)
		if err != nil {
			return absorb(gCtx, "tickets", err)
		}
		in.Tickets = tickets
		return nil
	})
	g.Go(func() error {
		logs, err := l.source.ListTimeLogs(gCtx)
		if err != nil {
			return absorb(gCtx, "time_logs", err)
		}
		in.TimeLogs = logs
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard.Inputs{}, err
	}

	if in.Roster == nil {
		return dashboard.Inputs{}, dashboard.ErrEmployeeFallbackMissing
	}
	return withEmptyFallbacks(in), nil
}

// absorb decides whether a source error aborts the load. Terminal errors are
// returned; anything else is logged and the source falls back to empty.
func absorb(ctx context.Context, source string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, auth.ErrSessionExpired) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return fmt.Errorf("failed to load %s: %w", source, err)
	}
	slog.Warn("dashboard source failed, using empty fallback", "source", source, "error", err)
	return nil
}

func withEmptyFallbacks(in dashboard.Inputs) dashboard.Inputs {
	if in.Roster.Employees == nil {
		in.Roster.Employees = []employee.Employee{}
	}
	if in.Departments == nil {
		in.Departments = []department.Department{}
	}
	if in.LeaveRequests == nil {
		in.LeaveRequests = []leave.LeaveRequest{}
	}
	if in.Tickets == nil {
		in.Tickets = []ticket.Ticket{}
	}
	if in.TimeLogs == nil {
		in.TimeLogs = []attendance.TimeLogEntry{}
	}
	return in
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
