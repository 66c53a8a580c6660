package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
	"github.com/jackc/pgx/v5"
)

type dashboardSourceImpl struct {
	db        database.Querier
	companyID string
}

// NewDashboardSource reads the dashboard collections of one company straight from the database
func NewDashboardSource(db database.Querier, companyID string) dashboard.Source {
	return &dashboardSourceImpl{db: db, companyID: companyID}
}

// NewDashboardSourceFactory scopes a database source to the session's company
func NewDashboardSourceFactory(db *database.DB) dashboard.SourceFactory {
	return func(sess session.Context) (dashboard.Source, error) {
		companyID := sess.CompanyID()
		if companyID == "" {
			return nil, dashboard.ErrCompanyScopeMissing
		}
		return NewDashboardSource(db, companyID), nil
	}
}

// ListEmployees implements dashboard.Source. Employment status is stored in
// lower case (active, resigned, terminated); only "active" maps onto a
// roster status the dashboard counts as active. The schema places employees
// in branches and positions, not departments, so DepartmentID stays nil.
func (r *dashboardSourceImpl) ListEmployees(ctx context.Context) (dashboard.EmployeeRoster, error) {
	query := `
		SELECT id, full_name, UPPER(employment_status), hire_date, dob, deleted_at IS NOT NULL
		FROM employees
		WHERE company_id = $1
		ORDER BY full_name
	`

	rows, err := r.db.Query(ctx, query, r.companyID)
	if err != nil {
		return dashboard.EmployeeRoster{}, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var (
			e        employee.Employee
			status   string
			hireDate time.Time
			dob      *time.Time
		)
		if err := rows.Scan(&e.ID, &e.FullName, &status, &hireDate, &dob, &e.IsDeleted); err != nil {
			return dashboard.EmployeeRoster{}, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.EmploymentStatus = employee.EmploymentStatus(status)
		e.HireDate = calendar.FromTime(hireDate)
		if dob != nil {
			d := calendar.FromTime(*dob)
			e.BirthDate = &d
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return dashboard.EmployeeRoster{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return dashboard.EmployeeRoster{Employees: employees}, nil
}

// ListDepartments implements dashboard.Source. The HRIS schema has no
// departments table, so the database source reports none and the
// department breakdown falls back to its empty state.
func (r *dashboardSourceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return []department.Department{}, nil
}

// ListLeaveRequests implements dashboard.Source.
func (r *dashboardSourceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `
		SELECT lr.id, lr.employee_id, e.full_name, lt.name, lr.start_date, lr.end_date,
			CASE lr.status
				WHEN 'waiting_approval' THEN 'PENDING'
				WHEN 'approved' THEN 'APPROVED'
				ELSE 'REJECTED'
			END
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		JOIN employees e ON lr.employee_id = e.id
		WHERE e.company_id = $1
		ORDER BY lr.submitted_at DESC
	`

	rows, err := r.db.Query(ctx, query, r.companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (leave.LeaveRequest, error) {
		var (
			lr         leave.LeaveRequest
			status     string
			start, end time.Time
		)
		err := row.Scan(&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.LeaveType, &start, &end, &status)
		lr.StartDate = calendar.FromTime(start)
		lr.EndDate = calendar.FromTime(end)
		lr.Status = leave.LeaveStatus(status)
		return lr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan leave requests: %w", err)
	}
	return requests, nil
}

// ListTickets implements dashboard.Source. Tickets live in the helpdesk
// service behind the API; the HRIS schema has no ticket table.
func (r *dashboardSourceImpl) ListTickets(ctx context.Context, scope ticket.Scope) ([]ticket.Ticket, error) {
	return []ticket.Ticket{}, nil
}

// ListTimeLogs implements dashboard.Source. Only attendances from the last two
// days with a clock-in are read; the dashboard looks at today's entries.
func (r *dashboardSourceImpl) ListTimeLogs(ctx context.Context) ([]attendance.TimeLogEntry, error) {
	query := `
		SELECT a.id, a.employee_id, e.full_name, a.date,
			TO_CHAR(a.clock_in, 'HH24:MI:SS'),
			COALESCE(TO_CHAR(a.clock_out, 'HH24:MI:SS'), '')
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.company_id = $1 AND a.date >= CURRENT_DATE - 1 AND a.clock_in IS NOT NULL
		ORDER BY a.clock_in ASC
	`

	rows, err := r.db.Query(ctx, query, r.companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (attendance.TimeLogEntry, error) {
		var (
			entry   attendance.TimeLogEntry
			logDate time.Time
		)
		err := row.Scan(&entry.ID, &entry.EmployeeID, &entry.EmployeeName, &logDate, &entry.CheckInTime, &entry.CheckOutTime)
		entry.LogDate = calendar.FromTime(logDate)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan time logs: %w", err)
	}
	return logs, nil
}
