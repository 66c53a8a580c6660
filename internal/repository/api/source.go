// Package api implements dashboard.Source on top of the HRIS REST API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/session"
)

const (
	pathEmployees     = "/employees"
	pathDepartments   = "/departments"
	pathLeaveRequests = "/leave-requests"
	pathTickets       = "/tickets"
	pathMyTickets     = "/tickets/me"
	pathTimeLogs      = "/time-logs"

	listPageSize = 1000
)

// Getter fetches the data member of an API response.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
}

type sourceImpl struct {
	client Getter
}

// NewSource returns a dashboard.Source reading from client.
func NewSource(client Getter) dashboard.Source {
	return &sourceImpl{client: client}
}

// NewSourceFactory builds a REST source per session.
func NewSourceFactory(cfg apiclient.Config) dashboard.SourceFactory {
	return func(sess session.Context) (dashboard.Source, error) {
		return NewSource(apiclient.New(cfg, sess)), nil
	}
}

func listQuery() url.Values {
	return url.Values{"size": {strconv.Itoa(listPageSize)}}
}

// ListEmployees fetches employees; the total is reported when the API paginates
func (s *sourceImpl) ListEmployees(ctx context.Context) (dashboard.EmployeeRoster, error) {
	raw, err := s.client.Get(ctx, pathEmployees, listQuery())
	if err != nil {
		return dashboard.EmployeeRoster{}, fmt.Errorf("list employees: %w", err)
	}
	items, total, err := decodeList[employeeDTO](raw)
	if err != nil {
		return dashboard.EmployeeRoster{}, fmt.Errorf("list employees: %w", err)
	}
	return dashboard.EmployeeRoster{
		Employees:     mapAll(items, toEmployee),
		ReportedTotal: total,
	}, nil
}

func (s *sourceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	raw, err := s.client.Get(ctx, pathDepartments, nil)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	items, _, err := decodeList[departmentDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return mapAll(items, toDepartment), nil
}

func (s *sourceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	raw, err := s.client.Get(ctx, pathLeaveRequests, listQuery())
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	items, _, err := decodeList[leaveRequestDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return mapAll(items, toLeaveRequest), nil
}

// ListTickets reads the company-wide list or only the caller's own tickets
func (s *sourceImpl) ListTickets(ctx context.Context, scope ticket.Scope) ([]ticket.Ticket, error) {
	path := pathMyTickets
	if scope == ticket.ScopeCompany {
		path = pathTickets
	}
	raw, err := s.client.Get(ctx, path, listQuery())
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	items, _, err := decodeList[ticketDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return mapAll(items, toTicket), nil
}

func (s *sourceImpl) ListTimeLogs(ctx context.Context) ([]attendance.TimeLogEntry, error) {
	raw, err := s.client.Get(ctx, pathTimeLogs, listQuery())
	if err != nil {
		return nil, fmt.Errorf("list time logs: %w", err)
	}
	items, _, err := decodeList[timeLogDTO](raw)
	if err != nil {
		return nil, fmt.Errorf("list time logs: %w", err)
	}
	return mapAll(items, toTimeLog), nil
}
