package api

import (
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/ticket"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

// Wire shapes of the HRIS REST API. Every optional member is a pointer or a
// zero-valued string; the to* functions below are the only place that knows
// about them.

type departmentDTO struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

type employeeDTO struct {
	ID           flexID         `json:"id"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	FullName     string         `json:"fullName"`
	Department   *departmentDTO `json:"department"`
	DepartmentID *flexID        `json:"departmentId"`
	Status       string         `json:"status"`
	HireDate     string         `json:"hireDate"`
	BirthDate    string         `json:"birthDate"`
	IsDeleted    bool           `json:"isDeleted"`
}

type timeLogDTO struct {
	ID           flexID      `json:"id"`
	EmployeeID   flexID      `json:"employeeId"`
	EmployeeName string      `json:"employeeName"`
	User         *personName `json:"user"`
	Employee     *personName `json:"employee"`
	LogDate      string      `json:"logDate"`
	CheckInTime  *string     `json:"checkInTime"`
	CheckOutTime *string     `json:"checkOutTime"`
}

type leaveRequestDTO struct {
	ID           flexID      `json:"id"`
	EmployeeID   flexID      `json:"employeeId"`
	EmployeeName string      `json:"employeeName"`
	User         *personName `json:"user"`
	Employee     *personName `json:"employee"`
	LeaveType    string      `json:"leaveType"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	Status       string      `json:"status"`
}

type ticketDTO struct {
	ID        flexID `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func toDepartment(d departmentDTO) department.Department {
	return department.Department{
		ID:   string(d.ID),
		Name: strings.TrimSpace(d.Name),
	}
}

func toEmployee(d employeeDTO) employee.Employee {
	e := employee.Employee{
		ID:               string(d.ID),
		FullName:         joinName(d.FirstName, d.LastName),
		EmploymentStatus: employee.EmploymentStatus(strings.ToUpper(strings.TrimSpace(d.Status))),
		HireDate:         calendar.ParseOrZero(d.HireDate),
		IsDeleted:        d.IsDeleted,
	}
	if e.FullName == "" {
		e.FullName = strings.TrimSpace(d.FullName)
	}

	switch {
	case d.Department != nil && d.Department.ID != "":
		id := string(d.Department.ID)
		e.DepartmentID = &id
	case d.DepartmentID != nil && *d.DepartmentID != "":
		id := string(*d.DepartmentID)
		e.DepartmentID = &id
	}

	if birth, err := calendar.Parse(d.BirthDate); err == nil {
		e.BirthDate = &birth
	}
	return e
}

func toTimeLog(d timeLogDTO) attendance.TimeLogEntry {
	employeeID := string(d.EmployeeID)
	if employeeID == "" && d.Employee != nil {
		employeeID = string(d.Employee.ID)
	}
	return attendance.TimeLogEntry{
		ID:           string(d.ID),
		EmployeeID:   employeeID,
		EmployeeName: resolveName(d.EmployeeName, d.User, d.Employee),
		LogDate:      calendar.ParseOrZero(d.LogDate),
		CheckInTime:  derefTrim(d.CheckInTime),
		CheckOutTime: derefTrim(d.CheckOutTime),
	}
}

func toLeaveRequest(d leaveRequestDTO) leave.LeaveRequest {
	employeeID := string(d.EmployeeID)
	if employeeID == "" && d.Employee != nil {
		employeeID = string(d.Employee.ID)
	}
	return leave.LeaveRequest{
		ID:           string(d.ID),
		EmployeeID:   employeeID,
		EmployeeName: resolveName(d.EmployeeName, d.User, d.Employee),
		LeaveType:    d.LeaveType,
		StartDate:    calendar.ParseOrZero(d.StartDate),
		EndDate:      calendar.ParseOrZero(d.EndDate),
		Status:       leave.LeaveStatus(strings.ToUpper(strings.TrimSpace(d.Status))),
	}
}

func toTicket(d ticketDTO) ticket.Ticket {
	return ticket.Ticket{
		ID:        string(d.ID),
		Title:     d.Title,
		Priority:  ticket.Priority(strings.ToUpper(strings.TrimSpace(d.Priority))),
		Status:    ticket.Status(strings.ToUpper(strings.TrimSpace(d.Status))),
		CreatedAt: parseTimestamp(d.CreatedAt),
	}
}

func derefTrim(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func mapAll[D, T any](items []D, fn func(D) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
