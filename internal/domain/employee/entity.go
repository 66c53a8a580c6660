package employee

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

type Employee struct {
	ID               string
	FullName         string
	DepartmentID     *string
	EmploymentStatus EmploymentStatus
	HireDate         calendar.Date
	BirthDate        *calendar.Date
	IsDeleted        bool
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive   EmploymentStatus = "INACTIVE"
	EmploymentStatusOnLeave    EmploymentStatus = "ON_LEAVE"
	EmploymentStatusSuspended  EmploymentStatus = "SUSPENDED"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
)

// IsActive reports whether the employee is active and not soft-deleted.
func (e Employee) IsActive() bool {
	return !e.IsDeleted && e.EmploymentStatus == EmploymentStatusActive
}

// InDepartment reports whether the employee references the given department.
func (e Employee) InDepartment(departmentID string) bool {
	return e.DepartmentID != nil && *e.DepartmentID == departmentID
}
