package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Platform administrator - may act on any company
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can approve leave/attendance
	RoleEmployee Role = "employee" // Regular employee
	RolePending  Role = "pending"  // Still in onboarding
)

// IsElevated reports whether the role reads company-wide data on the dashboard.
func (r Role) IsElevated() bool {
	return HasPermission(r, PermissionTicketViewAll)
}

// CanSwitchCompany reports whether the role may scope requests to a selected company.
func (r Role) CanSwitchCompany() bool {
	return HasPermission(r, PermissionCompanySwitch)
}
