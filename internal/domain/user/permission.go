package user

type Permission string

const (
	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"

	// Tickets
	PermissionTicketViewOwn Permission = "ticket.view_own"
	PermissionTicketViewAll Permission = "ticket.view_all"

	// Company Management
	PermissionCompanyView   Permission = "company.view"
	PermissionCompanySwitch Permission = "company.switch"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin sees everything and may pick the company to act on
		PermissionDashboardView,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
		PermissionTicketViewOwn,
		PermissionTicketViewAll,
		PermissionCompanyView,
		PermissionCompanySwitch,
	},
	RoleOwner: {
		PermissionDashboardView,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
		PermissionTicketViewOwn,
		PermissionTicketViewAll,
		PermissionCompanyView,
	},
	RoleManager: {
		PermissionDashboardView,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
		PermissionTicketViewOwn,
		PermissionTicketViewAll,
		PermissionCompanyView,
	},
	RoleEmployee: {
		// Employee has basic access
		PermissionDashboardView,
		PermissionLeaveViewOwn,
		PermissionAttendanceViewOwn,
		PermissionTicketViewOwn,
	},
	RolePending: {
		// Pending role has no permissions
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
