package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance
	PermissionAttendancePunch   Permission = "attendance.punch"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave Management
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveReview  Permission = "leave.review"

	// Communication
	PermissionChat             Permission = "chat.send"
	PermissionAnnouncementPost Permission = "announcement.post"

	// Directory / Accounts
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionUserManage      Permission = "user.manage"

	// Dashboards
	PermissionCompanyDashboard Permission = "dashboard.company"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionAnnouncementPost,
		PermissionEmployeeViewAll,
		PermissionUserManage,
		PermissionCompanyDashboard,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionChat,
		PermissionAnnouncementPost,
		PermissionEmployeeViewAll,
		PermissionCompanyDashboard,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionEmployeeViewAll,
		PermissionCompanyDashboard,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
		PermissionChat,
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
