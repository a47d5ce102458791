package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"admin manages users", RoleAdmin, PermissionUserManage, true},
		{"admin posts announcements", RoleAdmin, PermissionAnnouncementPost, true},
		{"hr posts announcements", RoleHR, PermissionAnnouncementPost, true},
		{"manager cannot post announcements", RoleManager, PermissionAnnouncementPost, false},
		{"employee cannot post announcements", RoleEmployee, PermissionAnnouncementPost, false},
		{"manager reviews leave", RoleManager, PermissionLeaveReview, true},
		{"employee cannot review leave", RoleEmployee, PermissionLeaveReview, false},
		{"employee punches attendance", RoleEmployee, PermissionAttendancePunch, true},
		{"employee views own leave", RoleEmployee, PermissionLeaveViewOwn, true},
		{"employee cannot view all attendance", RoleEmployee, PermissionAttendanceViewAll, false},
		{"hr views company dashboard", RoleHR, PermissionCompanyDashboard, true},
		{"hr cannot manage users", RoleHR, PermissionUserManage, false},
		{"unknown role has nothing", Role("intern"), PermissionViewOwnProfile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"employee", "manager", "hr", "admin"} {
		role, ok := ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, Role(s), role)
	}

	for _, s := range []string{"", "superadmin", "Employee", "HR"} {
		_, ok := ParseRole(s)
		assert.False(t, ok, s)
	}
}

func TestUserIsReviewer(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleHR, RoleManager} {
		u := User{Role: role}
		assert.True(t, u.IsReviewer(), string(role))
	}

	u := User{Role: RoleEmployee}
	assert.False(t, u.IsReviewer())
	assert.False(t, u.IsAdmin())
}
