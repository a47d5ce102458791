package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can review leave requests
	RoleHR       Role = "hr"       // Can review leave requests, manage communication
	RoleAdmin    Role = "admin"    // Full access, account management
)

// AllRoles returns the closed set of valid roles.
func AllRoles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleHR, RoleAdmin}
}

// ParseRole maps a string onto the closed role enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID            string
	Username      string
	EmployeeID    string
	FullName      string
	Email         string
	PasswordHash  string
	Role          Role
	Department    *string
	JobTitle      *string
	ContactNumber *string
	ProfilePicURL *string
	JoinDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin checks if the user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsReviewer checks if the user can approve or reject leave requests
func (u *User) IsReviewer() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR || u.Role == RoleManager
}
