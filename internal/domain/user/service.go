package user

import (
	"context"
	"io"
)

// EmployeeService covers the profile, directory and account-management
// surface.
type EmployeeService interface {
	// Profile returns the authenticated caller's own profile.
	Profile(ctx context.Context) (ProfileResponse, error)

	// ProfileByEmployeeID returns another employee's profile. Directory
	// data is visible to every authenticated user.
	ProfileByEmployeeID(ctx context.Context, employeeID string) (ProfileResponse, error)

	// UpdateProfile applies the caller's own edits; nil fields are left
	// untouched.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)

	// UploadProfilePicture stores the image and records its URL on the
	// caller's profile.
	UploadProfilePicture(ctx context.Context, file io.Reader, filename string, contentType string) (ProfileResponse, error)

	// Directory lists employees, optionally narrowed by department or
	// role.
	Directory(ctx context.Context, filter DirectoryFilter) ([]ProfileResponse, error)

	// Departments lists the distinct department names in use.
	Departments(ctx context.Context) ([]string, error)

	// Create provisions a new account. Admin only.
	Create(ctx context.Context, req CreateUserRequest) (ProfileResponse, error)

	// ChangeRole moves an account to another role. Admin only.
	ChangeRole(ctx context.Context, req ChangeRoleRequest) (ProfileResponse, error)

	// Delete removes an account. Admin only; admins cannot delete
	// themselves.
	Delete(ctx context.Context, userID string) error
}
