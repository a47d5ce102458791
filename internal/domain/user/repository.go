package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	GetFirstByRole(ctx context.Context, role Role) (User, error)
	List(ctx context.Context, filter DirectoryFilter) ([]User, error)
	Departments(ctx context.Context) ([]string, error)
	ExistsByUsernameOrEmployeeID(ctx context.Context, username, employeeID string) (bool, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	UpdateRole(ctx context.Context, id string, role Role) error
	Delete(ctx context.Context, id string) error
}
