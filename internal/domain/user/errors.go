package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already exists")
	ErrEmployeeIDExists        = errors.New("employee ID already exists")
	ErrInvalidRole             = errors.New("invalid role")
	ErrReviewerAccessRequired  = errors.New("reviewer access required")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrCannotDeleteOwnAccount  = errors.New("cannot delete your own account")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
