package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
)

// Identity is the authenticated caller as carried in the access token.
type Identity struct {
	UserID     string
	Username   string
	EmployeeID string
	Role       user.Role
}

// IsReviewer reports whether the caller may act on other employees'
// records.
func (i Identity) IsReviewer() bool {
	return i.Role == user.RoleAdmin || i.Role == user.RoleHR || i.Role == user.RoleManager
}

// IdentityFromContext extracts the caller's identity from the verified
// token claims placed on the context by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, fmt.Errorf("role claim is missing or invalid")
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return Identity{}, user.ErrInvalidRole
	}

	username, _ := claims["username"].(string)

	return Identity{
		UserID:     userID,
		Username:   username,
		EmployeeID: employeeID,
		Role:       role,
	}, nil
}
