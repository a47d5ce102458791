package auth

import (
	"context"
)

// AuthService is the outer login surface. Hashing is delegated to
// bcrypt; nothing here is part of the workflow core.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, accessToken string)
}
