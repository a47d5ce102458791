package employee

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	fileStorage storage.FileStorage
}

func NewEmployeeService(db *database.DB, userRepository user.UserRepository, fileStorage storage.FileStorage) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		UserRepository: userRepository,
		fileStorage:    fileStorage,
	}
}

// Profile implements user.EmployeeService.
func (s *EmployeeServiceImpl) Profile(ctx context.Context) (user.ProfileResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	u, err := s.GetByID(ctx, identity.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(u), nil
}

// ProfileByEmployeeID implements user.EmployeeService.
func (s *EmployeeServiceImpl) ProfileByEmployeeID(ctx context.Context, employeeID string) (user.ProfileResponse, error) {
	u, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(u), nil
}

// UpdateProfile implements user.EmployeeService. The caller can only
// edit their own profile.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	req.UserID = identity.UserID

	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	if err := s.UserRepository.UpdateProfile(ctx, req); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.GetByID(ctx, identity.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(updated), nil
}

// UploadProfilePicture implements user.EmployeeService.
func (s *EmployeeServiceImpl) UploadProfilePicture(ctx context.Context, file io.Reader, filename string, contentType string) (user.ProfileResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range storage.AllowedImageExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return user.ProfileResponse{}, fmt.Errorf("unsupported image extension: %s", ext)
	}

	path := fmt.Sprintf("profile-pictures/%s-%s%s", identity.EmployeeID, uuid.New().String(), ext)
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to store profile picture: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if err := s.UserRepository.UpdateProfile(ctx, user.UpdateProfileRequest{
		UserID:        identity.UserID,
		ProfilePicURL: &url,
	}); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.GetByID(ctx, identity.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(updated), nil
}

// Directory implements user.EmployeeService.
func (s *EmployeeServiceImpl) Directory(ctx context.Context, filter user.DirectoryFilter) ([]user.ProfileResponse, error) {
	users, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewProfileResponse(u))
	}

	return responses, nil
}

// Departments implements user.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	return s.UserRepository.Departments(ctx)
}

// Create implements user.EmployeeService. Admin only.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.ProfileResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	if identity.Role != user.RoleAdmin {
		return user.ProfileResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	role, ok := user.ParseRole(req.Role)
	if !ok {
		return user.ProfileResponse{}, user.ErrInvalidRole
	}

	exists, err := s.ExistsByUsernameOrEmployeeID(ctx, req.Username, req.EmployeeID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	if exists {
		return user.ProfileResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:      strings.ToLower(req.Username),
		EmployeeID:    req.EmployeeID,
		FullName:      req.FullName,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Role:          role,
		Department:    req.Department,
		JobTitle:      req.JobTitle,
		ContactNumber: req.ContactNumber,
		JoinDate:      time.Now().UTC(),
	})
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(created), nil
}

// ChangeRole implements user.EmployeeService. Admin only; the role enum
// is closed, so anything outside it is rejected before the write.
func (s *EmployeeServiceImpl) ChangeRole(ctx context.Context, req user.ChangeRoleRequest) (user.ProfileResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	if identity.Role != user.RoleAdmin {
		return user.ProfileResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	role, ok := user.ParseRole(req.Role)
	if !ok {
		return user.ProfileResponse{}, user.ErrInvalidRole
	}

	if err := s.UpdateRole(ctx, req.UserID, role); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.GetByID(ctx, req.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(updated), nil
}

// Delete implements user.EmployeeService. Admin only; admins cannot
// remove their own account.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, userID string) error {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if identity.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if identity.UserID == userID {
		return user.ErrCannotDeleteOwnAccount
	}

	return s.UserRepository.Delete(ctx, userID)
}
