package user

import "github.com/hrmspro/hrms-backend-go/internal/pkg/validator"

// DirectoryFilter narrows directory listings.
type DirectoryFilter struct {
	Department  string `json:"department,omitempty"`
	ExcludeRole string `json:"exclude_role,omitempty"`
	Role        string `json:"role,omitempty"`
}

type CreateUserRequest struct {
	Username      string  `json:"username"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	EmployeeID    string  `json:"employee_id"`
	Role          string  `json:"role"`
	Department    *string `json:"department,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 lowercase letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	} else if len(r.Password) > 72 {
		// bcrypt only hashes the first 72 bytes
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at most 72 bytes",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, manager, hr, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProfileRequest struct {
	UserID        string  `json:"-"`
	FullName      *string `json:"full_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Department    *string `json:"department,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ChangeRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (r *ChangeRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, manager, hr, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProfileResponse is the public view of a user record.
type ProfileResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	EmployeeID    string  `json:"employee_id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	Department    *string `json:"department,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
	JoinDate      string  `json:"join_date"`
}

// NewProfileResponse maps an entity onto its public view.
func NewProfileResponse(u User) ProfileResponse {
	return ProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		EmployeeID:    u.EmployeeID,
		FullName:      u.FullName,
		Email:         u.Email,
		Role:          string(u.Role),
		Department:    u.Department,
		JobTitle:      u.JobTitle,
		ContactNumber: u.ContactNumber,
		ProfilePicURL: u.ProfilePicURL,
		JoinDate:      u.JoinDate.Format("2006-01-02"),
	}
}
