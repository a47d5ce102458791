package user

import (
	"strings"
	"testing"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateUser() CreateUserRequest {
	return CreateUserRequest{
		Username:   "new.hire",
		FullName:   "New Hire",
		Email:      "new.hire@example.com",
		Password:   "s3cret-pass",
		EmployeeID: "E050",
		Role:       "employee",
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	req := validCreateUser()
	require.NoError(t, req.Validate())
}

func TestCreateUserRequestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateUserRequest)
		field  string
	}{
		{"missing username", func(r *CreateUserRequest) { r.Username = "" }, "username"},
		{"bad email", func(r *CreateUserRequest) { r.Email = "nope" }, "email"},
		{"short password", func(r *CreateUserRequest) { r.Password = "short" }, "password"},
		{"oversized password", func(r *CreateUserRequest) { r.Password = strings.Repeat("a", 73) }, "password"},
		{"missing employee id", func(r *CreateUserRequest) { r.EmployeeID = "" }, "employee_id"},
		{"unknown role", func(r *CreateUserRequest) { r.Role = "superadmin" }, "role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateUser()
			tc.mutate(&req)

			err := req.Validate()
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tc.field)
		})
	}
}
