package auth

import (
	"strings"
	"testing"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username:   "bhuvan.k",
		FullName:   "Bhuvan K",
		Email:      "bhuvan@example.com",
		Password:   "s3cret-pass",
		EmployeeID: "E042",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	req := validRegister()
	require.NoError(t, req.Validate())

	// username is normalized in place
	req = validRegister()
	req.Username = "  Bhuvan.K "
	require.NoError(t, req.Validate())
	assert.Equal(t, "bhuvan.k", req.Username)
}

func TestRegisterRequestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"missing username", func(r *RegisterRequest) { r.Username = "" }, "username"},
		{"bad username", func(r *RegisterRequest) { r.Username = "x" }, "username"},
		{"missing full name", func(r *RegisterRequest) { r.FullName = "" }, "full_name"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }, "password"},
		{"oversized password", func(r *RegisterRequest) { r.Password = strings.Repeat("a", 73) }, "password"},
		{"missing employee id", func(r *RegisterRequest) { r.EmployeeID = "" }, "employee_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)

			err := req.Validate()
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tc.field)
		})
	}
}

func TestRegisterRequestValidate_PasswordAtHashLimit(t *testing.T) {
	// 72 bytes is the most bcrypt will hash; exactly 72 is fine
	req := validRegister()
	req.Password = strings.Repeat("a", 72)
	require.NoError(t, req.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{Username: "Bhuvan.K", Password: "s3cret-pass"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "bhuvan.k", req.Username)

	var errs validator.ValidationErrors

	missing := LoginRequest{}
	require.ErrorAs(t, missing.Validate(), &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "username")
	assert.Contains(t, m, "password")
}
