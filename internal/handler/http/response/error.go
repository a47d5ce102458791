package response

import (
	"errors"
	"net/http"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmspro/hrms-backend-go/internal/domain/auth"
	"github.com/hrmspro/hrms-backend-go/internal/domain/chat"
	"github.com/hrmspro/hrms-backend-go/internal/domain/leave"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username or employee ID already taken")
	case errors.Is(err, user.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already taken")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrReviewerAccessRequired):
		Forbidden(w, "Reviewer access required")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCannotDeleteOwnAccount):
		Conflict(w, "Cannot delete your own account")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, "Not punched in yet")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out today")
	case errors.Is(err, attendance.ErrPunchOutBeforePunchIn):
		BadRequest(w, "Punch-out must be after punch-in", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to view this attendance record")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, leave.ErrReviewerRequired):
		Forbidden(w, "Reviewer role required")

	// Chat domain errors
	case errors.Is(err, chat.ErrThreadNotFound):
		NotFound(w, "Chat thread not found")
	case errors.Is(err, chat.ErrSelfThread):
		BadRequest(w, "Cannot chat with yourself", nil)
	case errors.Is(err, chat.ErrNotParticipant):
		Forbidden(w, "Not a participant of this chat thread")
	case errors.Is(err, chat.ErrCounterpartGone):
		NotFound(w, "Chat counterpart not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
