package chat

import (
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient_id",
			Message: "recipient_id is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MessageResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	SenderID string `json:"sender_id"`
	Body     string `json:"body"`
	SentAt   string `json:"sent_at"`
}

// NewMessageResponse maps an entity onto its wire view.
func NewMessageResponse(msg Message) MessageResponse {
	return MessageResponse{
		ID:       msg.ID,
		ThreadID: msg.ThreadID,
		SenderID: msg.SenderID,
		Body:     msg.Body,
		SentAt:   msg.SentAt.Format(time.RFC3339),
	}
}

type ThreadResponse struct {
	ThreadID string            `json:"thread_id"`
	Messages []MessageResponse `json:"messages"`
}

// ContactResponse is one entry of the caller's reachable-people list.
type ContactResponse struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
}
