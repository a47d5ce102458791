package announcement

import (
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
)

type PostRequest struct {
	Message string `json:"message"`
}

func (r *PostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID       string `json:"id"`
	PostedBy string `json:"posted_by"`
	Message  string `json:"message"`
	PostedAt string `json:"posted_at"`
}

// NewResponse maps an entity onto its wire view.
func NewResponse(a Announcement) Response {
	return Response{
		ID:       a.ID,
		PostedBy: a.PostedBy,
		Message:  a.Message,
		PostedAt: a.PostedAt.Format(time.RFC3339),
	}
}
