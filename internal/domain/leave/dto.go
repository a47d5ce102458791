package leave

import (
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`   // YYYY-MM-DD
	StartDayType string  `json:"start_day_type"`
	EndDayType   string  `json:"end_day_type"`
	Reason       string  `json:"reason"`
	Attachment   *string `json:"attachment,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := ParseLeaveType(r.LeaveType); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of casual, sick, earned, maternity, paternity, loss_of_pay",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be before or the same as end_date",
		})
	}

	if _, ok := ParseDayType(r.StartDayType); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_day_type",
			Message: "start_day_type must be one of full_day, first_half, second_half",
		})
	}

	if _, ok := ParseDayType(r.EndDayType); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_day_type",
			Message: "end_day_type must be one of full_day, first_half, second_half",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if HasErrorSentinel(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason contains a failed letter draft; please regenerate or write your own",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	RequestID string `json:"-"`
	Decision  string `json:"decision"` // approved | rejected
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if r.Decision != string(StatusApproved) && r.Decision != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows a listing. EmployeeID is forced to the caller for
// non-reviewers by the service.
type ListFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" {
		if _, ok := ParseStatus(f.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of pending, approved, rejected",
			})
		}
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DraftReasonRequest struct {
	Prompt string `json:"prompt"`
}

func (r *DraftReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Prompt) {
		errs = append(errs, validator.ValidationError{
			Field:   "prompt",
			Message: "prompt is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DraftReasonResponse struct {
	Reason string `json:"reason"`
	Failed bool   `json:"failed"` // true when Reason carries the error sentinel
}

// RequestResponse is the wire view of a leave request.
type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	ApplicantName *string `json:"applicant_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	StartDayType  string  `json:"start_day_type"`
	EndDayType    string  `json:"end_day_type"`
	Reason        string  `json:"reason"`
	Attachment    *string `json:"attachment,omitempty"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	AppliedAt     string  `json:"applied_at"`
}

// NewRequestResponse maps an entity onto its wire view.
func NewRequestResponse(req Request) RequestResponse {
	resp := RequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		ApplicantName: req.ApplicantName,
		LeaveType:     string(req.LeaveType),
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		StartDayType:  string(req.StartDayType),
		EndDayType:    string(req.EndDayType),
		Reason:        req.Reason,
		Attachment:    req.Attachment,
		Status:        string(req.Status),
		ReviewedBy:    req.ReviewedBy,
		AppliedAt:     req.AppliedAt.Format(time.RFC3339),
	}
	if req.ReviewedAt != nil {
		at := req.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &at
	}
	return resp
}

// BalanceResponse reports per-type remaining entitlement.
type BalanceResponse struct {
	EmployeeID string         `json:"employee_id"`
	Balances   map[string]int `json:"balances"`
}
