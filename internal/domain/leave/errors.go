package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyReviewed  = errors.New("leave request already reviewed")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
	ErrReviewerRequired = errors.New("reviewer role required")
)
