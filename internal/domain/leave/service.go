package leave

import (
	"context"
)

// LeaveService defines business logic for the leave request lifecycle.
type LeaveService interface {
	// Submit validates and creates a pending request for the
	// authenticated employee. No row is written when validation fails.
	Submit(ctx context.Context, req SubmitRequest) (RequestResponse, error)

	// Review moves a pending request to approved or rejected. Requires
	// a reviewer role; reviewing a terminal request changes nothing.
	Review(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// List returns requests newest-first: reviewers see every employee
	// and may filter by status, employees see only their own.
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, error)

	// DraftReason asks the letter-drafting collaborator for a formal
	// letter. On failure the returned text starts with ErrorSentinel;
	// it is propagated unchanged so Submit can detect it.
	DraftReason(ctx context.Context, req DraftReasonRequest) (DraftReasonResponse, error)

	// Balance reports per-type remaining entitlement for the
	// authenticated employee.
	Balance(ctx context.Context) (BalanceResponse, error)
}
