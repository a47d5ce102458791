package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests. Records
// are append-then-review: created pending, updated exactly once with the
// terminal status, never deleted.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// List retrieves requests newest applied_at first. EmployeeID and
	// Status in the filter are optional.
	List(ctx context.Context, filter ListFilter) ([]Request, error)

	// UpdateStatus moves a pending request to a terminal status,
	// recording the reviewer. Guarded by status = 'pending'; returns
	// false when the request was already terminal.
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string) (bool, error)

	// CountApprovedByType counts approved requests per leave type for
	// one employee, for the balance view.
	CountApprovedByType(ctx context.Context, employeeID string) (map[LeaveType]int, error)
}
