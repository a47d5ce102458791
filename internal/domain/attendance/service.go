package attendance

import (
	"context"
)

// AttendanceService defines business logic for the punch lifecycle and
// its read-time aggregates.
type AttendanceService interface {
	// PunchIn opens today's record for the authenticated employee.
	PunchIn(ctx context.Context) (RecordResponse, error)

	// PunchOut closes today's record and derives worked hours.
	PunchOut(ctx context.Context) (RecordResponse, error)

	// Today returns the authenticated employee's record for today, if any.
	Today(ctx context.Context) (*RecordResponse, error)

	// History lists records newest-first. Reviewers may pass any
	// employee ID; employees only see themselves.
	History(ctx context.Context, employeeID string, filter HistoryFilter) ([]RecordResponse, error)

	// Summary computes the read-time aggregates (attendance percentage,
	// average hours, on-time count, heatmap, weekly hours, status
	// counts). Nothing here is ever persisted.
	Summary(ctx context.Context, employeeID string) (SummaryResponse, error)
}
