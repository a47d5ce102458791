package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. One
// record exists per (employee_id, date); the insert must be atomic
// insert-if-absent and the punch-out update must only touch rows whose
// punch_out is still unset, so concurrent punches cannot duplicate or
// reset state.
type AttendanceRepository interface {
	// CreateIfAbsent inserts the day's record unless one already exists
	// for (employee_id, date). Returns the record and whether it was
	// inserted by this call.
	CreateIfAbsent(ctx context.Context, rec Record) (Record, bool, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee
	// on a specific day; nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ClosePunch sets punch_out and worked_hours on the day's record,
	// guarded by punch_out IS NULL. Returns false when no open record
	// matched.
	ClosePunch(ctx context.Context, employeeID string, date time.Time, punchOut time.Time, workedHours float64) (bool, error)

	// ListByEmployee retrieves records for an employee ordered by date
	// descending, optionally bounded to [from, to].
	ListByEmployee(ctx context.Context, employeeID string, filter HistoryFilter) ([]Record, error)
}
