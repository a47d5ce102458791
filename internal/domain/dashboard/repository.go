package dashboard

import (
	"context"
	"time"
)

// DashboardRepository aggregates across users, attendance and leaves.
// All reads, no writes.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	CountPendingLeavesByEmployee(ctx context.Context, employeeID string) (int64, error)

	// OverallAttendancePercentage is present records over all records.
	OverallAttendancePercentage(ctx context.Context) (float64, error)

	EmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error)
	ApprovedLeavesByType(ctx context.Context) ([]LeaveTypeCount, error)
	EmployeePerformance(ctx context.Context) ([]EmployeePerformanceRow, error)

	// DailyPresenceCounts returns present-employee counts per day from
	// since (inclusive) to today; days with no record are omitted and
	// filled in by the service.
	DailyPresenceCounts(ctx context.Context, since time.Time) ([]DailyPresenceCount, error)

	// PresentDaysInRange counts one employee's present days in
	// [from, to).
	PresentDaysInRange(ctx context.Context, employeeID string, from, to time.Time) (int64, error)

	RecentLeaves(ctx context.Context, employeeID string, limit int) ([]RecentLeaveRow, error)
}
