package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository. Admin
// accounts are operators, not headcount.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role <> 'admin'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return n, nil
}

// CountPendingLeavesByEmployee implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeavesByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = 'pending' AND employee_id = $1`,
		employeeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return n, nil
}

// OverallAttendancePercentage implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) OverallAttendancePercentage(ctx context.Context) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(
			100.0 * COUNT(*) FILTER (WHERE status = 'present') / NULLIF(COUNT(*), 0),
			0
		)
		FROM attendance_records
	`

	var pct float64
	if err := q.QueryRow(ctx, query).Scan(&pct); err != nil {
		return 0, fmt.Errorf("failed to compute attendance percentage: %w", err)
	}
	return pct, nil
}

// EmployeesByDepartment implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) EmployeesByDepartment(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(department, 'Unassigned'), COUNT(*)
		FROM users
		WHERE role <> 'admin'
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to group employees by department: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DepartmentCount
	for rows.Next() {
		var c dashboard.DepartmentCount
		if err := rows.Scan(&c.Department, &c.Employees); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// ApprovedLeavesByType implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ApprovedLeavesByType(ctx context.Context) ([]dashboard.LeaveTypeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*)
		FROM leave_requests
		WHERE status = 'approved'
		GROUP BY leave_type
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to group leaves by type: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.LeaveTypeCount
	for rows.Next() {
		var c dashboard.LeaveTypeCount
		if err := rows.Scan(&c.LeaveType, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leave type count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// EmployeePerformance implements dashboard.DashboardRepository.
// Attendance percentage is recorded days over calendar days since the
// employee joined.
func (r *dashboardRepositoryImpl) EmployeePerformance(ctx context.Context) ([]dashboard.EmployeePerformanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.employee_id,
			u.full_name,
			COALESCE(u.department, 'Unassigned'),
			COALESCE(
				100.0 * COUNT(a.id) FILTER (WHERE a.status = 'present')
					/ NULLIF(CURRENT_DATE - u.join_date::date + 1, 0),
				0
			),
			COALESCE((
				SELECT SUM(lr.end_date - lr.start_date + 1)
				FROM leave_requests lr
				WHERE lr.employee_id = u.employee_id AND lr.status = 'approved'
			), 0),
			COALESCE(AVG(a.worked_hours), 0)
		FROM users u
		LEFT JOIN attendance_records a ON a.employee_id = u.employee_id
		WHERE u.role <> 'admin'
		GROUP BY u.employee_id, u.full_name, u.department, u.join_date
		ORDER BY u.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compute employee performance: %w", err)
	}
	defer rows.Close()

	var perf []dashboard.EmployeePerformanceRow
	for rows.Next() {
		var row dashboard.EmployeePerformanceRow
		if err := rows.Scan(
			&row.EmployeeID, &row.FullName, &row.Department,
			&row.AttendancePercentage, &row.ApprovedLeaveDays, &row.AverageWorkedHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", err)
		}
		perf = append(perf, row)
	}

	return perf, rows.Err()
}

// DailyPresenceCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) DailyPresenceCounts(ctx context.Context, since time.Time) ([]dashboard.DailyPresenceCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT TO_CHAR(date, 'YYYY-MM-DD'), COUNT(*)
		FROM attendance_records
		WHERE date >= $1 AND status = 'present'
		GROUP BY date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily presence: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DailyPresenceCount
	for rows.Next() {
		var c dashboard.DailyPresenceCount
		if err := rows.Scan(&c.Date, &c.Present); err != nil {
			return nil, fmt.Errorf("failed to scan presence count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// PresentDaysInRange implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) PresentDaysInRange(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1 AND status = 'present' AND date >= $2 AND date < $3
	`

	var n int64
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count present days: %w", err)
	}
	return n, nil
}

// RecentLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) RecentLeaves(ctx context.Context, employeeID string, limit int) ([]dashboard.RecentLeaveRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT TO_CHAR(start_date, 'YYYY-MM-DD'), TO_CHAR(end_date, 'YYYY-MM-DD'), leave_type, status
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY applied_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leaves: %w", err)
	}
	defer rows.Close()

	var leaves []dashboard.RecentLeaveRow
	for rows.Next() {
		var row dashboard.RecentLeaveRow
		if err := rows.Scan(&row.StartDate, &row.EndDate, &row.LeaveType, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan recent leave: %w", err)
		}
		leaves = append(leaves, row)
	}

	return leaves, rows.Err()
}
