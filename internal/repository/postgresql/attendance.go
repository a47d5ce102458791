package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, employee_id, date, punch_in, punch_out, worked_hours, status,
		created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.PunchIn, &rec.PunchOut, &rec.WorkedHours,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// CreateIfAbsent implements attendance.AttendanceRepository. The unique
// index on (employee_id, date) plus ON CONFLICT DO NOTHING makes the
// first punch of the day win; racing inserts observe the existing row.
func (r *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendance_records (employee_id, date, punch_in, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	inserted, err := scanRecord(q.QueryRow(ctx, insertQuery,
		rec.EmployeeID, rec.Date, rec.PunchIn, rec.Status,
	))
	if err == nil {
		return inserted, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, false, fmt.Errorf("failed to create attendance record: %w", err)
	}

	// Conflict path: the day's record already exists.
	existing, err := r.GetByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
	if err != nil {
		return attendance.Record{}, false, err
	}
	if existing == nil {
		return attendance.Record{}, false, attendance.ErrRecordNotFound
	}

	return *existing, false, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1 AND date = $2`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// ClosePunch implements attendance.AttendanceRepository. The
// punch_out IS NULL guard makes repeated punch-outs a no-op; only the
// first one writes.
func (r *attendanceRepositoryImpl) ClosePunch(ctx context.Context, employeeID string, date time.Time, punchOut time.Time, workedHours float64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET punch_out = $3, worked_hours = $4, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2 AND punch_out IS NULL
	`

	tag, err := q.Exec(ctx, query, employeeID, date, punchOut, workedHours)
	if err != nil {
		return false, fmt.Errorf("failed to close punch: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1`
	args := []interface{}{employeeID}
	argPos := 2

	if filter.From != "" {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, filter.From)
		argPos++
	}
	if filter.To != "" {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, filter.To)
		argPos++
	}

	query += " ORDER BY date DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
