package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmspro/hrms-backend-go/internal/domain/leave"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		lr.start_day_type, lr.end_day_type, lr.reason, lr.attachment, lr.status,
		lr.reviewed_by, lr.reviewed_at, lr.applied_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row, withApplicant bool) (leave.Request, error) {
	var req leave.Request
	dest := []interface{}{
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.StartDayType, &req.EndDayType, &req.Reason, &req.Attachment, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.AppliedAt,
	}
	if withApplicant {
		dest = append(dest, &req.ApplicantName)
	}
	return req, row.Scan(dest...)
}

// Create implements leave.LeaveRequestRepository. Requests always start
// pending.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests AS lr (
			employee_id, leave_type, start_date, end_date,
			start_day_type, end_day_type, reason, attachment, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING ` + leaveColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.StartDayType, request.EndDayType, request.Reason, request.Attachment,
	), false)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr WHERE lr.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository. Joins the applicant's
// name so reviewer listings can show who applied.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, u.full_name
		FROM leave_requests lr
		JOIN users u ON u.employee_id = lr.employee_id
		WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND lr.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	query += " ORDER BY lr.applied_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository. The
// status = 'pending' guard makes the review decision write-once; a
// second reviewer racing on the same request matches no rows.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewedBy string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy)
	if err != nil {
		return false, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountApprovedByType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountApprovedByType(ctx context.Context, employeeID string) (map[leave.LeaveType]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*)
		FROM leave_requests
		WHERE employee_id = $1 AND status = 'approved'
		GROUP BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved leaves: %w", err)
	}
	defer rows.Close()

	counts := make(map[leave.LeaveType]int)
	for rows.Next() {
		var lt leave.LeaveType
		var n int
		if err := rows.Scan(&lt, &n); err != nil {
			return nil, fmt.Errorf("failed to scan leave count: %w", err)
		}
		counts[lt] = n
	}

	return counts, rows.Err()
}
