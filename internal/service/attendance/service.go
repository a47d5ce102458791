package attendance

import (
	"context"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/metrics"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	location *time.Location

	// now is swapped out in tests.
	now func() time.Time
}

func NewAttendanceService(db *database.DB, repo attendance.AttendanceRepository, location *time.Location) attendance.AttendanceService {
	if location == nil {
		location = time.Local
	}
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: repo,
		location:             location,
		now:                  time.Now,
	}
}

// dateOf truncates a local timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PunchIn implements attendance.AttendanceService. The record insert is
// insert-if-absent on (employee_id, date), so whichever concurrent punch
// lands first wins and the rest see the existing row.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context) (attendance.RecordResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := s.now().In(s.location)

	rec, inserted, err := s.CreateIfAbsent(ctx, attendance.Record{
		EmployeeID: identity.EmployeeID,
		Date:       dateOf(nowLocal),
		PunchIn:    nowLocal,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		metrics.PunchIns.WithLabelValues(metrics.OutcomeError).Inc()
		return attendance.RecordResponse{}, err
	}
	if !inserted {
		metrics.PunchIns.WithLabelValues(metrics.OutcomeConflict).Inc()
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedIn
	}

	metrics.PunchIns.WithLabelValues(metrics.OutcomeOK).Inc()
	return attendance.NewRecordResponse(rec), nil
}

// PunchOut implements attendance.AttendanceService. Worked hours are
// derived here, once; the update only matches a still-open record so a
// second punch-out cannot overwrite the first.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.RecordResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := s.now().In(s.location)
	today := dateOf(nowLocal)

	rec, err := s.GetByEmployeeAndDate(ctx, identity.EmployeeID, today)
	if err != nil {
		metrics.PunchOuts.WithLabelValues(metrics.OutcomeError).Inc()
		return attendance.RecordResponse{}, err
	}
	if rec == nil {
		metrics.PunchOuts.WithLabelValues(metrics.OutcomeConflict).Inc()
		return attendance.RecordResponse{}, attendance.ErrNotPunchedIn
	}
	if !rec.Open() {
		metrics.PunchOuts.WithLabelValues(metrics.OutcomeConflict).Inc()
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedOut
	}

	workedHours, err := attendance.WorkedHoursBetween(rec.PunchIn, nowLocal)
	if err != nil {
		metrics.PunchOuts.WithLabelValues(metrics.OutcomeError).Inc()
		return attendance.RecordResponse{}, err
	}

	closed, err := s.ClosePunch(ctx, identity.EmployeeID, today, nowLocal, workedHours)
	if err != nil {
		metrics.PunchOuts.WithLabelValues(metrics.OutcomeError).Inc()
		return attendance.RecordResponse{}, err
	}
	if !closed {
		// Raced with another punch-out; the earlier one stands.
		metrics.PunchOuts.WithLabelValues(metrics.OutcomeConflict).Inc()
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedOut
	}

	updated, err := s.GetByEmployeeAndDate(ctx, identity.EmployeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if updated == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	metrics.PunchOuts.WithLabelValues(metrics.OutcomeOK).Inc()
	return attendance.NewRecordResponse(*updated), nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.RecordResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.GetByEmployeeAndDate(ctx, identity.EmployeeID, dateOf(s.now().In(s.location)))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.NewRecordResponse(*rec)
	return &resp, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if employeeID == "" {
		employeeID = identity.EmployeeID
	}
	if employeeID != identity.EmployeeID && !identity.IsReviewer() {
		return nil, attendance.ErrUnauthorized
	}

	records, err := s.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}

	return responses, nil
}

// Summary implements attendance.AttendanceService. Every figure is
// recomputed from the raw punch records on each call; none of it is
// written back.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string) (attendance.SummaryResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	if employeeID == "" {
		employeeID = identity.EmployeeID
	}
	if employeeID != identity.EmployeeID && !identity.IsReviewer() {
		return attendance.SummaryResponse{}, attendance.ErrUnauthorized
	}

	records, err := s.ListByEmployee(ctx, employeeID, attendance.HistoryFilter{})
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return Summarize(employeeID, records, dateOf(s.now().In(s.location))), nil
}
