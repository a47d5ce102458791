package attendance

import (
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/pkg/validator"
)

// HistoryFilter bounds a history listing. Zero values mean unbounded.
type HistoryFilter struct {
	From  string `json:"from,omitempty"` // YYYY-MM-DD
	To    string `json:"to,omitempty"`   // YYYY-MM-DD
	Limit int    `json:"limit,omitempty"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResponse is the wire view of a single attendance record.
type RecordResponse struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employee_id"`
	Date        string   `json:"date"`
	PunchIn     string   `json:"punch_in"`
	PunchOut    *string  `json:"punch_out,omitempty"`
	WorkedHours *float64 `json:"worked_hours,omitempty"`
	Status      string   `json:"status"`
	OnTime      bool     `json:"on_time"`
}

// NewRecordResponse maps an entity onto its wire view.
func NewRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date.Format("2006-01-02"),
		PunchIn:     rec.PunchIn.Format(time.RFC3339),
		WorkedHours: rec.WorkedHours,
		Status:      rec.Status,
		OnTime:      rec.OnTime(),
	}
	if rec.PunchOut != nil {
		out := rec.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &out
	}
	return resp
}

// HeatmapDay is one cell of the calendar heatmap: every day of the
// requested axis appears exactly once, absent days included.
type HeatmapDay struct {
	Date        string  `json:"date"`
	Status      string  `json:"status"` // present | absent | weekend
	WorkedHours float64 `json:"worked_hours"`
}

// WeeklyHours is one bucket of the weekly worked-hours chart.
type WeeklyHours struct {
	WeekStart  string  `json:"week_start"` // Monday, YYYY-MM-DD
	TotalHours float64 `json:"total_hours"`
}

// SummaryResponse carries every read-time aggregate for one employee.
// All of it is recomputed from the record sequence on each call.
type SummaryResponse struct {
	EmployeeID           string         `json:"employee_id"`
	PresentDays          int            `json:"present_days"`
	AttendancePercentage float64        `json:"attendance_percentage"`
	AverageWorkedHours   float64        `json:"average_worked_hours"`
	OnTimeCount          int            `json:"on_time_count"`
	StatusCounts         map[string]int `json:"status_counts"`
	Heatmap              []HeatmapDay   `json:"heatmap"`
	WeeklyHours          []WeeklyHours  `json:"weekly_hours"`
}
