package attendance

import (
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const (
	statusAbsent  = "absent"
	statusWeekend = "weekend"
)

// Summarize computes the full aggregate view from an employee's punch
// records. Pure: records in, figures out, nothing persisted. The axis
// runs from the earliest record to today, with missing days filled in
// as absent or weekend. Record dates and today may carry different
// locations, so the axis walks calendar days, not instants.
func Summarize(employeeID string, records []attendance.Record, today time.Time) attendance.SummaryResponse {
	resp := attendance.SummaryResponse{
		EmployeeID:   employeeID,
		StatusCounts: map[string]int{},
		Heatmap:      []attendance.HeatmapDay{},
		WeeklyHours:  []attendance.WeeklyHours{},
	}
	if len(records) == 0 {
		return resp
	}

	today = calendarDay(today)

	byDate := make(map[string]attendance.Record, len(records))
	first := calendarDay(records[0].Date)
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
		if d := calendarDay(rec.Date); d.Before(first) {
			first = d
		}
	}

	var workingDays, hoursDays int
	hoursSum := decimal.Zero
	weekly := map[string]decimal.Decimal{}
	weekOrder := []string{}

	for day := first; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		rec, present := byDate[key]

		cell := attendance.HeatmapDay{Date: key}
		switch {
		case present:
			cell.Status = rec.Status
			if rec.WorkedHours != nil {
				cell.WorkedHours = *rec.WorkedHours
			}
		case isWeekend(day):
			cell.Status = statusWeekend
		default:
			cell.Status = statusAbsent
		}
		resp.Heatmap = append(resp.Heatmap, cell)
		resp.StatusCounts[cell.Status]++

		if !isWeekend(day) {
			workingDays++
		}

		if present {
			if rec.OnTime() {
				resp.OnTimeCount++
			}
			if rec.WorkedHours != nil && *rec.WorkedHours > 0 {
				h := decimal.NewFromFloat(*rec.WorkedHours)
				hoursSum = hoursSum.Add(h)
				hoursDays++

				week := weekStart(day).Format("2006-01-02")
				if _, seen := weekly[week]; !seen {
					weekOrder = append(weekOrder, week)
				}
				weekly[week] = weekly[week].Add(h)
			}
		}
	}

	resp.PresentDays = resp.StatusCounts[attendance.StatusPresent]

	if workingDays > 0 {
		pct := decimal.NewFromInt(int64(resp.PresentDays)).
			Div(decimal.NewFromInt(int64(workingDays))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
		resp.AttendancePercentage, _ = pct.Float64()
	}

	if hoursDays > 0 {
		avg := hoursSum.Div(decimal.NewFromInt(int64(hoursDays))).Round(2)
		resp.AverageWorkedHours, _ = avg.Float64()
	}

	for _, week := range weekOrder {
		total, _ := weekly[week].Round(2).Float64()
		resp.WeeklyHours = append(resp.WeeklyHours, attendance.WeeklyHours{
			WeekStart:  week,
			TotalHours: total,
		})
	}

	return resp
}

// calendarDay strips a timestamp down to its calendar date in UTC so
// that dates scanned from the database and dates built in the server's
// timezone compare equal when they name the same day.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// weekStart returns the Monday of the day's week.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
