package attendance

import (
	"testing"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func presentRecord(date time.Time, punchInHour, punchInMin int, hours float64) attendance.Record {
	punchIn := date.Add(time.Duration(punchInHour)*time.Hour + time.Duration(punchInMin)*time.Minute)
	return attendance.Record{
		EmployeeID:  "E002",
		Date:        date,
		PunchIn:     punchIn,
		WorkedHours: &hours,
		Status:      attendance.StatusPresent,
	}
}

func TestSummarize_Empty(t *testing.T) {
	resp := Summarize("E002", nil, day(2026, 3, 6))

	assert.Equal(t, "E002", resp.EmployeeID)
	assert.Zero(t, resp.PresentDays)
	assert.Zero(t, resp.AttendancePercentage)
	assert.Empty(t, resp.Heatmap)
	assert.Empty(t, resp.WeeklyHours)
}

func TestSummarize_FillsAbsentAndWeekend(t *testing.T) {
	// Mon 2026-03-02 through Fri 2026-03-06; records on Mon and Wed only.
	records := []attendance.Record{
		presentRecord(day(2026, 3, 2), 9, 0, 8),
		presentRecord(day(2026, 3, 4), 10, 0, 7.5),
	}

	resp := Summarize("E002", records, day(2026, 3, 8)) // Sunday

	require.Len(t, resp.Heatmap, 7)
	assert.Equal(t, "present", resp.Heatmap[0].Status) // Mon
	assert.Equal(t, "absent", resp.Heatmap[1].Status)  // Tue
	assert.Equal(t, "present", resp.Heatmap[2].Status) // Wed
	assert.Equal(t, "absent", resp.Heatmap[3].Status)  // Thu
	assert.Equal(t, "absent", resp.Heatmap[4].Status)  // Fri
	assert.Equal(t, "weekend", resp.Heatmap[5].Status) // Sat
	assert.Equal(t, "weekend", resp.Heatmap[6].Status) // Sun

	assert.Equal(t, 2, resp.PresentDays)
	assert.Equal(t, map[string]int{"present": 2, "absent": 3, "weekend": 2}, resp.StatusCounts)

	// 2 present out of 5 working days
	assert.Equal(t, 40.0, resp.AttendancePercentage)
}

func TestSummarize_OnTimeCount(t *testing.T) {
	records := []attendance.Record{
		presentRecord(day(2026, 3, 2), 9, 0, 8),   // on time
		presentRecord(day(2026, 3, 3), 9, 30, 8),  // exactly at cutoff
		presentRecord(day(2026, 3, 4), 9, 45, 8),  // late
		presentRecord(day(2026, 3, 5), 11, 10, 8), // late
	}

	resp := Summarize("E002", records, day(2026, 3, 5))

	assert.Equal(t, 2, resp.OnTimeCount)
}

func TestSummarize_AverageWorkedHours(t *testing.T) {
	noHours := presentRecord(day(2026, 3, 4), 9, 0, 0)
	noHours.WorkedHours = nil // still punched in

	records := []attendance.Record{
		presentRecord(day(2026, 3, 2), 9, 0, 8),
		presentRecord(day(2026, 3, 3), 9, 0, 7),
		noHours,
	}

	resp := Summarize("E002", records, day(2026, 3, 4))

	// the open record is excluded from the average
	assert.Equal(t, 7.5, resp.AverageWorkedHours)
}

func TestSummarize_WeeklyBuckets(t *testing.T) {
	records := []attendance.Record{
		presentRecord(day(2026, 3, 2), 9, 0, 8),  // Mon, week of 03-02
		presentRecord(day(2026, 3, 6), 9, 0, 7),  // Fri, week of 03-02
		presentRecord(day(2026, 3, 9), 9, 0, 6),  // Mon, week of 03-09
		presentRecord(day(2026, 3, 11), 9, 0, 8), // Wed, week of 03-09
	}

	resp := Summarize("E002", records, day(2026, 3, 11))

	require.Len(t, resp.WeeklyHours, 2)
	assert.Equal(t, "2026-03-02", resp.WeeklyHours[0].WeekStart)
	assert.Equal(t, 15.0, resp.WeeklyHours[0].TotalHours)
	assert.Equal(t, "2026-03-09", resp.WeeklyHours[1].WeekStart)
	assert.Equal(t, 14.0, resp.WeeklyHours[1].TotalHours)
}

func TestSummarize_TodayInEasternTimezone(t *testing.T) {
	// Database dates scan as UTC midnights while the server clock runs
	// in a local zone. East of UTC the local midnight of a day is an
	// earlier instant than its UTC midnight; the day must still count.
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	records := []attendance.Record{
		presentRecord(day(2026, 3, 2), 9, 0, 8),
	}
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, kolkata)

	resp := Summarize("E002", records, today)

	require.Len(t, resp.Heatmap, 1)
	assert.Equal(t, "2026-03-02", resp.Heatmap[0].Date)
	assert.Equal(t, "present", resp.Heatmap[0].Status)
	assert.Equal(t, 1, resp.PresentDays)
	assert.Equal(t, 1, resp.OnTimeCount)
}

func TestSummarize_RecordDatesInLocalTimezone(t *testing.T) {
	// The in-process seeder builds record dates in the configured zone
	// rather than UTC; the axis must still line up with today.
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	records := []attendance.Record{
		presentRecord(time.Date(2026, 3, 2, 0, 0, 0, 0, jakarta), 9, 0, 8),
	}

	resp := Summarize("E002", records, day(2026, 3, 3))

	require.Len(t, resp.Heatmap, 2)
	assert.Equal(t, "2026-03-02", resp.Heatmap[0].Date)
	assert.Equal(t, "present", resp.Heatmap[0].Status)
	assert.Equal(t, "2026-03-03", resp.Heatmap[1].Date)
}

func TestSummarize_AxisStopsAtToday(t *testing.T) {
	records := []attendance.Record{
		presentRecord(day(2026, 3, 2), 9, 0, 8),
	}

	resp := Summarize("E002", records, day(2026, 3, 3))

	require.Len(t, resp.Heatmap, 2)
	assert.Equal(t, "2026-03-02", resp.Heatmap[0].Date)
	assert.Equal(t, "2026-03-03", resp.Heatmap[1].Date)
}
