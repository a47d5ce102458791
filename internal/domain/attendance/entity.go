package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPresent is the only status a record carries once punched in;
// days without a record are treated as absent at read time and never
// materialized.
const StatusPresent = "present"

// OnTimeCutoff is the local time-of-day boundary for an on-time punch.
var OnTimeCutoff = mustClock("09:30:00")

type Record struct {
	ID          string
	EmployeeID  string
	Date        time.Time // calendar day, midnight local
	PunchIn     time.Time
	PunchOut    *time.Time
	WorkedHours *float64 // derived at punch-out, 2 decimals
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Open reports whether the record still awaits its punch-out.
func (r *Record) Open() bool {
	return r.PunchOut == nil
}

// OnTime reports whether the punch-in happened at or before the cutoff,
// comparing time-of-day only.
func (r *Record) OnTime() bool {
	return !clockOf(r.PunchIn).After(OnTimeCutoff)
}

// WorkedHoursBetween derives worked hours from a punch pair: the elapsed
// seconds divided by 3600, rounded to exactly 2 decimals.
func WorkedHoursBetween(punchIn, punchOut time.Time) (float64, error) {
	if !punchOut.After(punchIn) {
		return 0, ErrPunchOutBeforePunchIn
	}
	hours := decimal.NewFromFloat(punchOut.Sub(punchIn).Seconds()).
		Div(decimal.NewFromInt(3600)).
		Round(2)
	f, _ := hours.Float64()
	return f, nil
}

// clockOf strips the date, keeping a comparable time-of-day.
func clockOf(t time.Time) time.Time {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func mustClock(s string) time.Time {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		panic(err)
	}
	return clockOf(t)
}
