package utils

import (
	"time"

	"elimu/internal/models/db_models"
)

// Zambia time location (CAT, +02:00)
var lusakaLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Lusaka"); err == nil {
		return loc
	}
	return time.FixedZone("CAT", 2*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds converts an epoch value in seconds to local (CAT) time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(lusakaLoc)
}

// AddBillingInterval returns t plus one billing interval. Unlike
// time.AddDate, overflow days are clamped to the last day of the target
// month rather than rolled into the next one: Jan 31 + 1 month is
// Feb 28 (29 in a leap year), and Feb 29 + 1 year is Feb 28.
func AddBillingInterval(t time.Time, interval db_models.BillingInterval) time.Time {
	years, months := 0, 1
	if interval == db_models.IntervalYear {
		years, months = 1, 0
	}

	y, m, d := t.Date()
	m += time.Month(months)
	y += years

	if last := daysIn(y, m); d > last {
		d = last
	}

	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(lusakaLoc).Format(time.RFC3339)
}
