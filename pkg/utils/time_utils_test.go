package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"elimu/internal/models/db_models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestAddBillingInterval_MonthSimple(t *testing.T) {
	got := AddBillingInterval(date(2025, time.March, 15), db_models.IntervalMonth)
	assert.Equal(t, date(2025, time.April, 15), got)
}

func TestAddBillingInterval_MonthEndClamped(t *testing.T) {
	// Jan 31 + 1 month lands on the last day of February, never March.
	got := AddBillingInterval(date(2025, time.January, 31), db_models.IntervalMonth)
	assert.Equal(t, date(2025, time.February, 28), got)

	got = AddBillingInterval(date(2024, time.January, 31), db_models.IntervalMonth)
	assert.Equal(t, date(2024, time.February, 29), got)
}

func TestAddBillingInterval_MonthAcrossYear(t *testing.T) {
	got := AddBillingInterval(date(2025, time.December, 31), db_models.IntervalMonth)
	assert.Equal(t, date(2026, time.January, 31), got)
}

func TestAddBillingInterval_YearSimple(t *testing.T) {
	got := AddBillingInterval(date(2025, time.June, 10), db_models.IntervalYear)
	assert.Equal(t, date(2026, time.June, 10), got)
}

func TestAddBillingInterval_LeapDayClamped(t *testing.T) {
	got := AddBillingInterval(date(2024, time.February, 29), db_models.IntervalYear)
	assert.Equal(t, date(2025, time.February, 28), got)
}

func TestAddBillingInterval_PreservesClock(t *testing.T) {
	in := time.Date(2025, time.May, 7, 23, 59, 59, 0, time.UTC)
	got := AddBillingInterval(in, db_models.IntervalMonth)
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
}

func TestFromUnixSeconds_Zero(t *testing.T) {
	assert.True(t, FromUnixSeconds(0).IsZero())
	assert.True(t, FromUnixSeconds(-5).IsZero())
}
