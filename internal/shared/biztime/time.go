// Package biztime provides utilities for business timezone calculations.
// All storage uses UTC. The business timezone only decides calendar-day
// boundaries, which is what reminder triggers and the daily run compare.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Jakarta"

	// DateLayout is the ISO date format used in rendered messages.
	DateLayout = "2006-01-02"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Jakarta.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing the default
// timezone on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOnly strips the time-of-day from t in the business timezone.
// The result is midnight of that business day, expressed in the business location.
func DateOnly(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
}

// Today returns the current business day at midnight.
func Today() time.Time {
	return DateOnly(time.Now())
}

// DaysBetween returns the whole number of calendar days from "from" to "to"
// in the business timezone. Both sides are reduced to dates first, and the
// subtraction happens on UTC dates so DST transitions cannot shift the result.
func DaysBetween(from, to time.Time) int {
	f := from.In(Location())
	t := to.In(Location())
	fromDate := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	return DateOnly(t).UTC()
}

// FormatDate formats t as YYYY-MM-DD in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// ParseDateInBizTimezone parses a date string (YYYY-MM-DD) as business timezone midnight,
// then returns the UTC equivalent.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// ToBizTimezone converts a UTC time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
