package service

import (
	"fmt"
	"strings"
	"time"
)

const dayFormat = "2006-01-02"

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// dayKey renders t as the local calendar date string used to key
// history and weight rows.
func dayKey(t time.Time) string {
	return t.Format(dayFormat)
}

// parseDayUTC turns a YYYY-MM-DD key into a UTC midnight, so that
// whole-day arithmetic is exact regardless of DST.
func parseDayUTC(key string) (time.Time, error) {
	t, err := time.Parse(dayFormat, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", key)
	}
	return t, nil
}

// dayUTC maps a wall-clock instant onto the UTC midnight of its local
// calendar date.
func dayUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
