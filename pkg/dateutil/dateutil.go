package dateutil

import (
	"os"
	"time"
)

// TestTimeEnv overrides Today for reproducible output. Value format:
// 2006-01-02.
const TestTimeEnv = "CAL_TEST_TIME"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// Today returns today's date (start of day), honoring the CAL_TEST_TIME
// environment variable when set.
func Today() time.Time {
	if v := os.Getenv(TestTimeEnv); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			return t
		}
	}
	return StartOfDay(time.Now())
}
