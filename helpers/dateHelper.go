package helpers

import (
	"fmt"
	"regexp"
	"time"
)

const (
	dayLayout     = "2006-01-02"
	displayLayout = "Mon Jan 02 2006"
)

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDay parses a YYYY-MM-DD string into midnight UTC. Anchoring to a fixed
// zone keeps the calendar day stable no matter what time zone the server
// renders it back in.
func ParseDay(value string) (time.Time, error) {
	if !dayPattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("date %q does not match YYYY-MM-DD", value)
	}
	return time.ParseInLocation(dayLayout, value, time.UTC)
}

// Today returns the current calendar day at midnight UTC.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// FormatDay renders a stored date as e.g. "Fri Mar 05 2021".
func FormatDay(t time.Time) string {
	return t.UTC().Format(displayLayout)
}
