package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"clinicore-service/internal/pkg/constvars"
)

var clockTimeRegex = regexp.MustCompile(constvars.RegexClockTime)

// ParseClockTime converts a strict zero-padded "HH:mm" string into the
// minute offset from midnight, in [0,1439].
func ParseClockTime(value string) (int, error) {
	if !clockTimeRegex.MatchString(value) {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:mm", value)
	}
	hours, _ := strconv.Atoi(value[:2])
	minutes, _ := strconv.Atoi(value[3:])
	return hours*60 + minutes, nil
}

// FormatClockTime is the inverse of ParseClockTime, always zero-padded.
func FormatClockTime(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

func IsValidClockTime(value string) bool {
	return clockTimeRegex.MatchString(value)
}

// StartOfDay truncates a timestamp to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
