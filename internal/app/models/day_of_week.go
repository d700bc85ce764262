package models

import "time"

// DayOfWeek is the Sunday-first weekday enumeration used across schedules
// and appointments. Its index matches Go's time.Weekday numbering.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

var allDaysOfWeek = [7]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func AllDaysOfWeek() [7]DayOfWeek {
	return allDaysOfWeek
}

func (d DayOfWeek) Valid() bool {
	for _, day := range allDaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Index returns the Sunday-first position, or -1 for an unknown value.
func (d DayOfWeek) Index() int {
	for i, day := range allDaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}

func (d DayOfWeek) String() string {
	return string(d)
}

func DayOfWeekFromTime(t time.Time) DayOfWeek {
	return allDaysOfWeek[int(t.Weekday())]
}
