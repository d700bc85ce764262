package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOfWeekIndex(t *testing.T) {
	t.Run("Sunday First Ordering", func(t *testing.T) {
		assert.Equal(t, 0, Sunday.Index())
		assert.Equal(t, 1, Monday.Index())
		assert.Equal(t, 6, Saturday.Index())
	})

	t.Run("Unknown Day", func(t *testing.T) {
		assert.Equal(t, -1, DayOfWeek("holiday").Index())
		assert.False(t, DayOfWeek("holiday").Valid())
	})

	t.Run("Matches Time Package Numbering", func(t *testing.T) {
		for _, day := range AllDaysOfWeek() {
			assert.True(t, day.Valid())
			assert.Equal(t, strings.ToLower(time.Weekday(day.Index()).String()), day.String())
		}
	})
}

func TestDayOfWeekFromTime(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, DayOfWeekFromTime(monday))
	assert.Equal(t, Sunday, DayOfWeekFromTime(monday.AddDate(0, 0, 6)))
}
