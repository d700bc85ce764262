package workinghours

import (
	"testing"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func timePtr(value string) *string {
	return &value
}

func workingDay(day, opening, closing string) requests.DayScheduleInput {
	return requests.DayScheduleInput{
		DayOfWeek:    day,
		IsWorkingDay: true,
		OpeningTime:  timePtr(opening),
		ClosingTime:  timePtr(closing),
	}
}

func closedDay(day string) requests.DayScheduleInput {
	return requests.DayScheduleInput{DayOfWeek: day}
}

func storedDay(day models.DayOfWeek, working bool, opening, closing *string) models.DaySchedule {
	return models.DaySchedule{
		DayOfWeek:    day,
		IsWorkingDay: working,
		OpeningTime:  opening,
		ClosingTime:  closing,
		IsActive:     true,
	}
}

func TestValidateStructure(t *testing.T) {

	t.Run("Valid Full Week", func(t *testing.T) {
		schedule := []requests.DayScheduleInput{
			closedDay("sunday"),
			workingDay("monday", "09:00", "17:00"),
			workingDay("tuesday", "09:00", "17:00"),
			workingDay("wednesday", "09:00", "17:00"),
			workingDay("thursday", "09:00", "17:00"),
			workingDay("friday", "09:00", "13:00"),
			closedDay("saturday"),
		}

		errs := ValidateStructure(schedule)
		assert.Empty(t, errs, "a well-formed week should produce no structural errors")
	})

	t.Run("Working Day Without Times Is Open All Day", func(t *testing.T) {
		schedule := []requests.DayScheduleInput{
			{DayOfWeek: "monday", IsWorkingDay: true},
		}

		errs := ValidateStructure(schedule)
		assert.Empty(t, errs, "omitting both bounds means open all day, not an error")
	})

	t.Run("Duplicate Day", func(t *testing.T) {
		schedule := []requests.DayScheduleInput{
			workingDay("monday", "09:00", "17:00"),
			workingDay("monday", "10:00", "16:00"),
		}

		errs := ValidateStructure(schedule)
		assert.Len(t, errs, 1, "the second monday should be flagged once")
		assert.Equal(t, "monday", errs[0].DayOfWeek)
		assert.Contains(t, errs[0].Message.En, "more than once")
		assert.NotEmpty(t, errs[0].Message.Ar, "every validation message should carry an Arabic variant")
	})

	t.Run("Opening Without Closing", func(t *testing.T) {
		schedule := []requests.DayScheduleInput{
			{DayOfWeek: "monday", IsWorkingDay: true, OpeningTime: timePtr("09:00")},
		}

		errs := ValidateStructure(schedule)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message.En, "provided together")
	})

	t.Run("Opening Not Before Closing", func(t *testing.T) {
		for _, tc := range []struct {
			name             string
			opening, closing string
		}{
			{name: "Reversed", opening: "17:00", closing: "09:00"},
			{name: "Equal", opening: "09:00", closing: "09:00"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				errs := ValidateStructure([]requests.DayScheduleInput{workingDay("monday", tc.opening, tc.closing)})
				assert.Len(t, errs, 1)
				assert.Contains(t, errs[0].Message.En, "openingTime must be before closingTime")
			})
		}
	})

	t.Run("Invalid Time Formats", func(t *testing.T) {
		badTimes := []string{"9:00", "24:00", "12:60", "12:5", "noon", "12.30", "12:30:15", ""}
		for _, value := range badTimes {
			t.Run("Value_"+value, func(t *testing.T) {
				errs := ValidateStructure([]requests.DayScheduleInput{workingDay("monday", value, "17:00")})
				assert.Len(t, errs, 1, "%q should be rejected as a clock time", value)
				assert.Contains(t, errs[0].Message.En, "invalid time format")
			})
		}
	})

	t.Run("Break Incomplete Pair", func(t *testing.T) {
		day := workingDay("monday", "09:00", "17:00")
		day.BreakStartTime = timePtr("12:00")

		errs := ValidateStructure([]requests.DayScheduleInput{day})
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message.En, "breakStartTime and breakEndTime")
	})

	t.Run("Break Not Before Break End", func(t *testing.T) {
		day := workingDay("monday", "09:00", "17:00")
		day.BreakStartTime = timePtr("13:00")
		day.BreakEndTime = timePtr("12:00")

		errs := ValidateStructure([]requests.DayScheduleInput{day})
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message.En, "breakStartTime must be before breakEndTime")
	})

	t.Run("Break Outside Opening Hours", func(t *testing.T) {
		day := workingDay("monday", "09:00", "17:00")
		day.BreakStartTime = timePtr("08:00")
		day.BreakEndTime = timePtr("08:30")

		errs := ValidateStructure([]requests.DayScheduleInput{day})
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message.En, "within opening hours")
	})

	t.Run("Break Without Bounds Is Allowed", func(t *testing.T) {
		day := requests.DayScheduleInput{
			DayOfWeek:      "monday",
			IsWorkingDay:   true,
			BreakStartTime: timePtr("12:00"),
			BreakEndTime:   timePtr("13:00"),
		}

		errs := ValidateStructure([]requests.DayScheduleInput{day})
		assert.Empty(t, errs, "a break on an open-all-day schedule has nothing to lie outside of")
	})

	t.Run("Times On Non Working Day Are Ignored", func(t *testing.T) {
		day := requests.DayScheduleInput{
			DayOfWeek:   "sunday",
			OpeningTime: timePtr("17:00"),
			ClosingTime: timePtr("09:00"),
		}

		errs := ValidateStructure([]requests.DayScheduleInput{day})
		assert.Empty(t, errs, "a closed day is not checked even when it carries reversed times")
	})

	t.Run("Multiple Violations Reported Individually", func(t *testing.T) {
		broken := workingDay("tuesday", "18:00", "09:00")
		broken.BreakStartTime = timePtr("14:00")

		schedule := []requests.DayScheduleInput{
			workingDay("monday", "09:00", "17:00"),
			broken,
		}

		errs := ValidateStructure(schedule)
		assert.Len(t, errs, 2, "ordering and break pairing should each be reported")
	})
}

func TestValidateAgainstParent(t *testing.T) {
	parentWeek := []models.DaySchedule{
		storedDay(models.Monday, true, timePtr("09:00"), timePtr("18:00")),
		storedDay(models.Tuesday, true, timePtr("09:00"), timePtr("18:00")),
		storedDay(models.Wednesday, true, timePtr("09:00"), timePtr("18:00")),
		storedDay(models.Thursday, true, timePtr("09:00"), timePtr("18:00")),
		storedDay(models.Friday, true, timePtr("09:00"), timePtr("14:00")),
		storedDay(models.Saturday, false, nil, nil),
		storedDay(models.Sunday, false, nil, nil),
	}

	t.Run("Child Within Parent", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("monday", "10:00", "16:00"),
			workingDay("friday", "09:00", "14:00"),
			closedDay("saturday"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("Working On Parent Closed Day", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("saturday", "10:00", "14:00"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1, "a closed parent day yields exactly one error")
		assert.Equal(t, "saturday", result.Errors[0].DayOfWeek)
		assert.Equal(t, "clinic is open on saturday but complex is closed that day", result.Errors[0].Message.En)
		assert.Nil(t, result.Errors[0].SuggestedRange, "no time range can fix a closed day")
	})

	t.Run("Day Missing From Parent Week Counts As Closed", func(t *testing.T) {
		partialParent := []models.DaySchedule{
			storedDay(models.Monday, true, timePtr("09:00"), timePtr("18:00")),
		}
		child := []requests.DayScheduleInput{
			workingDay("tuesday", "09:00", "17:00"),
		}

		result := ValidateAgainstParent(child, partialParent, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("Opens Before Parent", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("monday", "08:00", "17:00"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, "clinic cannot open at 08:00 before complex opens at 09:00", result.Errors[0].Message.En)
		if assert.NotNil(t, result.Errors[0].SuggestedRange, "time-bound violations should carry the parent range") {
			assert.Equal(t, "09:00", result.Errors[0].SuggestedRange.OpeningTime)
			assert.Equal(t, "18:00", result.Errors[0].SuggestedRange.ClosingTime)
		}
	})

	t.Run("Closes After Parent", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("friday", "09:00", "16:00"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, "clinic cannot close at 16:00 after complex closes at 14:00", result.Errors[0].Message.En)
	})

	t.Run("Both Bounds Violated", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("monday", "07:00", "22:00"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 2, "each violated bound is its own error")
	})

	t.Run("No Parent Schedule Passes Everything", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("sunday", "00:00", "23:59"),
			workingDay("monday", "00:00", "23:59"),
		}

		result := ValidateAgainstParent(child, nil, "clinic", "complex")
		assert.True(t, result.IsValid, "an entity with no stored hours imposes no constraint")
		assert.Empty(t, result.Errors)
	})

	t.Run("Child Closed Days Are Skipped", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			closedDay("saturday"),
			closedDay("sunday"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.True(t, result.IsValid, "closed child days need no parent coverage")
	})

	t.Run("Unbounded Sides Skip Time Comparison", func(t *testing.T) {
		openAllDayParent := []models.DaySchedule{
			storedDay(models.Monday, true, nil, nil),
		}
		child := []requests.DayScheduleInput{
			workingDay("monday", "00:00", "23:59"),
		}

		result := ValidateAgainstParent(child, openAllDayParent, "clinic", "complex")
		assert.True(t, result.IsValid, "a parent without bounds allows any child hours")

		unboundedChild := []requests.DayScheduleInput{
			{DayOfWeek: "monday", IsWorkingDay: true},
		}
		result = ValidateAgainstParent(unboundedChild, parentWeek, "clinic", "complex")
		assert.True(t, result.IsValid, "a child without bounds is not compared against parent bounds")
	})

	t.Run("Structural Errors Short Circuit", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("monday", "17:00", "09:00"),
			workingDay("saturday", "10:00", "14:00"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1, "hierarchy comparison should not run on a malformed week")
		assert.Contains(t, result.Errors[0].Message.En, "openingTime must be before closingTime")
	})

	t.Run("Violations Across Multiple Days", func(t *testing.T) {
		child := []requests.DayScheduleInput{
			workingDay("monday", "08:00", "17:00"),
			workingDay("saturday", "10:00", "14:00"),
			workingDay("friday", "09:00", "13:00"),
		}

		result := ValidateAgainstParent(child, parentWeek, "clinic", "complex")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 2)

		days := []string{result.Errors[0].DayOfWeek, result.Errors[1].DayOfWeek}
		assert.Contains(t, days, "monday")
		assert.Contains(t, days, "saturday")
	})
}
