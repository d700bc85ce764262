package utils

import (
	"testing"

	"clinicore-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func strPtr(value string) *string {
	return &value
}

func TestSanitizeUpdateWorkingHoursRequest(t *testing.T) {
	t.Run("Entity Fields Sanitization", func(t *testing.T) {
		request := &requests.UpdateWorkingHours{
			EntityType: "  Clinic  ",
			EntityID:   " 64f1b2c3d4e5f6a7b8c9d0e1 ",
		}

		SanitizeUpdateWorkingHoursRequest(request)

		assert.Equal(t, "clinic", request.EntityType, "entity type should be lowercase and trimmed")
		assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", request.EntityID, "entity id should be trimmed")
	})

	t.Run("Day And Time Sanitization", func(t *testing.T) {
		request := &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   "64f1b2c3d4e5f6a7b8c9d0e1",
			Schedule: []requests.DayScheduleInput{
				{
					DayOfWeek:    "  Monday  ",
					IsWorkingDay: true,
					OpeningTime:  strPtr(" 09:00 "),
					ClosingTime:  strPtr("17:00\t"),
				},
			},
		}

		SanitizeUpdateWorkingHoursRequest(request)

		assert.Equal(t, "monday", request.Schedule[0].DayOfWeek, "day should be lowercase and trimmed")
		assert.Equal(t, "09:00", *request.Schedule[0].OpeningTime, "opening time should be trimmed")
		assert.Equal(t, "17:00", *request.Schedule[0].ClosingTime, "closing time should be trimmed")
	})

	t.Run("Blank Times Become Nil", func(t *testing.T) {
		request := &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   "64f1b2c3d4e5f6a7b8c9d0e1",
			Schedule: []requests.DayScheduleInput{
				{
					DayOfWeek:      "sunday",
					IsWorkingDay:   false,
					BreakStartTime: strPtr("   "),
				},
			},
		}

		SanitizeUpdateWorkingHoursRequest(request)

		assert.Nil(t, request.Schedule[0].BreakStartTime, "whitespace-only time should be dropped")
	})

	t.Run("Nil Times Stay Nil", func(t *testing.T) {
		request := &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   "64f1b2c3d4e5f6a7b8c9d0e1",
			Schedule: []requests.DayScheduleInput{
				{DayOfWeek: "saturday", IsWorkingDay: false},
			},
		}

		SanitizeUpdateWorkingHoursRequest(request)

		assert.Nil(t, request.Schedule[0].OpeningTime)
		assert.Nil(t, request.Schedule[0].ClosingTime)
	})
}

func TestSanitizeRescheduleWorkingHoursRequest(t *testing.T) {
	t.Run("Strategy Sanitization", func(t *testing.T) {
		request := &requests.RescheduleWorkingHours{
			EntityType:      "  User  ",
			EntityID:        " 64f1b2c3d4e5f6a7b8c9d0e1 ",
			HandleConflicts: "  Reschedule  ",
		}

		SanitizeRescheduleWorkingHoursRequest(request)

		assert.Equal(t, "user", request.EntityType, "entity type should be lowercase and trimmed")
		assert.Equal(t, "reschedule", request.HandleConflicts, "strategy should be lowercase and trimmed")
	})

	t.Run("Reason Is Trimmed But Keeps Case", func(t *testing.T) {
		request := &requests.RescheduleWorkingHours{
			EntityType:         "user",
			EntityID:           "64f1b2c3d4e5f6a7b8c9d0e1",
			HandleConflicts:    "cancel",
			ReschedulingReason: "  Clinic renovation in August  ",
		}

		SanitizeRescheduleWorkingHoursRequest(request)

		assert.Equal(t, "Clinic renovation in August", request.ReschedulingReason, "reason should be trimmed only")
	})
}

func TestSanitizeSuggestScheduleRequest(t *testing.T) {
	t.Run("Role And IDs Sanitization", func(t *testing.T) {
		request := &requests.SuggestSchedule{
			Role:      "  Doctor  ",
			ClinicID:  " 64f1b2c3d4e5f6a7b8c9d0e1 ",
			ComplexID: "  ",
		}

		SanitizeSuggestScheduleRequest(request)

		assert.Equal(t, "doctor", request.Role, "role should be lowercase and trimmed")
		assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", request.ClinicID, "clinic id should be trimmed")
		assert.Equal(t, "", request.ComplexID, "blank complex id should collapse to empty")
	})
}

func TestSanitizeCheckConflictsRequest(t *testing.T) {
	t.Run("User ID Sanitization", func(t *testing.T) {
		request := &requests.CheckConflicts{
			UserID: " 64f1b2c3d4e5f6a7b8c9d0e1 ",
			Schedule: []requests.DayScheduleInput{
				{DayOfWeek: " MONDAY ", IsWorkingDay: true},
			},
		}

		SanitizeCheckConflictsRequest(request)

		assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", request.UserID, "user id should be trimmed")
		assert.Equal(t, "monday", request.Schedule[0].DayOfWeek, "day should be lowercase and trimmed")
	})
}
