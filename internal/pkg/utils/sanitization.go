package utils

import (
	"strings"

	"clinicore-service/internal/pkg/dto/requests"
)

func sanitizeDaySchedules(schedule []requests.DayScheduleInput) {
	for i := range schedule {
		schedule[i].DayOfWeek = strings.ToLower(strings.TrimSpace(schedule[i].DayOfWeek))
		trimClockTime(&schedule[i].OpeningTime)
		trimClockTime(&schedule[i].ClosingTime)
		trimClockTime(&schedule[i].BreakStartTime)
		trimClockTime(&schedule[i].BreakEndTime)
	}
}

func trimClockTime(value **string) {
	if *value == nil {
		return
	}
	trimmed := strings.TrimSpace(**value)
	if trimmed == "" {
		*value = nil
		return
	}
	*value = &trimmed
}

func SanitizeValidateScheduleRequest(input *requests.ValidateSchedule) {
	input.EntityType = strings.ToLower(strings.TrimSpace(input.EntityType))
	input.EntityID = strings.TrimSpace(input.EntityID)
	input.ParentEntityType = strings.ToLower(strings.TrimSpace(input.ParentEntityType))
	input.ParentEntityID = strings.TrimSpace(input.ParentEntityID)
	sanitizeDaySchedules(input.Schedule)
}

func SanitizeUpdateWorkingHoursRequest(input *requests.UpdateWorkingHours) {
	input.EntityType = strings.ToLower(strings.TrimSpace(input.EntityType))
	input.EntityID = strings.TrimSpace(input.EntityID)
	sanitizeDaySchedules(input.Schedule)
}

func SanitizeRescheduleWorkingHoursRequest(input *requests.RescheduleWorkingHours) {
	input.EntityType = strings.ToLower(strings.TrimSpace(input.EntityType))
	input.EntityID = strings.TrimSpace(input.EntityID)
	input.HandleConflicts = strings.ToLower(strings.TrimSpace(input.HandleConflicts))
	input.ReschedulingReason = strings.TrimSpace(input.ReschedulingReason)
	sanitizeDaySchedules(input.Schedule)
}

func SanitizeCheckConflictsRequest(input *requests.CheckConflicts) {
	input.UserID = strings.TrimSpace(input.UserID)
	sanitizeDaySchedules(input.Schedule)
}

func SanitizeSuggestScheduleRequest(input *requests.SuggestSchedule) {
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.ClinicID = strings.TrimSpace(input.ClinicID)
	input.ComplexID = strings.TrimSpace(input.ComplexID)
}
