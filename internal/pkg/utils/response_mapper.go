package utils

import (
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/responses"
)

func ConvertDayScheduleToResponse(schedule models.DaySchedule) responses.DayScheduleResponse {
	return responses.DayScheduleResponse{
		ID:             schedule.ID.Hex(),
		EntityType:     schedule.EntityType.String(),
		EntityID:       schedule.EntityID.Hex(),
		DayOfWeek:      schedule.DayOfWeek.String(),
		IsWorkingDay:   schedule.IsWorkingDay,
		OpeningTime:    schedule.OpeningTime,
		ClosingTime:    schedule.ClosingTime,
		BreakStartTime: schedule.BreakStartTime,
		BreakEndTime:   schedule.BreakEndTime,
		IsActive:       schedule.IsActive,
	}
}

func ConvertWeekToResponse(week []models.DaySchedule) []responses.DayScheduleResponse {
	result := make([]responses.DayScheduleResponse, 0, len(week))
	for _, day := range week {
		result = append(result, ConvertDayScheduleToResponse(day))
	}
	return result
}

func ConvertDayScheduleToSuggestedDay(schedule models.DaySchedule) responses.SuggestedDaySchedule {
	return responses.SuggestedDaySchedule{
		DayOfWeek:      schedule.DayOfWeek.String(),
		IsWorkingDay:   schedule.IsWorkingDay,
		OpeningTime:    schedule.OpeningTime,
		ClosingTime:    schedule.ClosingTime,
		BreakStartTime: schedule.BreakStartTime,
		BreakEndTime:   schedule.BreakEndTime,
	}
}
