package workinghours

import (
	"sort"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/utils"
)

// standardTemplateWeek is the fallback suggestion when no ancestor schedule
// exists: Monday through Friday 09:00-17:00, weekend closed.
func standardTemplateWeek() []responses.SuggestedDaySchedule {
	week := make([]responses.SuggestedDaySchedule, 0, len(models.AllDaysOfWeek()))
	for _, day := range models.AllDaysOfWeek() {
		suggested := responses.SuggestedDaySchedule{DayOfWeek: day.String()}
		if day != models.Saturday && day != models.Sunday {
			opening, closing := constvars.StandardOpeningTime, constvars.StandardClosingTime
			suggested.IsWorkingDay = true
			suggested.OpeningTime = &opening
			suggested.ClosingTime = &closing
		}
		week = append(week, suggested)
	}
	return week
}

// suggestedWeekFromSchedule copies a stored week into suggestion form,
// ordered Sunday first regardless of storage order.
func suggestedWeekFromSchedule(week []models.DaySchedule) []responses.SuggestedDaySchedule {
	sorted := make([]models.DaySchedule, len(week))
	copy(sorted, week)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DayOfWeek.Index() < sorted[j].DayOfWeek.Index()
	})

	suggestion := make([]responses.SuggestedDaySchedule, 0, len(sorted))
	for _, day := range sorted {
		suggestion = append(suggestion, utils.ConvertDayScheduleToSuggestedDay(day))
	}
	return suggestion
}
