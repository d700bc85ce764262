package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
)

// BuildDayScheduleModels turns a submitted week into persistable records.
// Time fields on non-working days are dropped, and every record is stamped
// active with fresh timestamps so the replace writes a clean week.
func BuildDayScheduleModels(entityType models.EntityType, entityID string, schedule []requests.DayScheduleInput) ([]models.DaySchedule, error) {
	objectID, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	week := make([]models.DaySchedule, 0, len(schedule))
	for _, day := range schedule {
		record := models.DaySchedule{
			EntityType:   entityType,
			EntityID:     objectID,
			DayOfWeek:    models.DayOfWeek(day.DayOfWeek),
			IsWorkingDay: day.IsWorkingDay,
			IsActive:     true,
		}
		if day.IsWorkingDay {
			record.OpeningTime = day.OpeningTime
			record.ClosingTime = day.ClosingTime
			record.BreakStartTime = day.BreakStartTime
			record.BreakEndTime = day.BreakEndTime
		}
		record.SetCreatedAtUpdatedAt()
		week = append(week, record)
	}
	return week, nil
}
