package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type WorkingHoursUsecase interface {
	// ValidateSchedule checks a proposed schedule against an explicit parent.
	// Hierarchy violations come back as data, not as an error.
	ValidateSchedule(ctx context.Context, request *requests.ValidateSchedule) (*responses.ValidationResult, error)
	GetWorkingHours(ctx context.Context, entityType, entityID string) ([]responses.DayScheduleResponse, error)
	// UpdateWorkingHours validates against the resolved parent and replaces
	// the stored week. It never touches appointments.
	UpdateWorkingHours(ctx context.Context, request *requests.UpdateWorkingHours) ([]responses.DayScheduleResponse, error)
	SuggestForRole(ctx context.Context, request *requests.SuggestSchedule) (*responses.ScheduleSuggestion, error)
	SuggestForEntity(ctx context.Context, entityType, entityID string) (*responses.ScheduleSuggestion, error)
}

type WorkingHoursRepository interface {
	FindActiveByEntity(ctx context.Context, entityType models.EntityType, entityID string) ([]models.DaySchedule, error)
	// ReplaceForEntity deletes every stored day for the entity and inserts
	// the given week in one shot, returning the persisted records.
	ReplaceForEntity(ctx context.Context, entityType models.EntityType, entityID string, week []models.DaySchedule) ([]models.DaySchedule, error)
	DeactivateForEntity(ctx context.Context, entityType models.EntityType, entityID string) error
}
