package contracts

import (
	"context"

	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type ReschedulingUsecase interface {
	CheckConflicts(ctx context.Context, request *requests.CheckConflicts) (*responses.ConflictCheckResult, error)
	// UpdateWithRescheduling replaces the schedule and resolves conflicting
	// appointments under one transaction. Concurrent calls for the same
	// entity must be serialized by the caller.
	UpdateWithRescheduling(ctx context.Context, request *requests.RescheduleWorkingHours) (*responses.ReschedulingResult, error)
}
