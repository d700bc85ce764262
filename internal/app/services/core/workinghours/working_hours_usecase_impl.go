package workinghours

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	workingHoursUsecaseInstance contracts.WorkingHoursUsecase
	onceWorkingHoursUsecase     sync.Once
)

type workingHoursUsecase struct {
	WorkingHoursRepository contracts.WorkingHoursRepository
	EntityRepository       contracts.EntityRepository
	RedisRepository        contracts.RedisRepository
	TransactionManager     contracts.TransactionManager
	ParentResolver         *ParentResolver
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewWorkingHoursUsecase(
	workingHoursRepository contracts.WorkingHoursRepository,
	entityRepository contracts.EntityRepository,
	redisRepository contracts.RedisRepository,
	transactionManager contracts.TransactionManager,
	parentResolver *ParentResolver,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WorkingHoursUsecase {
	onceWorkingHoursUsecase.Do(func() {
		instance := &workingHoursUsecase{
			WorkingHoursRepository: workingHoursRepository,
			EntityRepository:       entityRepository,
			RedisRepository:        redisRepository,
			TransactionManager:     transactionManager,
			ParentResolver:         parentResolver,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		workingHoursUsecaseInstance = instance
	})
	return workingHoursUsecaseInstance
}

func (uc *workingHoursUsecase) ValidateSchedule(ctx context.Context, request *requests.ValidateSchedule) (*responses.ValidationResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workingHoursUsecase.ValidateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, request.EntityType),
		zap.String(constvars.LoggingEntityIDKey, request.EntityID),
	)

	parentType, err := models.ParseEntityType(request.ParentEntityType)
	if err != nil {
		return nil, exceptions.ErrInvalidEntityType(request.ParentEntityType)
	}

	parentHours, err := uc.activeHoursCached(ctx, parentType, request.ParentEntityID)
	if err != nil {
		uc.Log.Error("workingHoursUsecase.ValidateSchedule error fetching parent working hours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := ValidateAgainstParent(request.Schedule, parentHours, request.EntityType, request.ParentEntityType)

	uc.Log.Info("workingHoursUsecase.ValidateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("is_valid", result.IsValid),
		zap.Int("error_count", len(result.Errors)),
	)
	return result, nil
}

func (uc *workingHoursUsecase) GetWorkingHours(ctx context.Context, entityType, entityID string) ([]responses.DayScheduleResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workingHoursUsecase.GetWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, entityType),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	)

	parsedType, err := models.ParseEntityType(entityType)
	if err != nil {
		return nil, exceptions.ErrInvalidEntityType(entityType)
	}

	// Own-schedule reads skip the cache so a caller always sees its latest
	// write; only parent lookups tolerate the TTL staleness window.
	week, err := uc.WorkingHoursRepository.FindActiveByEntity(ctx, parsedType, entityID)
	if err != nil {
		uc.Log.Error("workingHoursUsecase.GetWorkingHours error fetching working hours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(week) == 0 {
		return nil, exceptions.ErrScheduleNotFound(entityType, entityID)
	}

	uc.Log.Info("workingHoursUsecase.GetWorkingHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(week)),
	)
	return utils.ConvertWeekToResponse(week), nil
}

func (uc *workingHoursUsecase) UpdateWorkingHours(ctx context.Context, request *requests.UpdateWorkingHours) ([]responses.DayScheduleResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workingHoursUsecase.UpdateWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, request.EntityType),
		zap.String(constvars.LoggingEntityIDKey, request.EntityID),
	)

	entityType, err := models.ParseEntityType(request.EntityType)
	if err != nil {
		return nil, exceptions.ErrInvalidEntityType(request.EntityType)
	}

	if structural := ValidateStructure(request.Schedule); len(structural) > 0 {
		return nil, exceptions.ErrScheduleStructureInvalid(structural)
	}

	if request.ValidateParent {
		if err := uc.validateAgainstResolvedParent(ctx, entityType, request.EntityID, request.Schedule); err != nil {
			return nil, err
		}
	}

	week, err := utils.BuildDayScheduleModels(entityType, request.EntityID, request.Schedule)
	if err != nil {
		return nil, err
	}

	var persisted []models.DaySchedule
	err = uc.TransactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		persisted, txErr = uc.WorkingHoursRepository.ReplaceForEntity(txCtx, entityType, request.EntityID, week)
		return txErr
	})
	if err != nil {
		uc.Log.Error("workingHoursUsecase.UpdateWorkingHours error replacing working hours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.invalidateCacheIfConfigured(ctx, entityType, request.EntityID)

	uc.Log.Info("workingHoursUsecase.UpdateWorkingHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(persisted)),
	)
	return utils.ConvertWeekToResponse(persisted), nil
}

func (uc *workingHoursUsecase) SuggestForRole(ctx context.Context, request *requests.SuggestSchedule) (*responses.ScheduleSuggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workingHoursUsecase.SuggestForRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", request.Role),
	)

	var (
		sourceType models.EntityType
		sourceID   string
		sourceName bilingual.Message
	)

	switch request.Role {
	case constvars.RoleDoctor:
		if request.ClinicID == "" {
			return nil, exceptions.ErrSuggestionMissingID(constvars.URLQueryParamClinicID, request.Role)
		}
		clinic, err := uc.EntityRepository.FindClinicByID(ctx, request.ClinicID)
		if err != nil {
			return nil, err
		}
		if clinic == nil {
			return nil, exceptions.ErrEntityNotFound(models.EntityTypeClinic.String(), request.ClinicID)
		}
		sourceType, sourceID, sourceName = models.EntityTypeClinic, request.ClinicID, clinic.Name
	case constvars.RoleStaff:
		if request.ComplexID == "" {
			return nil, exceptions.ErrSuggestionMissingID(constvars.URLQueryParamComplexID, request.Role)
		}
		medicalComplex, err := uc.EntityRepository.FindComplexByID(ctx, request.ComplexID)
		if err != nil {
			return nil, err
		}
		if medicalComplex == nil {
			return nil, exceptions.ErrEntityNotFound(models.EntityTypeComplex.String(), request.ComplexID)
		}
		sourceType, sourceID, sourceName = models.EntityTypeComplex, request.ComplexID, medicalComplex.Name
	default:
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown role %s", request.Role))
	}

	week, err := uc.WorkingHoursRepository.FindActiveByEntity(ctx, sourceType, sourceID)
	if err != nil {
		return nil, err
	}
	if len(week) == 0 {
		return nil, exceptions.ErrSuggestionSourceNotFound(sourceType.String(), sourceID)
	}

	uc.Log.Info("workingHoursUsecase.SuggestForRole succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, sourceType.String()),
		zap.String(constvars.LoggingEntityIDKey, sourceID),
	)
	return &responses.ScheduleSuggestion{
		SuggestedSchedule: suggestedWeekFromSchedule(week),
		Source: responses.ScheduleSource{
			EntityType: sourceType.String(),
			EntityID:   sourceID,
			EntityName: sourceName,
		},
		CanModify: true,
	}, nil
}

func (uc *workingHoursUsecase) SuggestForEntity(ctx context.Context, entityType, entityID string) (*responses.ScheduleSuggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workingHoursUsecase.SuggestForEntity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, entityType),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	)

	currentType, err := models.ParseEntityType(entityType)
	if err != nil {
		return nil, exceptions.ErrInvalidEntityType(entityType)
	}
	currentID := entityID

	// Walk up the hierarchy for the nearest ancestor with active hours.
	// Every dead end falls back to the standard template instead of failing.
	for {
		parent, err := uc.ParentResolver.ResolveParent(ctx, currentType, currentID)
		if err != nil {
			uc.Log.Warn("workingHoursUsecase.SuggestForEntity parent resolution failed, falling back to template",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEntityTypeKey, currentType.String()),
				zap.String(constvars.LoggingEntityIDKey, currentID),
				zap.Error(err),
			)
			break
		}
		if parent == nil {
			break
		}

		week, err := uc.WorkingHoursRepository.FindActiveByEntity(ctx, parent.EntityType, parent.EntityID)
		if err != nil {
			return nil, err
		}
		if len(week) > 0 {
			uc.Log.Info("workingHoursUsecase.SuggestForEntity succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEntityTypeKey, parent.EntityType.String()),
				zap.String(constvars.LoggingEntityIDKey, parent.EntityID),
			)
			return &responses.ScheduleSuggestion{
				SuggestedSchedule: suggestedWeekFromSchedule(week),
				Source: responses.ScheduleSource{
					EntityType: parent.EntityType.String(),
					EntityID:   parent.EntityID,
					EntityName: uc.entityNameCached(ctx, parent.EntityType, parent.EntityID),
				},
				CanModify: true,
			}, nil
		}

		currentType, currentID = parent.EntityType, parent.EntityID
	}

	uc.Log.Info("workingHoursUsecase.SuggestForEntity falling back to standard template",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.ScheduleSuggestion{
		SuggestedSchedule: standardTemplateWeek(),
		Source: responses.ScheduleSource{
			EntityType: constvars.SuggestionSourceStandard,
			EntityName: constvars.StandardScheduleSourceName,
		},
		CanModify: true,
	}, nil
}

// validateAgainstResolvedParent resolves the entity's parent and checks the
// submitted week against its hours. Resolution and parent-hours failures are
// fail-open: the inability to determine ancestry never blocks an update, it
// is only logged.
func (uc *workingHoursUsecase) validateAgainstResolvedParent(ctx context.Context, entityType models.EntityType, entityID string, schedule []requests.DayScheduleInput) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	parent, err := uc.ParentResolver.ResolveParent(ctx, entityType, entityID)
	if err != nil {
		uc.Log.Warn("workingHoursUsecase parent resolution failed, skipping hierarchy validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityTypeKey, entityType.String()),
			zap.String(constvars.LoggingEntityIDKey, entityID),
			zap.Error(err),
		)
		return nil
	}
	if parent == nil {
		return nil
	}

	parentHours, err := uc.activeHoursCached(ctx, parent.EntityType, parent.EntityID)
	if err != nil {
		uc.Log.Warn("workingHoursUsecase parent hours unavailable, skipping hierarchy validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityTypeKey, parent.EntityType.String()),
			zap.String(constvars.LoggingEntityIDKey, parent.EntityID),
			zap.Error(err),
		)
		return nil
	}

	result := ValidateAgainstParent(schedule, parentHours, entityType.String(), parent.EntityType.String())
	if !result.IsValid {
		return exceptions.ErrScheduleHierarchyViolation(result.Errors)
	}
	return nil
}

// activeHoursCached is the read-through parent-hours cache. Entries live for
// the configured TTL and are not evicted on write unless
// CacheInvalidateOnWrite is set, so readers may see hours one TTL old.
func (uc *workingHoursUsecase) activeHoursCached(ctx context.Context, entityType models.EntityType, entityID string) ([]models.DaySchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := fmt.Sprintf(constvars.RedisKeyWorkingHours, entityType, entityID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("workingHoursUsecase cache read failed, falling back to repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	} else if cached != "" {
		var week []models.DaySchedule
		if err := json.Unmarshal([]byte(cached), &week); err == nil {
			return week, nil
		}
		uc.Log.Warn("workingHoursUsecase dropping undecodable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
		)
	}

	week, err := uc.WorkingHoursRepository.FindActiveByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.WorkingHours.CacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, week, ttl); err != nil {
		uc.Log.Warn("workingHoursUsecase cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}
	return week, nil
}

func (uc *workingHoursUsecase) invalidateCacheIfConfigured(ctx context.Context, entityType models.EntityType, entityID string) {
	if !uc.InternalConfig.WorkingHours.CacheInvalidateOnWrite {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := fmt.Sprintf(constvars.RedisKeyWorkingHours, entityType, entityID)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("workingHoursUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}
}

// entityNameCached looks up a display name through the short-TTL name cache.
// A missing directory row degrades to an empty name rather than failing the
// suggestion.
func (uc *workingHoursUsecase) entityNameCached(ctx context.Context, entityType models.EntityType, entityID string) bilingual.Message {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := fmt.Sprintf(constvars.RedisKeyEntityName, entityType, entityID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var name bilingual.Message
		if err := json.Unmarshal([]byte(cached), &name); err == nil {
			return name
		}
	}

	name, err := uc.lookupEntityName(ctx, entityType, entityID)
	if err != nil {
		uc.Log.Warn("workingHoursUsecase entity name lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityTypeKey, entityType.String()),
			zap.String(constvars.LoggingEntityIDKey, entityID),
			zap.Error(err),
		)
		return bilingual.Message{}
	}

	ttl := time.Duration(uc.InternalConfig.WorkingHours.CacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, name, ttl); err != nil {
		uc.Log.Warn("workingHoursUsecase entity name cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}
	return name
}

func (uc *workingHoursUsecase) lookupEntityName(ctx context.Context, entityType models.EntityType, entityID string) (bilingual.Message, error) {
	switch entityType {
	case models.EntityTypeOrganization:
		organization, err := uc.EntityRepository.FindOrganizationByID(ctx, entityID)
		if err != nil || organization == nil {
			return bilingual.Message{}, err
		}
		return organization.Name, nil
	case models.EntityTypeComplex:
		medicalComplex, err := uc.EntityRepository.FindComplexByID(ctx, entityID)
		if err != nil || medicalComplex == nil {
			return bilingual.Message{}, err
		}
		return medicalComplex.Name, nil
	case models.EntityTypeClinic:
		clinic, err := uc.EntityRepository.FindClinicByID(ctx, entityID)
		if err != nil || clinic == nil {
			return bilingual.Message{}, err
		}
		return clinic.Name, nil
	case models.EntityTypeUser:
		user, err := uc.EntityRepository.FindUserByID(ctx, entityID)
		if err != nil || user == nil {
			return bilingual.Message{}, err
		}
		return user.Name, nil
	}
	return bilingual.Message{}, nil
}
