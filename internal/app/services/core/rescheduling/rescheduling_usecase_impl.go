package rescheduling

import (
	"context"
	"sync"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/workinghours"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	reschedulingUsecaseInstance contracts.ReschedulingUsecase
	onceReschedulingUsecase     sync.Once
)

// scanStatuses are the appointment states a schedule change can still affect.
var scanStatuses = []models.AppointmentStatus{
	models.AppointmentStatusScheduled,
	models.AppointmentStatusConfirmed,
}

type reschedulingUsecase struct {
	WorkingHoursRepository contracts.WorkingHoursRepository
	AppointmentRepository  contracts.AppointmentRepository
	NotificationRepository contracts.NotificationRepository
	NotificationPublisher  contracts.NotificationPublisher
	TransactionManager     contracts.TransactionManager
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewReschedulingUsecase(
	workingHoursRepository contracts.WorkingHoursRepository,
	appointmentRepository contracts.AppointmentRepository,
	notificationRepository contracts.NotificationRepository,
	notificationPublisher contracts.NotificationPublisher,
	transactionManager contracts.TransactionManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReschedulingUsecase {
	onceReschedulingUsecase.Do(func() {
		instance := &reschedulingUsecase{
			WorkingHoursRepository: workingHoursRepository,
			AppointmentRepository:  appointmentRepository,
			NotificationRepository: notificationRepository,
			NotificationPublisher:  notificationPublisher,
			TransactionManager:     transactionManager,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		reschedulingUsecaseInstance = instance
	})
	return reschedulingUsecaseInstance
}

func (uc *reschedulingUsecase) CheckConflicts(ctx context.Context, request *requests.CheckConflicts) (*responses.ConflictCheckResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reschedulingUsecase.CheckConflicts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, request.UserID),
	)

	windows, err := BuildScheduleWindows(request.Schedule)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindUpcomingByDoctor(ctx, request.UserID, utils.StartOfDay(time.Now()), scanStatuses)
	if err != nil {
		uc.Log.Error("reschedulingUsecase.CheckConflicts error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	conflicts := []responses.AppointmentConflict{}
	for i := range appointments {
		appointment := &appointments[i]
		reason, err := windows.EvaluateAppointment(appointment, uc.defaultDuration())
		if err != nil {
			return nil, err
		}
		if reason == nil {
			continue
		}
		conflicts = append(conflicts, responses.AppointmentConflict{
			AppointmentID:   appointment.ID.Hex(),
			PatientID:       appointment.PatientID.Hex(),
			AppointmentDate: utils.FormatDate(appointment.AppointmentDate),
			AppointmentTime: appointment.AppointmentTime,
			DurationMinutes: effectiveDuration(appointment, uc.defaultDuration()),
			DayOfWeek:       appointment.Weekday().String(),
			Reason:          *reason,
		})
	}

	uc.Log.Info("reschedulingUsecase.CheckConflicts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
		zap.Int(constvars.LoggingConflictCountKey, len(conflicts)),
	)
	return &responses.ConflictCheckResult{
		HasConflicts:         len(conflicts) > 0,
		Conflicts:            conflicts,
		AffectedAppointments: len(conflicts),
		RequiresRescheduling: len(conflicts) > 0,
	}, nil
}

// UpdateWithRescheduling replaces the stored week and reconciles affected
// appointments inside one transaction. Any failure aborts the whole unit;
// partial writes are never observable. Notification publishing happens after
// commit and is best-effort.
func (uc *reschedulingUsecase) UpdateWithRescheduling(ctx context.Context, request *requests.RescheduleWorkingHours) (*responses.ReschedulingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reschedulingUsecase.UpdateWithRescheduling called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, request.EntityType),
		zap.String(constvars.LoggingEntityIDKey, request.EntityID),
		zap.String(constvars.LoggingStrategyKey, request.HandleConflicts),
	)

	entityType, err := models.ParseEntityType(request.EntityType)
	if err != nil {
		return nil, exceptions.ErrInvalidEntityType(request.EntityType)
	}
	if structural := workinghours.ValidateStructure(request.Schedule); len(structural) > 0 {
		return nil, exceptions.ErrScheduleStructureInvalid(structural)
	}

	reason := bilingual.New(constvars.DefaultReschedulingReasonEn, constvars.DefaultReschedulingReasonAr)
	if request.ReschedulingReason != "" {
		reason = bilingual.New(request.ReschedulingReason, request.ReschedulingReason)
	}
	notifyPatients := request.NotifyPatients == nil || *request.NotifyPatients

	week, err := utils.BuildDayScheduleModels(entityType, request.EntityID, request.Schedule)
	if err != nil {
		return nil, err
	}

	result := &responses.ReschedulingResult{Details: []responses.RescheduledAppointment{}}
	var created []models.Notification

	err = uc.TransactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		persisted, txErr := uc.WorkingHoursRepository.ReplaceForEntity(txCtx, entityType, request.EntityID, week)
		if txErr != nil {
			return txErr
		}
		result.WorkingHours = utils.ConvertWeekToResponse(persisted)

		// Only users carry appointments; other entity types are done after
		// the replace.
		if entityType != models.EntityTypeUser {
			return nil
		}

		windows, txErr := BuildScheduleWindows(request.Schedule)
		if txErr != nil {
			return txErr
		}
		appointments, txErr := uc.AppointmentRepository.FindUpcomingByDoctor(txCtx, request.EntityID, utils.StartOfDay(time.Now()), scanStatuses)
		if txErr != nil {
			return txErr
		}

		now := time.Now()
		var notifications []models.Notification
		for i := range appointments {
			appointment := &appointments[i]
			conflictReason, txErr := windows.EvaluateAppointment(appointment, uc.defaultDuration())
			if txErr != nil {
				return txErr
			}
			if conflictReason == nil {
				continue
			}

			detail, txErr := uc.resolveConflict(txCtx, appointment, windows, request.HandleConflicts, reason, *conflictReason, now)
			if txErr != nil {
				return txErr
			}
			result.Details = append(result.Details, detail)
			switch detail.Resolution {
			case responses.ResolutionRescheduled:
				result.AppointmentsRescheduled++
			case responses.ResolutionMarkedForRescheduling:
				result.AppointmentsMarkedForRescheduling++
			case responses.ResolutionCancelled:
				result.AppointmentsCancelled++
			}
			if notifyPatients {
				notifications = append(notifications, buildNotification(appointment, detail))
			}
		}

		if len(notifications) > 0 {
			notifications, txErr = uc.NotificationRepository.CreateNotifications(txCtx, notifications)
			if txErr != nil {
				return txErr
			}
			result.NotificationsSent = len(notifications)
			created = notifications
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("reschedulingUsecase.UpdateWithRescheduling transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(created) > 0 {
		if err := uc.NotificationPublisher.PublishNotifications(ctx, created); err != nil {
			uc.Log.Warn("reschedulingUsecase.UpdateWithRescheduling notification publish failed, records remain persisted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingMessageCountKey, len(created)),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("reschedulingUsecase.UpdateWithRescheduling succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rescheduled", result.AppointmentsRescheduled),
		zap.Int("marked_for_rescheduling", result.AppointmentsMarkedForRescheduling),
		zap.Int("cancelled", result.AppointmentsCancelled),
		zap.Int("notifications_sent", result.NotificationsSent),
	)
	return result, nil
}

// resolveConflict applies the chosen strategy to one conflicting appointment
// and persists the mutation. Under the reschedule strategy, failing to find a
// slot degrades to marking the appointment for manual rescheduling; that is a
// normal outcome, not an error.
func (uc *reschedulingUsecase) resolveConflict(ctx context.Context, appointment *models.Appointment, windows ScheduleWindows, strategy string, reason, conflictReason bilingual.Message, now time.Time) (responses.RescheduledAppointment, error) {
	detail := responses.RescheduledAppointment{
		AppointmentID:   appointment.ID.Hex(),
		PatientID:       appointment.PatientID.Hex(),
		AppointmentDate: utils.FormatDate(appointment.AppointmentDate),
		OriginalTime:    appointment.AppointmentTime,
		Reason:          conflictReason,
	}

	switch strategy {
	case constvars.ConflictStrategyReschedule:
		start, err := utils.ParseClockTime(appointment.AppointmentTime)
		if err != nil {
			return detail, exceptions.ErrCannotParseTime(err)
		}
		slot, found := windows.findReschedulingSlot(appointment.Weekday(), start, effectiveDuration(appointment, uc.defaultDuration()), uc.slotStep())
		if found {
			newTime := utils.FormatClockTime(slot)
			appointment.AppointmentTime = newTime
			appointment.ReschedulingReason = &reason
			appointment.SetUpdatedAt()
			if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
				return detail, err
			}
			detail.NewTime = &newTime
			detail.Resolution = responses.ResolutionRescheduled
			return detail, nil
		}
		fallthrough
	case constvars.ConflictStrategyNotify:
		appointment.Status = models.AppointmentStatusNeedsRescheduling
		appointment.ReschedulingReason = &reason
		appointment.MarkedForReschedulingAt = &now
		appointment.SetUpdatedAt()
		if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
			return detail, err
		}
		detail.Resolution = responses.ResolutionMarkedForRescheduling
		return detail, nil
	case constvars.ConflictStrategyCancel:
		appointment.Status = models.AppointmentStatusCancelled
		appointment.CancellationReason = &reason
		appointment.CancelledAt = &now
		appointment.SetUpdatedAt()
		if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
			return detail, err
		}
		detail.Resolution = responses.ResolutionCancelled
		return detail, nil
	default:
		return detail, exceptions.ErrInvalidConflictStrategy(strategy)
	}
}

// buildNotification picks the templates for one resolved appointment. Times
// come from the detail record because the appointment itself may already
// carry its new time.
func buildNotification(appointment *models.Appointment, detail responses.RescheduledAppointment) models.Notification {
	notification := models.Notification{
		RecipientID:   appointment.PatientID,
		AppointmentID: appointment.ID,
	}

	switch detail.Resolution {
	case responses.ResolutionRescheduled:
		notification.Type = models.NotificationTypeAppointmentRescheduled
		notification.Title = bilingual.New(constvars.NotificationRescheduledTitleEn, constvars.NotificationRescheduledTitleAr)
		notification.Message = bilingual.Newf(constvars.NotificationRescheduledBodyEn, constvars.NotificationRescheduledBodyAr, detail.AppointmentDate, detail.OriginalTime, *detail.NewTime)
	case responses.ResolutionMarkedForRescheduling:
		notification.Type = models.NotificationTypeAppointmentNeedsRescheduling
		notification.Title = bilingual.New(constvars.NotificationNeedsReschedulingTitleEn, constvars.NotificationNeedsReschedulingTitleAr)
		notification.Message = bilingual.Newf(constvars.NotificationNeedsReschedulingBodyEn, constvars.NotificationNeedsReschedulingBodyAr, detail.AppointmentDate, detail.OriginalTime)
	case responses.ResolutionCancelled:
		notification.Type = models.NotificationTypeAppointmentCancelled
		notification.Title = bilingual.New(constvars.NotificationCancelledTitleEn, constvars.NotificationCancelledTitleAr)
		notification.Message = bilingual.Newf(constvars.NotificationCancelledBodyEn, constvars.NotificationCancelledBodyAr, detail.AppointmentDate, detail.OriginalTime)
	}

	notification.SetCreatedAtUpdatedAt()
	return notification
}

func (uc *reschedulingUsecase) defaultDuration() int {
	if v := uc.InternalConfig.WorkingHours.DefaultAppointmentDurationInMinutes; v > 0 {
		return v
	}
	return 30
}

func (uc *reschedulingUsecase) slotStep() int {
	if v := uc.InternalConfig.WorkingHours.RescheduleSlotStepInMinutes; v > 0 {
		return v
	}
	return 15
}
