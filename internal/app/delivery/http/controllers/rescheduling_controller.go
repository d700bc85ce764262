package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReschedulingController struct {
	Log                 *zap.Logger
	ReschedulingUsecase contracts.ReschedulingUsecase
}

var (
	reschedulingControllerInstance *ReschedulingController
	onceReschedulingController     sync.Once
)

func NewReschedulingController(logger *zap.Logger, reschedulingUsecase contracts.ReschedulingUsecase) *ReschedulingController {
	onceReschedulingController.Do(func() {
		instance := &ReschedulingController{
			Log:                 logger,
			ReschedulingUsecase: reschedulingUsecase,
		}
		reschedulingControllerInstance = instance
	})
	return reschedulingControllerInstance
}

// UpdateWithRescheduling replaces an entity's working hours and resolves
// every appointment the new schedule invalidates. The route is guarded by
// the per-entity schedule lock middleware, so the usecase never sees two
// concurrent updates for the same entity. Rescheduling can touch many
// appointments, hence the longer timeout than the plain update endpoint.
func (ctrl *ReschedulingController) UpdateWithRescheduling(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ReschedulingController.UpdateWithRescheduling requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ReschedulingController.UpdateWithRescheduling called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.RescheduleWorkingHours)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ReschedulingController.UpdateWithRescheduling error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.EntityType = chi.URLParam(r, constvars.URLParamEntityType)
	request.EntityID = chi.URLParam(r, constvars.URLParamEntityID)

	ctrl.Log.Info("ReschedulingController.UpdateWithRescheduling request decoded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	utils.SanitizeRescheduleWorkingHoursRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ReschedulingController.UpdateWithRescheduling validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ReschedulingUsecase.UpdateWithRescheduling(ctx, request)
	if err != nil {
		ctrl.Log.Error("ReschedulingController.UpdateWithRescheduling error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReschedulingController.UpdateWithRescheduling succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, request.EntityType),
		zap.String(constvars.LoggingEntityIDKey, request.EntityID),
		zap.String(constvars.LoggingStrategyKey, request.HandleConflicts),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleSuccessMessage, response)
}

// CheckConflicts is the read-only preview endpoint. It reports which of a
// doctor's upcoming appointments would break under a proposed schedule
// without persisting anything.
func (ctrl *ReschedulingController) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ReschedulingController.CheckConflicts requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ReschedulingController.CheckConflicts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CheckConflicts)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ReschedulingController.CheckConflicts error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("ReschedulingController.CheckConflicts request decoded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	utils.SanitizeCheckConflictsRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ReschedulingController.CheckConflicts validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReschedulingUsecase.CheckConflicts(ctx, request)
	if err != nil {
		ctrl.Log.Error("ReschedulingController.CheckConflicts error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReschedulingController.CheckConflicts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingConflictCountKey, response.AffectedAppointments),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckConflictsSuccessMessage, response)
}
