package controllers

import (
	"context"
	"net/http"
	"strconv"
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

type WorkingHoursController struct {
	Log                 *zap.Logger
	WorkingHoursUsecase contracts.WorkingHoursUsecase
}

var (
	workingHoursControllerInstance *WorkingHoursController
	onceWorkingHoursController     sync.Once
)

func NewWorkingHoursController(logger *zap.Logger, workingHoursUsecase contracts.WorkingHoursUsecase) *WorkingHoursController {
	onceWorkingHoursController.Do(func() {
		instance := &WorkingHoursController{
			Log:                 logger,
			WorkingHoursUsecase: workingHoursUsecase,
		}
		workingHoursControllerInstance = instance
	})
	return workingHoursControllerInstance
}

func (ctrl *WorkingHoursController) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkingHoursController.ValidateSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("WorkingHoursController.ValidateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ValidateSchedule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("WorkingHoursController.ValidateSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("WorkingHoursController.ValidateSchedule request decoded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	utils.SanitizeValidateScheduleRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("WorkingHoursController.ValidateSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkingHoursUsecase.ValidateSchedule(ctx, request)
	if err != nil {
		ctrl.Log.Error("WorkingHoursController.ValidateSchedule error from usecase",
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

	ctrl.Log.Info("WorkingHoursController.ValidateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingResponseKey, response),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateScheduleSuccessMessage, response)
}

func (ctrl *WorkingHoursController) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkingHoursController.GetWorkingHours requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("WorkingHoursController.GetWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entityType := chi.URLParam(r, constvars.URLParamEntityType)
	entityID := chi.URLParam(r, constvars.URLParamEntityID)

	if err := utils.ValidateUrlParamID(entityID); err != nil {
		ctrl.Log.Error("WorkingHoursController.GetWorkingHours invalid entity ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamEntityID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkingHoursUsecase.GetWorkingHours(ctx, entityType, entityID)
	if err != nil {
		ctrl.Log.Error("WorkingHoursController.GetWorkingHours error from usecase",
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

	ctrl.Log.Info("WorkingHoursController.GetWorkingHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, entityType),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWorkingHoursSuccessMessage, response)
}

func (ctrl *WorkingHoursController) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkingHoursController.UpdateWorkingHours requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("WorkingHoursController.UpdateWorkingHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateWorkingHours)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("WorkingHoursController.UpdateWorkingHours error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.EntityType = chi.URLParam(r, constvars.URLParamEntityType)
	request.EntityID = chi.URLParam(r, constvars.URLParamEntityID)
	request.ValidateParent, _ = strconv.ParseBool(r.URL.Query().Get(constvars.URLQueryParamValidateParent))

	ctrl.Log.Info("WorkingHoursController.UpdateWorkingHours request decoded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	utils.SanitizeUpdateWorkingHoursRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("WorkingHoursController.UpdateWorkingHours validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkingHoursUsecase.UpdateWorkingHours(ctx, request)
	if err != nil {
		ctrl.Log.Error("WorkingHoursController.UpdateWorkingHours error from usecase",
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

	ctrl.Log.Info("WorkingHoursController.UpdateWorkingHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, request.EntityType),
		zap.String(constvars.LoggingEntityIDKey, request.EntityID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateWorkingHoursSuccessMessage, response)
}

func (ctrl *WorkingHoursController) SuggestSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkingHoursController.SuggestSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("WorkingHoursController.SuggestSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.SuggestSchedule{
		Role:      r.URL.Query().Get(constvars.URLQueryParamRole),
		ClinicID:  r.URL.Query().Get(constvars.URLQueryParamClinicID),
		ComplexID: r.URL.Query().Get(constvars.URLQueryParamComplexID),
	}
	ctrl.Log.Info("WorkingHoursController.SuggestSchedule query parameters",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request),
	)

	utils.SanitizeSuggestScheduleRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("WorkingHoursController.SuggestSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkingHoursUsecase.SuggestForRole(ctx, request)
	if err != nil {
		ctrl.Log.Error("WorkingHoursController.SuggestSchedule error from usecase",
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

	ctrl.Log.Info("WorkingHoursController.SuggestSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", request.Role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuggestScheduleSuccessMessage, response)
}

func (ctrl *WorkingHoursController) SuggestForEntity(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("WorkingHoursController.SuggestForEntity requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("WorkingHoursController.SuggestForEntity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entityType := chi.URLParam(r, constvars.URLParamEntityType)
	entityID := chi.URLParam(r, constvars.URLParamEntityID)

	if err := utils.ValidateUrlParamID(entityID); err != nil {
		ctrl.Log.Error("WorkingHoursController.SuggestForEntity invalid entity ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamEntityID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkingHoursUsecase.SuggestForEntity(ctx, entityType, entityID)
	if err != nil {
		ctrl.Log.Error("WorkingHoursController.SuggestForEntity error from usecase",
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

	ctrl.Log.Info("WorkingHoursController.SuggestForEntity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityTypeKey, entityType),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuggestScheduleSuccessMessage, response)
}
