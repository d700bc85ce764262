package exceptions

import (
	"fmt"

	"clinicore-service/internal/pkg/constvars"
)

// Constructor catalog. Every error crossing the delivery boundary is built
// here so each carries a machine-readable code, a bilingual client message
// and the originating call site.
var (
	// Input and parsing
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}

	// Working hours domain
	ErrInvalidEntityType = func(entityType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidEntityType, entityType))
	}
	ErrInvalidConflictStrategy = func(strategy string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidConflictStrategy, strategy))
	}
	ErrEntityNotFound = func(entityType, entityID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientEntityNotFound, fmt.Sprintf(constvars.ErrDevEntityNotFound, entityType, entityID))
	}
	ErrScheduleNotFound = func(entityType, entityID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientScheduleNotFound, fmt.Sprintf(constvars.ErrDevScheduleNotFound, entityType, entityID))
	}
	// Suggestion is fail-closed: a missing source id is a not-found outcome,
	// not a validation one.
	ErrSuggestionMissingID = func(idName, role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientSuggestionSourceNotFound, fmt.Sprintf(constvars.ErrDevSuggestionMissingID, idName, role))
	}
	ErrSuggestionSourceNotFound = func(entityType, entityID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientSuggestionSourceNotFound, fmt.Sprintf(constvars.ErrDevSuggestionSourceNoHours, entityType, entityID))
	}
	ErrScheduleStructureInvalid = func(details interface{}) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientInvalidSchedule, constvars.ErrDevScheduleStructureInvalid).WithDetails(details)
	}
	ErrScheduleHierarchyViolation = func(details interface{}) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrCodeValidation, constvars.ErrClientScheduleOutsideParentHours, constvars.ErrDevScheduleHierarchyInvalid).WithDetails(details)
	}
	ErrScheduleLocked = func(entityType, entityID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusLocked, constvars.ErrCodeLocked, constvars.ErrClientScheduleUpdateInProgress, fmt.Sprintf(constvars.ErrDevScheduleLockNotAcquired, entityType, entityID))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}
	ErrMongoDBTransaction = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeTransactionFailed, constvars.ErrClientScheduleUpdateFailed, constvars.ErrDevDBTransactionFailed)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Server
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequiredFields)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrCodeTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrCodeTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRequestLimitExceeded)
	}
)
