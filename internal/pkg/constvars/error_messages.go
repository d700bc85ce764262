package constvars

import "clinicore-service/internal/pkg/bilingual"

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]bilingual.Message{
	"required":          bilingual.New("is required", "هذا الحقل مطلوب"),
	"min":               bilingual.New("must be at least %s characters long", "يجب ألا يقل عن %s حرفاً"),
	"max":               bilingual.New("maximum at %s characters long", "يجب ألا يزيد عن %s حرفاً"),
	"len":               bilingual.New("must be %s characters long", "يجب أن يتكون من %s حرفاً"),
	"oneof":             bilingual.New("must be one of [%s]", "يجب أن يكون واحداً من [%s]"),
	"gt":                bilingual.New("must be greater than %s", "يجب أن يكون أكبر من %s"),
	"gte":               bilingual.New("must be greater than or equal to %s", "يجب أن يكون أكبر من أو يساوي %s"),
	"lt":                bilingual.New("must be less than %s", "يجب أن يكون أصغر من %s"),
	"lte":               bilingual.New("must be less than or equal to %s", "يجب أن يكون أصغر من أو يساوي %s"),
	"dive":              bilingual.New("contains an invalid entry", "يحتوي على عنصر غير صالح"),
	"clock_time":        bilingual.New("must be a valid time in HH:mm format", "يجب أن يكون وقتاً صالحاً بتنسيق HH:mm"),
	"entity_type":       bilingual.New("must be one of 'organization', 'complex', 'clinic' or 'user'", "يجب أن يكون 'organization' أو 'complex' أو 'clinic' أو 'user'"),
	"day_of_week":       bilingual.New("must be a valid weekday name", "يجب أن يكون اسم يوم صالحاً"),
	"conflict_strategy": bilingual.New("must be 'reschedule', 'notify' or 'cancel'", "يجب أن يكون 'reschedule' أو 'notify' أو 'cancel'"),
	"object_id":         bilingual.New("must be a valid object ID", "يجب أن يكون معرفاً صالحاً"),
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Machine-readable error codes carried on every error response
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeLocked            = "LOCKED"
	ErrCodeTimeout           = "TIMEOUT"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeTransactionFailed = "TRANSACTION_FAILED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Error messages for clients
var (
	ErrClientCannotProcessRequest          = bilingual.New("failed to process your request", "فشلت معالجة طلبك")
	ErrClientSomethingWrongWithApplication = bilingual.New("there is something wrong with the application", "حدث خطأ في التطبيق")
	ErrClientServerLongRespond             = bilingual.New("the app taking too long to respond", "استغرق التطبيق وقتاً طويلاً للاستجابة")
	ErrClientTooManyRequests               = bilingual.New("too many requests, please slow down", "عدد كبير جداً من الطلبات، يرجى الإبطاء")
	ErrClientInvalidSchedule               = bilingual.New("the submitted schedule is invalid", "جدول العمل المُرسل غير صالح")
	ErrClientScheduleNotFound              = bilingual.New("no working hours found for this entity", "لا توجد ساعات عمل لهذا الكيان")
	ErrClientEntityNotFound                = bilingual.New("the requested entity was not found", "الكيان المطلوب غير موجود")
	ErrClientSuggestionSourceNotFound      = bilingual.New("no source schedule available to suggest from", "لا يوجد جدول مصدر لاقتراح ساعات العمل منه")
	ErrClientScheduleUpdateInProgress      = bilingual.New("another schedule update for this entity is in progress, try again shortly", "هناك تحديث آخر قيد التنفيذ لساعات عمل هذا الكيان، حاول مرة أخرى بعد قليل")
	ErrClientScheduleOutsideParentHours    = bilingual.New("the submitted schedule falls outside the parent's working hours", "جدول العمل المُرسل يقع خارج ساعات عمل الجهة الأم")
	ErrClientScheduleUpdateFailed          = bilingual.New("failed to update the working hours, no changes were applied", "فشل تحديث ساعات العمل، لم يتم تطبيق أي تغييرات")
)

// Error messages for developers
const (
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime   = "cannot parse time into the given format"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Domain messages
	ErrDevScheduleNotFound         = "no active working hours found for %s %s"
	ErrDevEntityNotFound           = "%s with ID %s not found"
	ErrDevSuggestionMissingID      = "missing %s for role %s suggestion"
	ErrDevSuggestionSourceNoHours  = "suggestion source %s %s has no active working hours"
	ErrDevInvalidEntityType        = "invalid entity type %s"
	ErrDevInvalidConflictStrategy  = "invalid conflict handling strategy %s"
	ErrDevScheduleLockNotAcquired  = "working hours of %s %s are locked by another operation"
	ErrDevScheduleStructureInvalid = "schedule has structural violations"
	ErrDevScheduleHierarchyInvalid = "schedule violates parent working hours"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBTransactionFailed        = "transaction aborted, no partial writes were committed"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to RabbitMQ queue %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
