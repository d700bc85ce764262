package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingDataKey             = "data"
	LoggingQueryParamsKey      = "query_params"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingResponseKey         = "response"
	LoggingRequestKey          = "request"
	LoggingResponseLengthKey   = "response_length"
	LoggingEntityTypeKey       = "entity_type"
	LoggingEntityIDKey         = "entity_id"
	LoggingStrategyKey         = "strategy"
	LoggingConflictCountKey    = "conflict_count"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingCacheKey            = "cache_key"
	LoggingQueueNameKey        = "queue_name"
	LoggingMessageCountKey     = "message_count"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
