package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_SVC_"
)

const (
	ResourceWorkingHours = "working-hours"
)

const (
	MongoCollectionWorkingHours  = "workingHours"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionNotifications = "notifications"
	MongoCollectionOrganizations = "organizations"
	MongoCollectionComplexes     = "complexes"
	MongoCollectionClinics       = "clinics"
	MongoCollectionUsers         = "users"
)

const (
	RedisKeyWorkingHours = "working_hours:%s:%s"
	RedisKeyEntityName   = "entity_name:%s:%s"
	RedisKeyScheduleLock = "lock:working_hours:%s:%s"
)

const (
	RoleDoctor = "doctor"
	RoleStaff  = "staff"
)

const (
	ConflictStrategyReschedule = "reschedule"
	ConflictStrategyNotify     = "notify"
	ConflictStrategyCancel     = "cancel"
)

// Standard business-hours template used when an entity has no ancestor
// schedule to derive a suggestion from.
const (
	StandardOpeningTime = "09:00"
	StandardClosingTime = "17:00"
)
