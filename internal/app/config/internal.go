package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
	WorkingHours AppWorkingHours `mapstructure:"working_hours"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}

// AppWorkingHours tunes the schedule engine.
type AppWorkingHours struct {
	// CacheTTLInMinutes bounds how stale a cached parent schedule may be.
	CacheTTLInMinutes int `mapstructure:"cache_ttl_in_minutes"`
	// CacheInvalidateOnWrite is off by default: a schedule update does not
	// evict cached parent hours, so child validations may see hours up to
	// CacheTTLInMinutes old.
	CacheInvalidateOnWrite              bool `mapstructure:"cache_invalidate_on_write"`
	RescheduleSlotStepInMinutes         int  `mapstructure:"reschedule_slot_step_in_minutes"`
	DefaultAppointmentDurationInMinutes int  `mapstructure:"default_appointment_duration_in_minutes"`
	UpdateLockTTLInSeconds              int  `mapstructure:"update_lock_ttl_in_seconds"`
}
