package requests

// DayScheduleInput is one weekday of a submitted schedule. Time fields are
// optional zero-padded HH:mm strings; pairing rules are enforced by the
// structural validation step, not by tags.
type DayScheduleInput struct {
	DayOfWeek      string  `json:"dayOfWeek" validate:"required,day_of_week"`
	IsWorkingDay   bool    `json:"isWorkingDay"`
	OpeningTime    *string `json:"openingTime,omitempty" validate:"omitempty,clock_time"`
	ClosingTime    *string `json:"closingTime,omitempty" validate:"omitempty,clock_time"`
	BreakStartTime *string `json:"breakStartTime,omitempty" validate:"omitempty,clock_time"`
	BreakEndTime   *string `json:"breakEndTime,omitempty" validate:"omitempty,clock_time"`
}

type ValidateSchedule struct {
	EntityType       string             `json:"entityType" validate:"required,entity_type"`
	EntityID         string             `json:"entityId" validate:"required,object_id"`
	ParentEntityType string             `json:"parentEntityType" validate:"required,entity_type"`
	ParentEntityID   string             `json:"parentEntityId" validate:"required,object_id"`
	Schedule         []DayScheduleInput `json:"schedule" validate:"required,min=1,max=7,dive"`
}

type UpdateWorkingHours struct {
	EntityType     string             `json:"-" validate:"required,entity_type"`
	EntityID       string             `json:"-" validate:"required,object_id"`
	Schedule       []DayScheduleInput `json:"schedule" validate:"required,min=1,max=7,dive"`
	ValidateParent bool               `json:"-"`
}

type RescheduleWorkingHours struct {
	EntityType         string             `json:"-" validate:"required,entity_type"`
	EntityID           string             `json:"-" validate:"required,object_id"`
	Schedule           []DayScheduleInput `json:"schedule" validate:"required,min=1,max=7,dive"`
	HandleConflicts    string             `json:"handleConflicts" validate:"required,conflict_strategy"`
	NotifyPatients     *bool              `json:"notifyPatients,omitempty"`
	ReschedulingReason string             `json:"reschedulingReason,omitempty" validate:"omitempty,max=500"`
}

type CheckConflicts struct {
	UserID   string             `json:"userId" validate:"required,object_id"`
	Schedule []DayScheduleInput `json:"schedule" validate:"required,min=1,max=7,dive"`
}

type SuggestSchedule struct {
	Role      string `json:"-" validate:"required,oneof=doctor staff"`
	ClinicID  string `json:"-" validate:"omitempty,object_id"`
	ComplexID string `json:"-" validate:"omitempty,object_id"`
}
