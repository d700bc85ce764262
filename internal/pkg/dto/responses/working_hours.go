package responses

import "clinicore-service/internal/pkg/bilingual"

type TimeRange struct {
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// ScheduleValidationError describes one hierarchy or structural violation.
// SuggestedRange carries the parent's bounds only for time-bound violations
// so clients can offer a one-click correction.
type ScheduleValidationError struct {
	DayOfWeek      string            `json:"dayOfWeek"`
	Message        bilingual.Message `json:"message"`
	SuggestedRange *TimeRange        `json:"suggestedRange,omitempty"`
}

type ValidationResult struct {
	IsValid bool                      `json:"isValid"`
	Errors  []ScheduleValidationError `json:"errors"`
}

type DayScheduleResponse struct {
	ID             string  `json:"id"`
	EntityType     string  `json:"entityType"`
	EntityID       string  `json:"entityId"`
	DayOfWeek      string  `json:"dayOfWeek"`
	IsWorkingDay   bool    `json:"isWorkingDay"`
	OpeningTime    *string `json:"openingTime,omitempty"`
	ClosingTime    *string `json:"closingTime,omitempty"`
	BreakStartTime *string `json:"breakStartTime,omitempty"`
	BreakEndTime   *string `json:"breakEndTime,omitempty"`
	IsActive       bool    `json:"isActive"`
}

type SuggestedDaySchedule struct {
	DayOfWeek      string  `json:"dayOfWeek"`
	IsWorkingDay   bool    `json:"isWorkingDay"`
	OpeningTime    *string `json:"openingTime,omitempty"`
	ClosingTime    *string `json:"closingTime,omitempty"`
	BreakStartTime *string `json:"breakStartTime,omitempty"`
	BreakEndTime   *string `json:"breakEndTime,omitempty"`
}

type ScheduleSource struct {
	EntityType string            `json:"entityType"`
	EntityID   string            `json:"entityId"`
	EntityName bilingual.Message `json:"entityName"`
}

type ScheduleSuggestion struct {
	SuggestedSchedule []SuggestedDaySchedule `json:"suggestedSchedule"`
	Source            ScheduleSource         `json:"source"`
	CanModify         bool                   `json:"canModify"`
}
