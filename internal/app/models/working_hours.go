package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DaySchedule is one weekday of an entity's working hours. A week is stored
// as up to seven of these, unique per (entityType, entityId, dayOfWeek), and
// always replaced as a whole on update.
//
// Time fields are optional HH:mm pairs. A working day without opening and
// closing times is open all day. Break times, when present, carve a
// sub-interval out of the opening hours.
type DaySchedule struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EntityType     EntityType         `json:"entityType" bson:"entityType"`
	EntityID       primitive.ObjectID `json:"entityId" bson:"entityId"`
	DayOfWeek      DayOfWeek          `json:"dayOfWeek" bson:"dayOfWeek"`
	IsWorkingDay   bool               `json:"isWorkingDay" bson:"isWorkingDay"`
	OpeningTime    *string            `json:"openingTime,omitempty" bson:"openingTime,omitempty"`
	ClosingTime    *string            `json:"closingTime,omitempty" bson:"closingTime,omitempty"`
	BreakStartTime *string            `json:"breakStartTime,omitempty" bson:"breakStartTime,omitempty"`
	BreakEndTime   *string            `json:"breakEndTime,omitempty" bson:"breakEndTime,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	TimeModel      `bson:",inline"`
}

// HasTimeBounds reports whether the day restricts appointments to an
// opening/closing window at all.
func (s *DaySchedule) HasTimeBounds() bool {
	return s.OpeningTime != nil && s.ClosingTime != nil
}

func (s *DaySchedule) HasBreak() bool {
	return s.BreakStartTime != nil && s.BreakEndTime != nil
}
