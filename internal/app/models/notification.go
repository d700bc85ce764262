package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/pkg/bilingual"
)

type NotificationType string

const (
	NotificationTypeAppointmentRescheduled       NotificationType = "appointment_rescheduled"
	NotificationTypeAppointmentNeedsRescheduling NotificationType = "appointment_needs_rescheduling"
	NotificationTypeAppointmentCancelled         NotificationType = "appointment_cancelled"
)

type Notification struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RecipientID   primitive.ObjectID `json:"recipientId" bson:"recipientId"`
	AppointmentID primitive.ObjectID `json:"appointmentId" bson:"appointmentId"`
	Type          NotificationType   `json:"type" bson:"type"`
	Title         bilingual.Message  `json:"title" bson:"title"`
	Message       bilingual.Message  `json:"message" bson:"message"`
	IsRead        bool               `json:"isRead" bson:"isRead"`
	TimeModel     `bson:",inline"`
}
