package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/pkg/bilingual"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled         AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed         AppointmentStatus = "confirmed"
	AppointmentStatusNeedsRescheduling AppointmentStatus = "needs_rescheduling"
	AppointmentStatusCancelled         AppointmentStatus = "cancelled"
	AppointmentStatusCompleted         AppointmentStatus = "completed"
	AppointmentStatusNoShow            AppointmentStatus = "no_show"
)

// Appointment is owned by the appointment-booking side of the platform.
// Schedule reconciliation only mutates status, times, reasons and the
// rescheduling timestamps; everything else is read-only here.
type Appointment struct {
	ID                      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorID                primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	PatientID               primitive.ObjectID `json:"patientId" bson:"patientId"`
	ClinicID                primitive.ObjectID `json:"clinicId" bson:"clinicId"`
	AppointmentDate         time.Time          `json:"appointmentDate" bson:"appointmentDate"`
	AppointmentTime         string             `json:"appointmentTime" bson:"appointmentTime"`
	DurationMinutes         int                `json:"durationMinutes" bson:"durationMinutes"`
	Status                  AppointmentStatus  `json:"status" bson:"status"`
	ReschedulingReason      *bilingual.Message `json:"reschedulingReason,omitempty" bson:"reschedulingReason,omitempty"`
	CancellationReason      *bilingual.Message `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	MarkedForReschedulingAt *time.Time         `json:"markedForReschedulingAt,omitempty" bson:"markedForReschedulingAt,omitempty"`
	CancelledAt             *time.Time         `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	TimeModel               `bson:",inline"`
}

// Weekday derives the appointment's day of week from its calendar date.
func (a *Appointment) Weekday() DayOfWeek {
	return DayOfWeekFromTime(a.AppointmentDate)
}
