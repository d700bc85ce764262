package responses

import "clinicore-service/internal/pkg/bilingual"

const (
	ResolutionRescheduled           = "rescheduled"
	ResolutionMarkedForRescheduling = "marked_for_rescheduling"
	ResolutionCancelled             = "cancelled"
)

type AppointmentConflict struct {
	AppointmentID   string            `json:"appointmentId"`
	PatientID       string            `json:"patientId"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	DurationMinutes int               `json:"durationMinutes"`
	DayOfWeek       string            `json:"dayOfWeek"`
	Reason          bilingual.Message `json:"reason"`
}

type ConflictCheckResult struct {
	HasConflicts         bool                  `json:"hasConflicts"`
	Conflicts            []AppointmentConflict `json:"conflicts"`
	AffectedAppointments int                   `json:"affectedAppointments"`
	RequiresRescheduling bool                  `json:"requiresRescheduling"`
}

// RescheduledAppointment is the before/after record of one appointment
// touched by a reconciliation run. NewTime is set only when the resolution
// is "rescheduled".
type RescheduledAppointment struct {
	AppointmentID   string            `json:"appointmentId"`
	PatientID       string            `json:"patientId"`
	AppointmentDate string            `json:"appointmentDate"`
	OriginalTime    string            `json:"originalTime"`
	NewTime         *string           `json:"newTime,omitempty"`
	Resolution      string            `json:"resolution"`
	Reason          bilingual.Message `json:"reason"`
}

type ReschedulingResult struct {
	AppointmentsRescheduled           int                      `json:"appointmentsRescheduled"`
	AppointmentsMarkedForRescheduling int                      `json:"appointmentsMarkedForRescheduling"`
	AppointmentsCancelled             int                      `json:"appointmentsCancelled"`
	NotificationsSent                 int                      `json:"notificationsSent"`
	Details                           []RescheduledAppointment `json:"details"`
	WorkingHours                      []DayScheduleResponse    `json:"workingHours"`
}
