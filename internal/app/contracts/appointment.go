package contracts

import (
	"context"
	"time"

	"clinicore-service/internal/app/models"
)

type AppointmentRepository interface {
	// FindUpcomingByDoctor returns appointments for the doctor on or after
	// the given date with one of the given statuses, excluding soft-deleted
	// records.
	FindUpcomingByDoctor(ctx context.Context, doctorID string, from time.Time, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}
