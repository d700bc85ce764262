package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
)

// EntityRepository is the read-only directory of schedule-bearing entities.
// Finders return (nil, nil) when no matching document exists.
type EntityRepository interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*models.Organization, error)
	FindComplexByID(ctx context.Context, complexID string) (*models.MedicalComplex, error)
	FindClinicByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}
