package workinghours

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParentInfo identifies the immediate ancestor an entity's hours must nest
// inside.
type ParentInfo struct {
	EntityType models.EntityType
	EntityID   string
}

// ParentResolver walks the stored hierarchy one edge at a time:
// user's clinicId, clinic's complexId, complex's organizationId.
//
// (nil, nil) means the entity genuinely has no parent; (nil, error) means the
// lookup failed. Validation collapses both into a pass, but the two cases
// stay distinguishable for callers that care.
type ParentResolver struct {
	EntityRepository contracts.EntityRepository
}

func NewParentResolver(entityRepository contracts.EntityRepository) *ParentResolver {
	return &ParentResolver{EntityRepository: entityRepository}
}

func (r *ParentResolver) ResolveParent(ctx context.Context, entityType models.EntityType, entityID string) (*ParentInfo, error) {
	parentType, ok := entityType.ParentType()
	if !ok {
		return nil, nil
	}

	var parentID primitive.ObjectID
	switch entityType {
	case models.EntityTypeUser:
		user, err := r.EntityRepository.FindUserByID(ctx, entityID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, exceptions.ErrEntityNotFound(entityType.String(), entityID)
		}
		parentID = user.ClinicID
	case models.EntityTypeClinic:
		clinic, err := r.EntityRepository.FindClinicByID(ctx, entityID)
		if err != nil {
			return nil, err
		}
		if clinic == nil {
			return nil, exceptions.ErrEntityNotFound(entityType.String(), entityID)
		}
		parentID = clinic.ComplexID
	case models.EntityTypeComplex:
		medicalComplex, err := r.EntityRepository.FindComplexByID(ctx, entityID)
		if err != nil {
			return nil, err
		}
		if medicalComplex == nil {
			return nil, exceptions.ErrEntityNotFound(entityType.String(), entityID)
		}
		parentID = medicalComplex.OrganizationID
	}

	// An unset ancestor reference means no parent, not a broken lookup.
	if parentID.IsZero() {
		return nil, nil
	}
	return &ParentInfo{EntityType: parentType, EntityID: parentID.Hex()}, nil
}
