package entities

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EntityMongoRepository reads the entity directory the hierarchy is derived
// from. It never writes; entity lifecycle belongs to another service.
type EntityMongoRepository struct {
	Organizations *mongo.Collection
	Complexes     *mongo.Collection
	Clinics       *mongo.Collection
	Users         *mongo.Collection
}

func NewEntityMongoRepository(db *mongo.Client, dbName string) contracts.EntityRepository {
	database := db.Database(dbName)
	return &EntityMongoRepository{
		Organizations: database.Collection(constvars.MongoCollectionOrganizations),
		Complexes:     database.Collection(constvars.MongoCollectionComplexes),
		Clinics:       database.Collection(constvars.MongoCollectionClinics),
		Users:         database.Collection(constvars.MongoCollectionUsers),
	}
}

func (repo *EntityMongoRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*models.Organization, error) {
	objectID, err := primitive.ObjectIDFromHex(organizationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var organization models.Organization
	err = repo.Organizations.FindOne(ctx, bson.M{"_id": objectID}).Decode(&organization)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &organization, nil
}

func (repo *EntityMongoRepository) FindComplexByID(ctx context.Context, complexID string) (*models.MedicalComplex, error) {
	objectID, err := primitive.ObjectIDFromHex(complexID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var medicalComplex models.MedicalComplex
	err = repo.Complexes.FindOne(ctx, bson.M{"_id": objectID}).Decode(&medicalComplex)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicalComplex, nil
}

func (repo *EntityMongoRepository) FindClinicByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	objectID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var clinic models.Clinic
	err = repo.Clinics.FindOne(ctx, bson.M{"_id": objectID}).Decode(&clinic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinic, nil
}

func (repo *EntityMongoRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var user models.User
	err = repo.Users.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}
