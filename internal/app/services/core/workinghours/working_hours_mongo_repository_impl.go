package workinghours

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkingHoursMongoRepository struct {
	Collection *mongo.Collection
}

func NewWorkingHoursMongoRepository(db *mongo.Client, dbName string) contracts.WorkingHoursRepository {
	return &WorkingHoursMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWorkingHours),
	}
}

// EnsureIndexes creates the unique week key so one entity can never hold two
// records for the same day. Idempotent, called once on boot.
func EnsureIndexes(ctx context.Context, db *mongo.Client, dbName string) error {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionWorkingHours)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "entityType", Value: 1},
			{Key: "entityId", Value: 1},
			{Key: "dayOfWeek", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (repo *WorkingHoursMongoRepository) FindActiveByEntity(ctx context.Context, entityType models.EntityType, entityID string) ([]models.DaySchedule, error) {
	objectID, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"entityType": entityType,
		"entityId":   objectID,
		"isActive":   true,
		"deletedAt":  nil,
	}

	var week []models.DaySchedule
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &week)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return week, nil
}

func (repo *WorkingHoursMongoRepository) ReplaceForEntity(ctx context.Context, entityType models.EntityType, entityID string, week []models.DaySchedule) ([]models.DaySchedule, error) {
	objectID, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"entityType": entityType,
		"entityId":   objectID,
	}

	_, err = repo.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBDeleteDocument(err)
	}

	documents := make([]interface{}, len(week))
	for i := range week {
		documents[i] = week[i]
	}

	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	for i, insertedID := range result.InsertedIDs {
		week[i].ID = insertedID.(primitive.ObjectID)
	}
	return week, nil
}

func (repo *WorkingHoursMongoRepository) DeactivateForEntity(ctx context.Context, entityType models.EntityType, entityID string) error {
	objectID, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"entityType": entityType,
		"entityId":   objectID,
		"isActive":   true,
	}
	update := bson.M{"$set": bson.M{"isActive": false}}

	_, err = repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
