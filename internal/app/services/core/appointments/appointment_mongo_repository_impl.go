package appointments

import (
	"context"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes backs the conflict scan: doctor, date range and status are
// always filtered together. Idempotent, called once on boot.
func EnsureIndexes(ctx context.Context, db *mongo.Client, dbName string) error {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionAppointments)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "status", Value: 1},
		},
	})
	return err
}

func (repo *AppointmentMongoRepository) FindUpcomingByDoctor(ctx context.Context, doctorID string, from time.Time, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"doctorId":        objectID,
		"appointmentDate": bson.M{"$gte": from},
		"status":          bson.M{"$in": statuses},
		"deletedAt":       nil,
	}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "appointmentTime", Value: 1},
	})

	var appointments []models.Appointment
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	filter := bson.M{"_id": appointment.ID}

	_, err := repo.Collection.ReplaceOne(ctx, filter, appointment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
