package main

import (
	"context"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/drivers/database"
	"clinicore-service/internal/app/drivers/logger"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/appointments"
	"clinicore-service/internal/app/services/core/workinghours"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeds a demo clinic hierarchy with working hours and upcoming
// appointments so the API can be exercised right after a fresh start.
// It drops the domain collections first, so it must never run against
// a production database.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	if internalConfig.App.Env == "production" {
		log.Fatal("Refusing to seed a production environment")
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.WithError(err).Fatal("Error loading location")
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	collections := []string{
		constvars.MongoCollectionOrganizations,
		constvars.MongoCollectionComplexes,
		constvars.MongoCollectionClinics,
		constvars.MongoCollectionUsers,
		constvars.MongoCollectionWorkingHours,
		constvars.MongoCollectionAppointments,
		constvars.MongoCollectionNotifications,
	}
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.WithError(err).Fatalf("Failed to drop collection %s", name)
		}
	}
	log.Info("Dropped existing demo collections")

	if err := workinghours.EnsureIndexes(ctx, mongoClient, driverConfig.MongoDB.DbName); err != nil {
		log.WithError(err).Fatal("Failed to ensure working hours indexes")
	}
	if err := appointments.EnsureIndexes(ctx, mongoClient, driverConfig.MongoDB.DbName); err != nil {
		log.WithError(err).Fatal("Failed to ensure appointment indexes")
	}

	organizationID := seedOrganization(ctx, db, log)
	complexID := seedComplex(ctx, db, log, organizationID)
	clinicID := seedClinic(ctx, db, log, complexID)
	doctorID := seedUsers(ctx, db, log, clinicID)

	seedWorkingHours(ctx, mongoClient, driverConfig.MongoDB.DbName, log, organizationID, complexID, clinicID, doctorID)
	seedAppointments(ctx, db, log, location, doctorID, clinicID)

	log.Info("Seeding completed")
	log.Infof("Demo doctor ID: %s", doctorID.Hex())
	log.Infof("Demo clinic ID: %s", clinicID.Hex())

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.WithError(err).Error("Failed to disconnect from mongo")
	}
}

func seedOrganization(ctx context.Context, db *mongo.Database, log *logrus.Logger) primitive.ObjectID {
	organization := models.Organization{
		Name:     bilingual.New("CliniCore Hospital Group", "مجموعة كلينيكور الطبية"),
		IsActive: true,
	}
	organization.SetCreatedAtUpdatedAt()

	result, err := db.Collection(constvars.MongoCollectionOrganizations).InsertOne(ctx, organization)
	if err != nil {
		log.WithError(err).Fatal("Failed to insert organization")
	}
	return result.InsertedID.(primitive.ObjectID)
}

func seedComplex(ctx context.Context, db *mongo.Database, log *logrus.Logger, organizationID primitive.ObjectID) primitive.ObjectID {
	medicalComplex := models.MedicalComplex{
		OrganizationID: organizationID,
		Name:           bilingual.New("North Riyadh Medical Complex", "مجمع شمال الرياض الطبي"),
		IsActive:       true,
	}
	medicalComplex.SetCreatedAtUpdatedAt()

	result, err := db.Collection(constvars.MongoCollectionComplexes).InsertOne(ctx, medicalComplex)
	if err != nil {
		log.WithError(err).Fatal("Failed to insert medical complex")
	}
	return result.InsertedID.(primitive.ObjectID)
}

func seedClinic(ctx context.Context, db *mongo.Database, log *logrus.Logger, complexID primitive.ObjectID) primitive.ObjectID {
	clinic := models.Clinic{
		ComplexID: complexID,
		Name:      bilingual.New("Downtown Family Clinic", "عيادة وسط المدينة للأسرة"),
		IsActive:  true,
	}
	clinic.SetCreatedAtUpdatedAt()

	result, err := db.Collection(constvars.MongoCollectionClinics).InsertOne(ctx, clinic)
	if err != nil {
		log.WithError(err).Fatal("Failed to insert clinic")
	}
	return result.InsertedID.(primitive.ObjectID)
}

func seedUsers(ctx context.Context, db *mongo.Database, log *logrus.Logger, clinicID primitive.ObjectID) primitive.ObjectID {
	password, err := utils.HashPassword("ChangeMe!123")
	if err != nil {
		log.WithError(err).Fatal("Failed to hash demo password")
	}

	doctor := models.User{
		ClinicID: clinicID,
		Role:     constvars.RoleDoctor,
		Name:     bilingual.New("Dr. Sara Al-Fulan", "د. سارة الفلان"),
		Email:    "doctor@demo.clinicore.local",
		Password: password,
		IsActive: true,
	}
	doctor.SetCreatedAtUpdatedAt()

	staff := models.User{
		ClinicID: clinicID,
		Role:     constvars.RoleStaff,
		Name:     bilingual.New("Omar Receptionist", "عمر موظف الاستقبال"),
		Email:    "staff@demo.clinicore.local",
		Password: password,
		IsActive: true,
	}
	staff.SetCreatedAtUpdatedAt()

	usersCollection := db.Collection(constvars.MongoCollectionUsers)

	doctorResult, err := usersCollection.InsertOne(ctx, doctor)
	if err != nil {
		log.WithError(err).Fatal("Failed to insert doctor")
	}
	if _, err := usersCollection.InsertOne(ctx, staff); err != nil {
		log.WithError(err).Fatal("Failed to insert staff")
	}

	return doctorResult.InsertedID.(primitive.ObjectID)
}

func seedWorkingHours(
	ctx context.Context,
	mongoClient *mongo.Client,
	dbName string,
	log *logrus.Logger,
	organizationID, complexID, clinicID, doctorID primitive.ObjectID,
) {
	repository := workinghours.NewWorkingHoursMongoRepository(mongoClient, dbName)

	// Each level narrows its parent's window so hierarchy validation has
	// something meaningful to check against.
	seeds := []struct {
		entityType models.EntityType
		entityID   primitive.ObjectID
		schedule   []requests.DayScheduleInput
	}{
		{models.EntityTypeOrganization, organizationID, demoWeek("08:00", "18:00", nil, nil)},
		{models.EntityTypeComplex, complexID, demoWeek("08:30", "17:30", nil, nil)},
		{models.EntityTypeClinic, clinicID, demoWeek("09:00", "17:00", stringPtr("12:00"), stringPtr("13:00"))},
		{models.EntityTypeUser, doctorID, demoWeek("10:00", "16:00", stringPtr("12:00"), stringPtr("13:00"))},
	}

	for _, seed := range seeds {
		week, err := utils.BuildDayScheduleModels(seed.entityType, seed.entityID.Hex(), seed.schedule)
		if err != nil {
			log.WithError(err).Fatalf("Failed to build %s schedule", seed.entityType)
		}
		if _, err := repository.ReplaceForEntity(ctx, seed.entityType, seed.entityID.Hex(), week); err != nil {
			log.WithError(err).Fatalf("Failed to store %s schedule", seed.entityType)
		}
	}
	log.Info("Stored working hours for the full hierarchy")
}

func seedAppointments(
	ctx context.Context,
	db *mongo.Database,
	log *logrus.Logger,
	location *time.Location,
	doctorID, clinicID primitive.ObjectID,
) {
	monday := upcomingMonday(location)

	seeds := []struct {
		daysAfterMonday int
		clock           string
		status          models.AppointmentStatus
	}{
		{0, "10:00", models.AppointmentStatusConfirmed},
		{0, "10:30", models.AppointmentStatusScheduled},
		{1, "14:00", models.AppointmentStatusScheduled},
		{2, "15:30", models.AppointmentStatusScheduled},
	}

	documents := make([]interface{}, 0, len(seeds))
	for _, seed := range seeds {
		appointment := models.Appointment{
			DoctorID:        doctorID,
			PatientID:       primitive.NewObjectID(),
			ClinicID:        clinicID,
			AppointmentDate: monday.AddDate(0, 0, seed.daysAfterMonday),
			AppointmentTime: seed.clock,
			DurationMinutes: 30,
			Status:          seed.status,
		}
		appointment.SetCreatedAtUpdatedAt()
		documents = append(documents, appointment)
	}

	if _, err := db.Collection(constvars.MongoCollectionAppointments).InsertMany(ctx, documents); err != nil {
		log.WithError(err).Fatal("Failed to insert appointments")
	}
	log.Infof("Inserted %d upcoming appointments", len(documents))
}

func demoWeek(opening, closing string, breakStart, breakEnd *string) []requests.DayScheduleInput {
	week := make([]requests.DayScheduleInput, 0, len(models.AllDaysOfWeek()))
	for _, day := range models.AllDaysOfWeek() {
		input := requests.DayScheduleInput{DayOfWeek: string(day)}
		if day != models.Saturday && day != models.Sunday {
			input.IsWorkingDay = true
			input.OpeningTime = stringPtr(opening)
			input.ClosingTime = stringPtr(closing)
			input.BreakStartTime = breakStart
			input.BreakEndTime = breakEnd
		}
		week = append(week, input)
	}
	return week
}

func upcomingMonday(location *time.Location) time.Time {
	now := time.Now().In(location)
	daysAhead := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	monday := now.AddDate(0, 0, daysAhead)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, location)
}

func stringPtr(value string) *string {
	return &value
}
