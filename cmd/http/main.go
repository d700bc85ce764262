package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/delivery/http/routers"
	"clinicore-service/internal/app/drivers/database"
	"clinicore-service/internal/app/drivers/logger"
	"clinicore-service/internal/app/drivers/messaging"
	"clinicore-service/internal/app/services/core/appointments"
	"clinicore-service/internal/app/services/core/entities"
	"clinicore-service/internal/app/services/core/notifications"
	"clinicore-service/internal/app/services/core/rescheduling"
	"clinicore-service/internal/app/services/core/workinghours"
	"clinicore-service/internal/app/services/shared/locker"
	"clinicore-service/internal/app/services/shared/notifier"
	"clinicore-service/internal/app/services/shared/redis"
	"clinicore-service/internal/app/services/shared/transactions"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	if err := workinghours.EnsureIndexes(ctx, bootstrap.MongoDB, dbName); err != nil {
		log.Fatalf("Failed to ensure working hours indexes: %v", err)
	}
	if err := appointments.EnsureIndexes(ctx, bootstrap.MongoDB, dbName); err != nil {
		log.Fatalf("Failed to ensure appointment indexes: %v", err)
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	transactionManager := transactions.NewMongoTransactionManager(bootstrap.MongoDB, bootstrap.Logger)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	notificationPublisher, err := notifier.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
	)
	if err != nil {
		log.Fatalf("Failed to initialize notification publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, lockerService, bootstrap.InternalConfig)

	// Repositories
	workingHoursRepository := workinghours.NewWorkingHoursMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	entityRepository := entities.NewEntityMongoRepository(bootstrap.MongoDB, dbName)

	// Working hours
	parentResolver := workinghours.NewParentResolver(entityRepository)
	workingHoursUsecase := workinghours.NewWorkingHoursUsecase(
		workingHoursRepository,
		entityRepository,
		redisRepository,
		transactionManager,
		parentResolver,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	workingHoursController := controllers.NewWorkingHoursController(bootstrap.Logger, workingHoursUsecase)

	// Rescheduling
	reschedulingUsecase := rescheduling.NewReschedulingUsecase(
		workingHoursRepository,
		appointmentRepository,
		notificationRepository,
		notificationPublisher,
		transactionManager,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reschedulingController := controllers.NewReschedulingController(bootstrap.Logger, reschedulingUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		workingHoursController,
		reschedulingController,
	)
}
