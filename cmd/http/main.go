package main

import (
	"context"
	"log"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/delivery/http/routers"
	"mediconnect-service/internal/app/drivers/database"
	"mediconnect-service/internal/app/drivers/logger"
	"mediconnect-service/internal/app/drivers/messaging"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/app/services/core/auth"
	"mediconnect-service/internal/app/services/core/doctors"
	"mediconnect-service/internal/app/services/core/roles"
	"mediconnect-service/internal/app/services/core/users"
	"mediconnect-service/internal/app/services/shared/events"
	"mediconnect-service/internal/app/services/shared/jwtmanager"
	"mediconnect-service/internal/app/services/shared/locker"
	"mediconnect-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting MediConnect API",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureIndexes(indexCtx, mongoDB.Database(driverConfig.MongoDB.DbName))
	cancelIndexes()
	if err != nil {
		log.Fatalf("Error ensuring MongoDB indexes: %v", err)
	}

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Events
	var eventPublisher contracts.AppointmentEventPublisher = events.NewNoopAppointmentPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewAppointmentPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.AppointmentEventsQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Token
	tokenManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	profileRepository := users.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	roleGate := roles.NewRoleGate(userRepository, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userRepository, profileRepository, tokenManager, bootstrap.InternalConfig, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		userRepository,
		profileRepository,
		roleGate,
		lockService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Workers
	sweeper := appointments.NewSweeper(bootstrap.Logger, bootstrap.InternalConfig, lockService, appointmentRepository)
	err := sweeper.Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.WorkerStop = sweeper.Stop

	// Delivery
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, tokenManager)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, doctorUsecase, appointmentUsecase, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController()

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		appointmentController,
		healthController,
	)
	return nil
}
