package main

import (
	"context"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/delivery/http/controllers"
	"health-records-service/internal/app/delivery/http/middlewares"
	"health-records-service/internal/app/delivery/http/routers"
	"health-records-service/internal/app/drivers/database"
	"health-records-service/internal/app/drivers/logger"
	"health-records-service/internal/app/services/core/auth"
	"health-records-service/internal/app/services/core/doctors"
	"health-records-service/internal/app/services/core/patients"
	"health-records-service/internal/app/services/shared/redis"
	"health-records-service/internal/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Cache
	var patientCache contracts.PatientCache
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		patientCache = redis.NewPatientCache(
			redisRepository,
			time.Duration(bootstrap.InternalConfig.Cache.PatientTTLInSeconds)*time.Second,
		)
	} else {
		patientCache = redis.NewNoopPatientCache()
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, metrics.New())

	// Repositories
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Home
	homeController, err := controllers.NewHomeController(bootstrap.Logger, bootstrap.InternalConfig)
	if err != nil {
		return err
	}

	// Auth
	authUseCase := auth.NewAuthUsecase(doctorMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUseCase, bootstrap.InternalConfig)

	// Doctor
	doctorUseCase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUseCase, bootstrap.InternalConfig)

	// Patient
	patientUseCase := patients.NewPatientUsecase(patientMongoRepository, doctorMongoRepository, patientCache, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUseCase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		homeController,
		authController,
		doctorController,
		patientController,
	)
	return nil
}
