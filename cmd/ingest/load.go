package main

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/drivers/database"
	"health-records-service/internal/app/drivers/logger"
	"health-records-service/internal/app/services/core/doctors"
	"health-records-service/internal/app/services/core/ingestion"
	"health-records-service/internal/app/services/core/patients"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type loadOptions struct {
	InputPath string `mapstructure:"input" validate:"required"`
	DoctorID  string `mapstructure:"doctor-id"`
}

func newLoadCommand(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Insert a transformed JSON array into the patients collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}

			options := new(loadOptions)
			err = v.Unmarshal(options)
			if err != nil {
				return err
			}
			err = utils.ValidateStruct(options)
			if err != nil {
				return exceptions.ErrInputValidation(err)
			}

			driverLogger := logger.NewZapLogger(driverConfig, internalConfig)
			defer driverLogger.Sync()

			mongoDB := database.NewMongoDB(driverConfig, driverLogger)
			defer mongoDB.Disconnect(cmd.Context())

			usecase := ingestion.NewIngestionUsecase(
				&config.IngestionConfig{InputPath: options.InputPath},
				gofakeit.New(0),
				ingestion.IngestionDependencies{
					PatientRepository: patients.NewPatientMongoRepository(mongoDB, driverConfig.MongoDB.DbName),
					DoctorRepository:  doctors.NewDoctorMongoRepository(mongoDB, driverConfig.MongoDB.DbName),
				},
				log,
			)

			result, err := usecase.Load(cmd.Context(), options.InputPath, options.DoctorID)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				constvars.LoggingInputPathKey:   result.InputPath,
				constvars.LoggingRecordCountKey: len(result.PatientIDs),
				constvars.LoggingDoctorIDKey:    result.DoctorID,
				"linked":                        result.Linked,
			}).Info("load completed")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("input", "patients.json", "JSON array produced by transform")
	flags.String("doctor-id", "", "doctor whose patients list receives the new ids")
	return cmd
}
