package main

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/drivers/messaging"
	"health-records-service/internal/app/drivers/storage"
	"health-records-service/internal/app/services/core/ingestion"
	sharedMessaging "health-records-service/internal/app/services/shared/messaging"
	sharedStorage "health-records-service/internal/app/services/shared/storage"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTransformCommand(driverConfig *config.DriverConfig, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Project, enrich and write the CSV export as a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}

			ingestionConfig := new(config.IngestionConfig)
			err = v.Unmarshal(ingestionConfig)
			if err != nil {
				return err
			}
			err = utils.ValidateStruct(ingestionConfig)
			if err != nil {
				return exceptions.ErrInputValidation(err)
			}

			dependencies := ingestion.IngestionDependencies{}
			if ingestionConfig.UploadBucket != "" {
				minioClient, err := storage.NewMinio(driverConfig)
				if err != nil {
					return err
				}
				dependencies.Storage = sharedStorage.NewMinioStorage(minioClient)
			}
			if ingestionConfig.NotifyQueue != "" {
				rabbitMQConnection, err := messaging.NewRabbitMQ(driverConfig)
				if err != nil {
					return err
				}
				defer rabbitMQConnection.Close()

				publisher, err := sharedMessaging.NewRabbitMQPublisher(rabbitMQConnection)
				if err != nil {
					return err
				}
				defer publisher.Close()
				dependencies.Publisher = publisher
			}

			usecase := ingestion.NewIngestionUsecase(
				ingestionConfig,
				gofakeit.New(ingestionConfig.Seed),
				dependencies,
				log,
			)

			result, err := usecase.Transform(cmd.Context())
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				constvars.LoggingOutputPathKey:  result.OutputPath,
				constvars.LoggingRecordCountKey: result.RecordCount,
				constvars.LoggingObjectNameKey:  result.ObjectName,
			}).Info("transform completed")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("input", "patients.csv", "CSV export to read")
	flags.String("output", "patients.json", "JSON file to write, overwritten if present")
	flags.Int("limit", 50, "number of rows to keep, -1 keeps all")
	flags.StringSlice("fields", config.DefaultIngestionFields, "columns to keep, matched case-insensitively")
	flags.String("first-name-field", "first", "column the email address is derived from")
	flags.String("email-domain", "example.com", "domain of the derived email address")
	flags.Uint64("seed", 0, "seed of the random source, 0 picks one")
	flags.String("upload-bucket", "", "MinIO bucket to archive the output file to")
	flags.String("notify-queue", "", "RabbitMQ queue to announce the completed run on")
	return cmd
}
