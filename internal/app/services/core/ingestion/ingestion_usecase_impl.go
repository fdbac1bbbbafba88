package ingestion

import (
	"context"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/requests"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ingestionUsecase struct {
	Config            *config.IngestionConfig
	Random            RandomSource
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	Storage           contracts.Storage
	Publisher         contracts.Publisher
	Log               *logrus.Logger
}

// IngestionDependencies carries the optional collaborators of the pipeline.
// Repositories are needed by Load only, Storage and Publisher by Transform
// when an upload bucket or notify queue is configured.
type IngestionDependencies struct {
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	Storage           contracts.Storage
	Publisher         contracts.Publisher
}

func NewIngestionUsecase(
	ingestionConfig *config.IngestionConfig,
	random RandomSource,
	dependencies IngestionDependencies,
	logger *logrus.Logger,
) contracts.IngestionUsecase {
	return &ingestionUsecase{
		Config:            ingestionConfig,
		Random:            random,
		PatientRepository: dependencies.PatientRepository,
		DoctorRepository:  dependencies.DoctorRepository,
		Storage:           dependencies.Storage,
		Publisher:         dependencies.Publisher,
		Log:               logger,
	}
}

// Transform reads the CSV export, keeps the allow-listed columns of the first
// rows, adds the synthesized fields and writes the result as JSON.
func (uc *ingestionUsecase) Transform(ctx context.Context) (*models.IngestionResult, error) {
	cfg := uc.Config
	log := uc.Log.WithFields(logrus.Fields{
		constvars.LoggingInputPathKey:  cfg.InputPath,
		constvars.LoggingOutputPathKey: cfg.OutputPath,
	})
	log.Info("ingestionUsecase.Transform called")

	source, err := readCSV(cfg.InputPath)
	if err != nil {
		log.WithError(err).Error("ingestionUsecase.Transform error reading source file")
		return nil, err
	}

	columns, records := project(source, cfg.Fields, cfg.Limit)
	firstNameField := strings.ToLower(cfg.FirstNameField)
	if !containsField(columns, firstNameField) {
		err := exceptions.ErrFirstNameFieldNotProjected(nil, firstNameField)
		log.WithError(err).Error("ingestionUsecase.Transform first name field missing")
		return nil, err
	}

	for _, record := range records {
		err = enrich(record, firstNameField, cfg.EmailDomain, uc.Random)
		if err != nil {
			log.WithError(err).Error("ingestionUsecase.Transform error enriching record")
			return nil, err
		}
	}

	err = writeJSON(cfg.OutputPath, records)
	if err != nil {
		log.WithError(err).Error("ingestionUsecase.Transform error writing output file")
		return nil, err
	}

	result := &models.IngestionResult{
		InputPath:   cfg.InputPath,
		OutputPath:  cfg.OutputPath,
		RecordCount: len(records),
		CompletedAt: time.Now().UTC(),
	}
	log.WithField(constvars.LoggingRecordCountKey, result.RecordCount).Info("ingestionUsecase.Transform wrote output file")

	if cfg.UploadBucket != "" {
		result.ObjectName, err = uc.archive(ctx, cfg.OutputPath, cfg.UploadBucket)
		if err != nil {
			log.WithError(err).Error("ingestionUsecase.Transform error uploading output file")
			return nil, err
		}
	}

	if cfg.NotifyQueue != "" {
		err = uc.notify(ctx, cfg.NotifyQueue, result)
		if err != nil {
			log.WithError(err).Error("ingestionUsecase.Transform error publishing notification")
			return nil, err
		}
	}

	log.WithField(constvars.LoggingRecordCountKey, result.RecordCount).Info("ingestionUsecase.Transform succeeded")
	return result, nil
}

// Load inserts the records of a transformed file as new patients. The
// source _id is kept as sourceId. With a doctor id the new patients are
// appended to that doctor's list.
func (uc *ingestionUsecase) Load(ctx context.Context, inputPath, doctorID string) (*models.LoadResult, error) {
	log := uc.Log.WithFields(logrus.Fields{
		constvars.LoggingInputPathKey: inputPath,
		constvars.LoggingDoctorIDKey:  doctorID,
	})
	log.Info("ingestionUsecase.Load called")

	records, err := readJSON(inputPath)
	if err != nil {
		log.WithError(err).Error("ingestionUsecase.Load error reading input file")
		return nil, err
	}

	for _, record := range records {
		if sourceID, ok := record[constvars.FieldID]; ok {
			record[constvars.FieldSourceID] = sourceID
			delete(record, constvars.FieldID)
		}
	}

	patientIDs, err := uc.PatientRepository.CreatePatients(ctx, records)
	if err != nil {
		log.WithError(err).Error("ingestionUsecase.Load error inserting patients")
		return nil, err
	}

	result := &models.LoadResult{
		InputPath:  inputPath,
		DoctorID:   doctorID,
		PatientIDs: patientIDs,
	}
	log.WithField(constvars.LoggingRecordCountKey, len(patientIDs)).Info("ingestionUsecase.Load inserted patients")

	if doctorID == "" || len(patientIDs) == 0 {
		return result, nil
	}

	updateResult, err := uc.DoctorRepository.AppendPatientIDs(ctx, doctorID, patientIDs...)
	if err != nil {
		log.WithError(err).Error("ingestionUsecase.Load error linking patients to doctor")
		return nil, exceptions.ErrUpdateDoctorRecord(err)
	}
	if updateResult.MatchedCount == 0 {
		log.Warn("ingestionUsecase.Load doctor not found, patients left unlinked")
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	result.Linked = true
	log.Info("ingestionUsecase.Load succeeded")
	return result, nil
}

func (uc *ingestionUsecase) archive(ctx context.Context, outputPath, bucketName string) (string, error) {
	extension := filepath.Ext(outputPath)
	prefix := strings.TrimSuffix(filepath.Base(outputPath), extension)
	objectName := utils.GenerateFileName(prefix, extension)

	uploaded, err := uc.Storage.UploadFile(ctx, outputPath, bucketName, objectName)
	if err != nil {
		return "", err
	}

	uc.Log.WithFields(logrus.Fields{
		constvars.LoggingBucketNameKey: bucketName,
		constvars.LoggingObjectNameKey: uploaded,
	}).Info("ingestionUsecase.archive uploaded output file")
	return uploaded, nil
}

func (uc *ingestionUsecase) notify(ctx context.Context, queue string, result *models.IngestionResult) error {
	notification := requests.IngestionNotification{
		OutputPath:  result.OutputPath,
		ObjectName:  result.ObjectName,
		RecordCount: result.RecordCount,
		CompletedAt: result.CompletedAt.Format(time.RFC3339),
	}

	err := uc.Publisher.Publish(ctx, queue, notification)
	if err != nil {
		return err
	}

	uc.Log.WithField(constvars.LoggingQueueNameKey, queue).Info("ingestionUsecase.notify published notification")
	return nil
}
