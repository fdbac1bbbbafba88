package contracts

import (
	"context"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, doctorID string, patient models.Document) (patientID string, err error)
	FindAllByDoctorID(ctx context.Context, doctorID string) ([]models.Document, error)
	FindByID(ctx context.Context, patientID string) (models.Document, error)
	FindByDoctorOrPatientID(ctx context.Context, id string) (patients []models.Document, patient models.Document, err error)
	UpdatePatient(ctx context.Context, patientID string, fields models.Document) error
	DeleteByID(ctx context.Context, patientID string) error
	DeleteByIDs(ctx context.Context, request *requests.DeletePatients) (deletedCount int64, err error)
}

// PatientRepository lookups return (nil, nil) when no patient matches,
// including when the id is not a valid ObjectID.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient models.Document) (patientID string, err error)
	CreatePatients(ctx context.Context, patients []models.Document) (patientIDs []string, err error)
	FindByID(ctx context.Context, patientID string) (models.Document, error)
	FindByIDs(ctx context.Context, patientIDs []string) ([]models.Document, error)
	UpdateFields(ctx context.Context, patientID string, fields models.Document) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, patientID string) (deletedCount int64, err error)
	DeleteByIDs(ctx context.Context, patientIDs []string) (deletedCount int64, err error)
}

// PatientCache holds rendered patient documents. Get returns (nil, nil) on a
// miss.
type PatientCache interface {
	Get(ctx context.Context, patientID string) (models.Document, error)
	Set(ctx context.Context, patientID string, patient models.Document) error
	Delete(ctx context.Context, patientIDs ...string) error
}
