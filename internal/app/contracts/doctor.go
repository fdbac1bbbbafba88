package contracts

import (
	"context"
	"health-records-service/internal/app/models"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, doctor models.Document) (doctorID string, err error)
}

// DoctorRepository lookups return (nil, nil) when no doctor matches,
// including when the id is not a valid ObjectID.
type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor models.Document) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (models.Document, error)
	FindByEmail(ctx context.Context, email string) (models.Document, error)
	FindByCredentials(ctx context.Context, email, password string) (models.Document, error)
	AppendPatientIDs(ctx context.Context, doctorID string, patientIDs ...string) (*models.UpdateResult, error)
	RemovePatientIDFromAll(ctx context.Context, patientID string) (*models.UpdateResult, error)
	RemovePatientIDsFromAll(ctx context.Context, patientIDs []string) (*models.UpdateResult, error)
}
