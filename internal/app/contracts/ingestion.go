package contracts

import (
	"context"
	"health-records-service/internal/app/models"
)

type IngestionUsecase interface {
	Transform(ctx context.Context) (*models.IngestionResult, error)
	Load(ctx context.Context, inputPath, doctorID string) (*models.LoadResult, error)
}
