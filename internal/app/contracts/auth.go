package contracts

import (
	"context"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/dto/requests"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (models.Document, error)
}
