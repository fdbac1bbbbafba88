package auth

import (
	"context"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/requests"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	DoctorRepository contracts.DoctorRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAuthUsecase(
	doctorRepository contracts.DoctorRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		DoctorRepository: doctorRepository,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

// Login returns the doctor whose email and password both match, rendered for
// the client.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (models.Document, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	doctor, err := uc.findDoctor(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if doctor == nil {
		uc.Log.Info("authUsecase.Login credentials did not match",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidLoginCredentials(nil)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID()),
	)
	return doctor.ConvertIntoResponse(), nil
}

func (uc *authUsecase) findDoctor(ctx context.Context, request *requests.Login) (models.Document, error) {
	if uc.InternalConfig.Auth.PasswordScheme != constvars.PasswordSchemeBcrypt {
		return uc.DoctorRepository.FindByCredentials(ctx, request.Email, request.Password)
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil || doctor == nil {
		return nil, err
	}

	hashedPassword, _ := doctor[constvars.FieldPassword].(string)
	if !utils.CheckPasswordHash(request.Password, hashedPassword) {
		return nil, nil
	}
	return doctor, nil
}
