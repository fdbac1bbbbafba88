package doctors

import (
	"context"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

// CreateDoctor stores the document as given. Under the bcrypt password
// scheme a string password is replaced by its hash first.
func (uc *doctorUsecase) CreateDoctor(ctx context.Context, doctor models.Document) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.InternalConfig.Auth.PasswordScheme == constvars.PasswordSchemeBcrypt {
		if password, ok := doctor[constvars.FieldPassword].(string); ok {
			hashedPassword, err := utils.HashPassword(password)
			if err != nil {
				uc.Log.Error("doctorUsecase.CreateDoctor error hashing password",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return "", exceptions.ErrHashPassword(err)
			}
			doctor[constvars.FieldPassword] = hashedPassword
		}
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateDoctor(err)
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return doctorID, nil
}
