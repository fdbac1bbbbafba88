package controllers

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/requests"
	"health-records-service/internal/pkg/dto/responses"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	doctor, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.ResponseDTO{
		Message: constvars.LoginSuccessMessage,
		User:    doctor,
	})
}
