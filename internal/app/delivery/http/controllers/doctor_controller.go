package controllers

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/responses"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	doctor := models.Document{}
	err := utils.ParseJSONBody(r, &doctor)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	doctorID, err := ctrl.DoctorUsecase.CreateDoctor(ctx, doctor)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	// The created doctor's id is reported under patient_id, as existing
	// clients expect.
	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.ResponseDTO{
		Message:   constvars.CreateDoctorSuccessMessage,
		PatientID: doctorID,
	})
}
