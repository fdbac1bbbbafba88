package controllers

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/requests"
	"health-records-service/internal/pkg/dto/responses"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

// CreatePatient handles POST /patients/{id}, where id names the doctor.
func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamID)

	patient := models.Document{}
	err := utils.ParseJSONBody(r, &patient)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	patientID, err := ctrl.PatientUsecase.CreatePatient(ctx, doctorID, patient)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.ResponseDTO{
		Message:   constvars.CreatePatientSuccessMessage,
		PatientID: patientID,
	})
}

// FindByDoctorOrPatientID handles GET /patients/{id}. A doctor id yields the
// doctor's patients, any other id the patient itself.
func (ctrl *PatientController) FindByDoctorOrPatientID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	patients, patient, err := ctrl.PatientUsecase.FindByDoctorOrPatientID(ctx, id)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	if patients != nil {
		utils.BuildJSONResponse(w, constvars.StatusOK, patients)
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, patient)
}

func (ctrl *PatientController) FindAllByDoctorID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	patients, err := ctrl.PatientUsecase.FindAllByDoctorID(ctx, doctorID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, patients)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamID)

	fields := models.Document{}
	err := utils.ParseJSONBody(r, &fields)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	err = ctrl.PatientUsecase.UpdatePatient(ctx, patientID, fields)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.ResponseDTO{
		Message: constvars.UpdatePatientSuccessMessage,
	})
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	err := ctrl.PatientUsecase.DeleteByID(ctx, patientID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.ResponseDTO{
		Message: constvars.DeletePatientSuccessMessage,
	})
}

func (ctrl *PatientController) DeletePatients(w http.ResponseWriter, r *http.Request) {
	request := new(requests.DeletePatients)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoPatientIDsProvided(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	deletedCount, err := ctrl.PatientUsecase.DeleteByIDs(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.ResponseDTO{
		Message:      constvars.DeletePatientsSuccessMessage,
		DeletedCount: &deletedCount,
	})
}
