package patients

import (
	"context"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/requests"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	PatientCache      contracts.PatientCache
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	patientCache contracts.PatientCache,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		DoctorRepository:  doctorRepository,
		PatientCache:      patientCache,
		Log:               logger,
	}
}

// CreatePatient inserts the patient, then appends its id to the doctor's
// list. A failure in the second step leaves the patient stored without any
// doctor referencing it.
func (uc *patientUsecase) CreatePatient(ctx context.Context, doctorID string, patient models.Document) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreatePatient(err)
	}

	result, err := uc.DoctorRepository.AppendPatientIDs(ctx, doctorID, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error appending patient to doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return "", exceptions.ErrUpdateDoctorRecord(err)
	}

	if result.MatchedCount == 0 {
		uc.Log.Warn("patientUsecase.CreatePatient doctor not found, patient left unlinked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return "", exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	if result.ModifiedCount == 0 {
		uc.Log.Warn("patientUsecase.CreatePatient doctor matched but not modified",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return "", exceptions.ErrDoctorNotUpdated(nil, doctorID)
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patientID, nil
}

func (uc *patientUsecase) FindAllByDoctorID(ctx context.Context, doctorID string) ([]models.Document, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAllByDoctorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAllByDoctorID error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	return uc.patientsOfDoctor(ctx, doctorID, doctor)
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (models.Document, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	cached, err := uc.PatientCache.Get(ctx, patientID)
	if err != nil {
		uc.Log.Warn("patientUsecase.FindByID error reading patient from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != nil {
		uc.Log.Info("patientUsecase.FindByID served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return cached, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error finding patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}

	response := patient.ConvertIntoResponse()
	err = uc.PatientCache.Set(ctx, patientID, response)
	if err != nil {
		uc.Log.Warn("patientUsecase.FindByID error caching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return response, nil
}

// FindByDoctorOrPatientID resolves an id that may name either a doctor or a
// patient. A doctor match wins and yields the doctor's patients; otherwise
// the id is looked up as a patient.
func (uc *patientUsecase) FindByDoctorOrPatientID(ctx context.Context, id string) ([]models.Document, models.Document, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByDoctorOrPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, id)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByDoctorOrPatientID error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	if doctor != nil {
		patients, err := uc.patientsOfDoctor(ctx, id, doctor)
		return patients, nil, err
	}

	patient, err := uc.FindByID(ctx, id)
	return nil, patient, err
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, fields models.Document) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	result, err := uc.PatientRepository.UpdateFields(ctx, patientID, fields.WithoutID())
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil, patientID)
	}

	uc.invalidateCache(ctx, requestID, patientID)

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingModifiedCountKey, result.ModifiedCount),
	)
	return nil
}

// DeleteByID removes the patient, then pulls its id from every doctor list.
// Failures of the second step are logged only.
func (uc *patientUsecase) DeleteByID(ctx context.Context, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteByID error finding patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if patient == nil {
		return exceptions.ErrPatientNotFound(nil, patientID)
	}

	deletedCount, err := uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteByID error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if deletedCount == 0 {
		return exceptions.ErrPatientNotFound(nil, patientID)
	}

	uc.invalidateCache(ctx, requestID, patientID)

	result, err := uc.DoctorRepository.RemovePatientIDFromAll(ctx, patientID)
	if err != nil {
		uc.Log.Warn("patientUsecase.DeleteByID error removing patient from doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	} else {
		uc.Log.Info("patientUsecase.DeleteByID removed patient from doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingModifiedCountKey, result.ModifiedCount),
		)
	}

	uc.Log.Info("patientUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// DeleteByIDs removes every listed patient that exists and pulls all the
// requested ids from every doctor list.
func (uc *patientUsecase) DeleteByIDs(ctx context.Context, request *requests.DeletePatients) (int64, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeleteByIDs called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request == nil || len(request.PatientIDs) == 0 {
		return 0, exceptions.ErrNoPatientIDsProvided(nil)
	}

	deletedCount, err := uc.PatientRepository.DeleteByIDs(ctx, request.PatientIDs)
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteByIDs error deleting patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	if deletedCount == 0 {
		return 0, exceptions.ErrNoPatientsDeleted(nil)
	}

	uc.invalidateCache(ctx, requestID, request.PatientIDs...)

	_, err = uc.DoctorRepository.RemovePatientIDsFromAll(ctx, request.PatientIDs)
	if err != nil {
		uc.Log.Warn("patientUsecase.DeleteByIDs error removing patients from doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingPatientIDsKey, request.PatientIDs),
			zap.Error(err),
		)
	}

	uc.Log.Info("patientUsecase.DeleteByIDs succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDeletedCountKey, deletedCount),
	)
	return deletedCount, nil
}

// patientsOfDoctor returns the doctor's patients in list order, each once.
// Ids without a stored patient are dropped.
func (uc *patientUsecase) patientsOfDoctor(ctx context.Context, doctorID string, doctor models.Document) ([]models.Document, error) {
	requestID := utils.GetRequestID(ctx)

	patientIDs := doctor.PatientIDs()
	if len(patientIDs) == 0 {
		return nil, exceptions.ErrNoPatientsAssociated(nil, doctorID)
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		uc.Log.Error("patientUsecase.patientsOfDoctor error finding patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patientsByID := make(map[string]models.Document, len(patients))
	for _, patient := range patients {
		patientsByID[patient.ID()] = patient
	}

	response := make([]models.Document, 0, len(patients))
	for _, patientID := range patientIDs {
		patient, ok := patientsByID[patientID]
		if !ok {
			continue
		}
		response = append(response, patient.ConvertIntoResponse())
		delete(patientsByID, patientID)
	}

	uc.Log.Info("patientUsecase.patientsOfDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingPatientCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) invalidateCache(ctx context.Context, requestID string, patientIDs ...string) {
	err := uc.PatientCache.Delete(ctx, patientIDs...)
	if err != nil {
		uc.Log.Warn("patientUsecase.invalidateCache error deleting cached patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingPatientIDsKey, patientIDs),
			zap.Error(err),
		)
	}
}
