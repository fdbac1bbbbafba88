package exceptions

import (
	"fmt"
	"health-records-service/internal/pkg/constvars"
	"time"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
	ErrTooManyRequests = func(err error, clientIP string, blockedUntil time.Time) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, clientIP, blockedUntil.Format(time.RFC3339)))
	}
	ErrRenderTemplate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRenderTemplate)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToCreateDoctor, constvars.ErrDevHashPassword)
	}

	// Auth
	ErrInvalidLoginCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientInvalidLoginCredentials, constvars.ErrDevInvalidCredentials)
	}

	// Doctors
	ErrCreateDoctor = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToCreateDoctor, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrDoctorNotFound = func(err error, doctorID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, fmt.Sprintf(constvars.ErrDevDoctorNotFound, doctorID))
	}
	ErrDoctorNotUpdated = func(err error, doctorID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientDoctorRecordNotUpdated, fmt.Sprintf(constvars.ErrDevDoctorNotModified, doctorID))
	}
	ErrUpdateDoctorRecord = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToUpdateDoctorRecord, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrNoPatientsAssociated = func(err error, doctorID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNoPatientsAssociated, fmt.Sprintf(constvars.ErrDevDoctorHasNoPatients, doctorID))
	}

	// Patients
	ErrCreatePatient = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToCreatePatient, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrPatientNotFound = func(err error, patientID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientRecordNotFound, fmt.Sprintf(constvars.ErrDevPatientNotFound, patientID))
	}
	ErrNoPatientIDsProvided = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNoPatientIDsProvided, constvars.ErrDevEmptyPatientIDs)
	}
	ErrNoPatientsDeleted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNoPatientRecordsToDelete, constvars.ErrDevNoPatientsDeleted)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublish = func(err error, queueName string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Ingestion
	ErrOpenSourceFile = func(err error, path string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevOpenSourceFile, path))
	}
	ErrReadSourceFile = func(err error, path string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevReadSourceFile, path))
	}
	ErrWriteOutputFile = func(err error, path string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevWriteOutputFile, path))
	}
	ErrFirstNameFieldNotProjected = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevFirstNameFieldNotProjected, field))
	}
	ErrSampleTooLarge = func(err error, count, size int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDiseaseSampleTooLarge, count, size))
	}
)
