package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must contain at least %s item(s)",
	"gte":      "must be greater than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"gte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidLoginCredentials       = "Invalid login credentials"
	ErrClientFailedToCreateDoctor          = "Failed to create doctor"
	ErrClientFailedToCreatePatient         = "Failed to create patient"
	ErrClientFailedToUpdateDoctorRecord    = "Failed to update doctor record"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientDoctorRecordNotUpdated        = "Doctor record was not updated"
	ErrClientNoPatientsAssociated          = "No patients associated with this doctor"
	ErrClientPatientRecordNotFound         = "Patient record not found"
	ErrClientNoPatientIDsProvided          = "No patient IDs provided"
	ErrClientNoPatientRecordsToDelete      = "No patient records found to delete"
	ErrClientTooManyRequests               = "Too many requests, try again later"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevValidationFailed           = "input validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevPanicRecovered             = "recovered from panic"
	ErrDevTooManyRequests            = "client %s is blocked until %s"
	ErrDevHashPassword               = "failed to hash password"
	ErrDevInvalidCredentials         = "no doctor matches the supplied credentials"
	ErrDevDoctorNotFound             = "doctor %s does not exist"
	ErrDevDoctorNotModified          = "doctor %s matched but was not modified"
	ErrDevDoctorHasNoPatients        = "doctor %s has an empty patients list"
	ErrDevPatientNotFound            = "patient %s does not exist"
	ErrDevEmptyPatientIDs            = "patient_ids is empty"
	ErrDevNoPatientsDeleted          = "none of the requested patients exist"
	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRenderTemplate             = "failed to render template"
	ErrDevMinioCreateObject          = "failed to upload object to minio bucket %s"
	ErrDevRabbitMQPublish            = "failed to publish message to queue %s"
	ErrDevOpenSourceFile             = "failed to open source file %s"
	ErrDevReadSourceFile             = "failed to read source file %s"
	ErrDevWriteOutputFile            = "failed to write output file %s"
	ErrDevFirstNameFieldNotProjected = "first name field %s is not part of the projected fields"
	ErrDevDiseaseSampleTooLarge      = "cannot draw %d distinct entries from a list of %d"
)
