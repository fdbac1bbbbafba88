package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionDoctors  = "doctors"
	MongoCollectionPatients = "patients"
)

const (
	FieldID             = "_id"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldPatients       = "patients"
	FieldSourceID       = "sourceId"
	FieldDiseases       = "diseases"
	FieldAllergies      = "allergies"
	FieldDigitalConsent = "digitalConsent"
)

const (
	PasswordSchemePlaintext = "plaintext"
	PasswordSchemeBcrypt    = "bcrypt"
)

const (
	RedisKeyPatientFormat = "patient:%s"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)
