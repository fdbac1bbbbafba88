package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingPatientIDsKey    = "patient_ids"
	LoggingPatientCountKey  = "patient_count"
	LoggingDeletedCountKey  = "deleted_count"
	LoggingMatchedCountKey  = "matched_count"
	LoggingModifiedCountKey = "modified_count"
	LoggingEmailKey         = "email"
	LoggingErrorTypeKey     = "error_type"
	LoggingInputPathKey     = "input_path"
	LoggingOutputPathKey    = "output_path"
	LoggingRecordCountKey   = "record_count"
	LoggingBucketNameKey    = "bucket_name"
	LoggingObjectNameKey    = "object_name"
	LoggingQueueNameKey     = "queue_name"
)
