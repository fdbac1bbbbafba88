package responses

type ResponseDTO struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	User         interface{} `json:"user,omitempty"`
	PatientID    string      `json:"patient_id,omitempty"`
	DeletedCount *int64      `json:"deleted_count,omitempty"`
}
