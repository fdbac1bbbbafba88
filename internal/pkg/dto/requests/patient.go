package requests

type DeletePatients struct {
	PatientIDs []string `json:"patient_ids" validate:"required,min=1"`
}
