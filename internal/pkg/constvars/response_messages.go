package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccessMessage          = "Login successful"
	CreateDoctorSuccessMessage   = "Doctor record created"
	CreatePatientSuccessMessage  = "Patient record created"
	UpdatePatientSuccessMessage  = "Patient record updated"
	DeletePatientSuccessMessage  = "Patient record deleted and removed from doctor's list"
	DeletePatientsSuccessMessage = "Patient records deleted and removed from doctors' list"
)
