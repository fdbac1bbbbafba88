package constvars

const (
	URLParamID       = "id"
	URLParamDoctorID = "doctorId"
)
