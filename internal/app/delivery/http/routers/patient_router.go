package routers

import (
	"health-records-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// The {id} segment names a doctor on POST and a doctor or patient on GET.
func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Delete("/", patientController.DeletePatients)
	router.Post("/{id}", patientController.CreatePatient)
	router.Get("/{id}", patientController.FindByDoctorOrPatientID)
	router.Put("/{id}", patientController.UpdatePatient)
	router.Delete("/{id}", patientController.DeletePatient)
}
