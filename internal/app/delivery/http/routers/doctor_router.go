package routers

import (
	"health-records-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController, patientController *controllers.PatientController) {
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/{doctorId}/patients", patientController.FindAllByDoctorID)
}
