package http

import (
	"net/http"

	"github.com/I2oman/HospitalAssessment/internal/delivery/http/handler"
	"github.com/I2oman/HospitalAssessment/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	drugHandler         *handler.DrugHandler
	insuranceHandler    *handler.InsuranceHandler
	patientHandler      *handler.PatientHandler
	prescriptionHandler *handler.PrescriptionHandler
	visitHandler        *handler.VisitHandler
	loggingMiddleware   *middleware.LoggingMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	drugHandler *handler.DrugHandler,
	insuranceHandler *handler.InsuranceHandler,
	patientHandler *handler.PatientHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	visitHandler *handler.VisitHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		drugHandler:         drugHandler,
		insuranceHandler:    insuranceHandler,
		patientHandler:      patientHandler,
		prescriptionHandler: prescriptionHandler,
		visitHandler:        visitHandler,
		loggingMiddleware:   loggingMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	api.HandleFunc("/drugs", r.drugHandler.CreateDrug).Methods(http.MethodPost)
	api.HandleFunc("/drugs", r.drugHandler.GetAllDrugs).Methods(http.MethodGet)
	api.HandleFunc("/drugs/{id}", r.drugHandler.GetDrug).Methods(http.MethodGet)
	api.HandleFunc("/drugs/{id}", r.drugHandler.UpdateDrug).Methods(http.MethodPut)
	api.HandleFunc("/drugs/{id}", r.drugHandler.DeleteDrug).Methods(http.MethodDelete)

	api.HandleFunc("/insurances", r.insuranceHandler.CreateInsurance).Methods(http.MethodPost)
	api.HandleFunc("/insurances", r.insuranceHandler.GetAllInsurances).Methods(http.MethodGet)
	api.HandleFunc("/insurances/{id}", r.insuranceHandler.GetInsurance).Methods(http.MethodGet)
	api.HandleFunc("/insurances/{id}", r.insuranceHandler.UpdateInsurance).Methods(http.MethodPut)
	api.HandleFunc("/insurances/{id}", r.insuranceHandler.DeleteInsurance).Methods(http.MethodDelete)

	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/main-doctor", r.patientHandler.GetMainDoctor).Methods(http.MethodGet)

	api.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions", r.prescriptionHandler.GetAllPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	// Visits are keyed by (patient_id, doctor_id, date) query parameters.
	api.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost)
	api.HandleFunc("/visits", r.visitHandler.GetAllVisits).Methods(http.MethodGet)
	api.HandleFunc("/visits/single", r.visitHandler.GetVisit).Methods(http.MethodGet)
	api.HandleFunc("/visits/single", r.visitHandler.UpdateVisit).Methods(http.MethodPut)
	api.HandleFunc("/visits/single", r.visitHandler.DeleteVisit).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
