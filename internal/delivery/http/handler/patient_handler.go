package handler

import (
	"encoding/json"
	"net/http"

	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/usecase"
	"github.com/I2oman/HospitalAssessment/pkg/response"
	"github.com/I2oman/HospitalAssessment/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	visitUsecase   usecase.VisitUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		visitUsecase:   visitUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		patient, err := h.patientUsecase.GetByEmail(r.Context(), email)
		if err != nil {
			response.NotFound(w, "Patient not found")
			return
		}
		response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
		return
	}
	if name := r.URL.Query().Get("name"); name != "" {
		patient, err := h.patientUsecase.GetByFullName(r.Context(), name)
		if err != nil {
			response.NotFound(w, "Patient not found")
			return
		}
		response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
		return
	}

	patients := h.patientUsecase.GetAll(r.Context())
	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patient, err := h.patientUsecase.Get(r.Context(), vars["id"])
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// GetMainDoctor returns the doctor the patient has visited most often.
func (h *PatientHandler) GetMainDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.visitUsecase.GetMainDoctor(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrMainDoctorNotFound:
			response.NotFound(w, "No visits recorded for this patient")
		default:
			response.InternalServerError(w, "Failed to get main doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Main doctor retrieved successfully", doctor)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.patientUsecase.Create(r.Context(), &req), http.StatusCreated)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.ID = vars["id"]

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.patientUsecase.Update(r.Context(), &req), http.StatusOK)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	response.Outcome(w, h.patientUsecase.Delete(r.Context(), vars["id"]), http.StatusOK)
}
