package handler

import (
	"encoding/json"
	"net/http"

	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/usecase"
	"github.com/I2oman/HospitalAssessment/pkg/response"
	"github.com/I2oman/HospitalAssessment/pkg/validator"
)

// VisitHandler addresses single visits by the (patient_id, doctor_id, date)
// query triple since visits carry no surrogate id.
type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func visitKeyParams(r *http.Request) (patientID, doctorID, date string, ok bool) {
	q := r.URL.Query()
	patientID = q.Get("patient_id")
	doctorID = q.Get("doctor_id")
	date = q.Get("date")
	ok = patientID != "" && doctorID != "" && date != ""
	return
}

func (h *VisitHandler) GetAllVisits(w http.ResponseWriter, r *http.Request) {
	visits := h.visitUsecase.GetAll(r.Context())
	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	patientID, doctorID, date, ok := visitKeyParams(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "patient_id, doctor_id and date are required", nil)
		return
	}

	visit, err := h.visitUsecase.Get(r.Context(), patientID, doctorID, date)
	if err != nil {
		if err == usecase.ErrInvalidVisitDate {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.NotFound(w, "Visit not found")
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

func (h *VisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.VisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.visitUsecase.Create(r.Context(), &req), http.StatusCreated)
}

func (h *VisitHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	patientID, doctorID, date, ok := visitKeyParams(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "patient_id, doctor_id and date are required", nil)
		return
	}

	var req dto.VisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	// The key is taken from the query triple; body key fields are ignored.
	req.PatientID = patientID
	req.DoctorID = doctorID
	req.DateOfVisit = date

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.visitUsecase.Update(r.Context(), &req), http.StatusOK)
}

func (h *VisitHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	patientID, doctorID, date, ok := visitKeyParams(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "patient_id, doctor_id and date are required", nil)
		return
	}

	response.Outcome(w, h.visitUsecase.Delete(r.Context(), patientID, doctorID, date), http.StatusOK)
}
