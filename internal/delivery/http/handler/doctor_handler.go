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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetAllDoctors lists doctors, or performs a natural-key lookup when an
// email or name query parameter is present.
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		doctor, err := h.doctorUsecase.GetByEmail(r.Context(), email)
		if err != nil {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
		return
	}
	if name := r.URL.Query().Get("name"); name != "" {
		doctor, err := h.doctorUsecase.GetByFullName(r.Context(), name)
		if err != nil {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
		return
	}

	doctors := h.doctorUsecase.GetAll(r.Context())
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.doctorUsecase.Get(r.Context(), vars["id"])
	if err != nil {
		response.NotFound(w, "Doctor not found")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.doctorUsecase.Create(r.Context(), &req), http.StatusCreated)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.DoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.ID = vars["id"]

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.doctorUsecase.Update(r.Context(), &req), http.StatusOK)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	response.Outcome(w, h.doctorUsecase.Delete(r.Context(), vars["id"]), http.StatusOK)
}
