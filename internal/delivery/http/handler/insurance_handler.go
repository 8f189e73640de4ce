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

type InsuranceHandler struct {
	insuranceUsecase usecase.InsuranceUsecase
	validator        *validator.CustomValidator
}

func NewInsuranceHandler(insuranceUsecase usecase.InsuranceUsecase, validator *validator.CustomValidator) *InsuranceHandler {
	return &InsuranceHandler{
		insuranceUsecase: insuranceUsecase,
		validator:        validator,
	}
}

func (h *InsuranceHandler) GetAllInsurances(w http.ResponseWriter, r *http.Request) {
	if company := r.URL.Query().Get("company"); company != "" {
		insurance, err := h.insuranceUsecase.GetByCompany(r.Context(), company)
		if err != nil {
			response.NotFound(w, "Insurance not found")
			return
		}
		response.Success(w, http.StatusOK, "Insurance retrieved successfully", insurance)
		return
	}

	insurances := h.insuranceUsecase.GetAll(r.Context())
	response.Success(w, http.StatusOK, "Insurances retrieved successfully", insurances)
}

func (h *InsuranceHandler) GetInsurance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	insurance, err := h.insuranceUsecase.Get(r.Context(), vars["id"])
	if err != nil {
		response.NotFound(w, "Insurance not found")
		return
	}

	response.Success(w, http.StatusOK, "Insurance retrieved successfully", insurance)
}

func (h *InsuranceHandler) CreateInsurance(w http.ResponseWriter, r *http.Request) {
	var req dto.InsuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.insuranceUsecase.Create(r.Context(), &req), http.StatusCreated)
}

func (h *InsuranceHandler) UpdateInsurance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.InsuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.ID = vars["id"]

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.insuranceUsecase.Update(r.Context(), &req), http.StatusOK)
}

func (h *InsuranceHandler) DeleteInsurance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	response.Outcome(w, h.insuranceUsecase.Delete(r.Context(), vars["id"]), http.StatusOK)
}
