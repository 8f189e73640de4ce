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

type DrugHandler struct {
	drugUsecase usecase.DrugUsecase
	validator   *validator.CustomValidator
}

func NewDrugHandler(drugUsecase usecase.DrugUsecase, validator *validator.CustomValidator) *DrugHandler {
	return &DrugHandler{
		drugUsecase: drugUsecase,
		validator:   validator,
	}
}

func (h *DrugHandler) GetAllDrugs(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		drug, err := h.drugUsecase.GetByName(r.Context(), name)
		if err != nil {
			response.NotFound(w, "Drug not found")
			return
		}
		response.Success(w, http.StatusOK, "Drug retrieved successfully", drug)
		return
	}

	drugs := h.drugUsecase.GetAll(r.Context())
	response.Success(w, http.StatusOK, "Drugs retrieved successfully", drugs)
}

func (h *DrugHandler) GetDrug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	drug, err := h.drugUsecase.Get(r.Context(), vars["id"])
	if err != nil {
		response.NotFound(w, "Drug not found")
		return
	}

	response.Success(w, http.StatusOK, "Drug retrieved successfully", drug)
}

func (h *DrugHandler) CreateDrug(w http.ResponseWriter, r *http.Request) {
	var req dto.DrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.drugUsecase.Create(r.Context(), &req), http.StatusCreated)
}

func (h *DrugHandler) UpdateDrug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.DrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.ID = vars["id"]

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Outcome(w, h.drugUsecase.Update(r.Context(), &req), http.StatusOK)
}

func (h *DrugHandler) DeleteDrug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	response.Outcome(w, h.drugUsecase.Delete(r.Context(), vars["id"]), http.StatusOK)
}
