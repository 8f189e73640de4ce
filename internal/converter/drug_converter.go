package converter

import (
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
)

func DrugToResponse(drug *entity.Drug) *dto.DrugResponse {
	if drug == nil {
		return nil
	}

	return &dto.DrugResponse{
		ID:          drug.ID,
		DrugName:    drug.DrugName,
		Display:     drug.Display(),
		SideEffects: drug.SideEffects,
		Benefits:    drug.Benefits,
	}
}

func DrugToRef(drug *entity.Drug) *dto.Ref {
	if drug == nil {
		return nil
	}
	return &dto.Ref{ID: drug.ID, Label: drug.Display()}
}
