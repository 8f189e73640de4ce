package converter

import (
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
)

func InsuranceToResponse(insurance *entity.Insurance) *dto.InsuranceResponse {
	if insurance == nil {
		return nil
	}

	return &dto.InsuranceResponse{
		ID:      insurance.ID,
		Company: insurance.Company,
		Address: insurance.Address,
		Phone:   insurance.Phone,
	}
}
