package converter

import (
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
)

// PatientToResponse converts a Patient entity plus its materialized insurance
// row (nil when the stored id resolves to nothing) to a response DTO. An
// unresolved insurance renders as the NHS default.
func PatientToResponse(patient *entity.Patient, insurance *entity.Insurance) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:               patient.ID,
		FirstName:        patient.FirstName,
		Surname:          patient.Surname,
		FullName:         patient.FullName(),
		Postcode:         patient.Postcode,
		Address:          patient.Address,
		Phone:            patient.Phone,
		Email:            patient.Email,
		InsuranceCompany: entity.DefaultInsuranceID,
	}

	if insurance != nil {
		response.Insurance = &dto.Ref{ID: insurance.ID, Label: insurance.Company}
		response.InsuranceCompany = insurance.Company
	}

	return response
}

func PatientToRef(patient *entity.Patient) *dto.Ref {
	if patient == nil {
		return nil
	}
	return &dto.Ref{ID: patient.ID, Label: patient.FullName()}
}
