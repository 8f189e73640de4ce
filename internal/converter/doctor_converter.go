package converter

import (
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its response DTO.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		Surname:        doctor.Surname,
		FullName:       doctor.FullName(),
		Address:        doctor.Address,
		Email:          doctor.Email,
		Specialization: doctor.Specialization,
		Hospital:       doctor.Hospital,
	}
}

// DoctorToRef produces the (key, label) pairing used for foreign references.
func DoctorToRef(doctor *entity.Doctor) *dto.Ref {
	if doctor == nil {
		return nil
	}
	return &dto.Ref{ID: doctor.ID, Label: doctor.FullName()}
}
