package converter

import (
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity plus its materialized
// references to a response DTO. Dangling references stay nil rather than
// failing the whole row.
func PrescriptionToResponse(prescription *entity.Prescription, drug *entity.Drug, doctor *entity.Doctor, patient *entity.Patient) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:             prescription.ID,
		DatePrescribed: prescription.DatePrescribed.Format("2006-01-02"),
		Dosage:         prescription.Dosage,
		Duration:       prescription.Duration,
		Comment:        prescription.Comment,
		Drug:           DrugToRef(drug),
		Doctor:         DoctorToRef(doctor),
		Patient:        PatientToRef(patient),
	}
}
