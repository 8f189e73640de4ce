package converter

import (
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
)

func VisitToResponse(visit *entity.Visit, patient *entity.Patient, doctor *entity.Doctor) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		Patient:     PatientToRef(patient),
		Doctor:      DoctorToRef(doctor),
		DateOfVisit: visit.DateOfVisit.Format("2006-01-02"),
		Symptoms:    visit.Symptoms,
		Diagnosis:   visit.Diagnosis,
	}
}
