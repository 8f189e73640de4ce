package usecase

import (
	"context"
	"errors"

	"github.com/I2oman/HospitalAssessment/internal/converter"
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	"github.com/I2oman/HospitalAssessment/internal/domain/repository"
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	GetAll(ctx context.Context) *dto.PatientListResponse
	Get(ctx context.Context, id string) (*dto.PatientResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.PatientResponse, error)
	GetByFullName(ctx context.Context, fullName string) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.PatientRequest) outcome.Outcome
	Update(ctx context.Context, req *dto.PatientRequest) outcome.Outcome
	Delete(ctx context.Context, id string) outcome.Outcome
}

type patientUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	insuranceRepo    repository.InsuranceRepository
	prescriptionRepo repository.PrescriptionRepository
	visitRepo        repository.VisitRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	insuranceRepo repository.InsuranceRepository,
	prescriptionRepo repository.PrescriptionRepository,
	visitRepo repository.VisitRepository,
) PatientUsecase {
	return &patientUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		insuranceRepo:    insuranceRepo,
		prescriptionRepo: prescriptionRepo,
		visitRepo:        visitRepo,
	}
}

// materialize resolves the patient's insurance row. A dangling insurance id
// yields nil, rendered by consumers as the NHS default.
func (u *patientUsecase) materialize(ctx context.Context, patient *entity.Patient) *dto.PatientResponse {
	insurance, err := u.insuranceRepo.FindByID(ctx, u.db, patient.InsuranceID)
	if err != nil {
		u.log.Warnf("Failed to resolve insurance %q: %+v", patient.InsuranceID, err)
	}
	return converter.PatientToResponse(patient, insurance)
}

func (u *patientUsecase) GetAll(ctx context.Context) *dto.PatientListResponse {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
	}

	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *u.materialize(ctx, &patients[i])
	}

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}

func (u *patientUsecase) Get(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, ErrPatientNotFound
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return u.materialize(ctx, patient), nil
}

func (u *patientUsecase) GetByEmail(ctx context.Context, email string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, ErrPatientNotFound
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return u.materialize(ctx, patient), nil
}

func (u *patientUsecase) GetByFullName(ctx context.Context, fullName string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByFullName(ctx, u.db, fullName)
	if err != nil {
		u.log.Warnf("Failed to find patient by full name: %+v", err)
		return nil, ErrPatientNotFound
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return u.materialize(ctx, patient), nil
}

func (u *patientUsecase) resolveInsuranceID(ctx context.Context, requested string) (string, *outcome.Outcome) {
	if requested == "" || requested == entity.DefaultInsuranceID {
		return entity.DefaultInsuranceID, nil
	}

	insurance, err := u.insuranceRepo.FindByID(ctx, u.db, requested)
	if err != nil {
		o := storageFailure(u.log, "Failed to resolve insurance", err)
		return "", &o
	}
	if insurance == nil {
		o := outcome.Blocked(outcome.ReasonUnresolvedReference, "Error: Invalid insurance selection.")
		return "", &o
	}
	return insurance.ID, nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) outcome.Outcome {
	existing, err := u.patientRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check patient ID", err)
	}
	if existing != nil {
		return outcome.Rejected(outcome.ReasonDuplicateKey, "Error: A patient with this ID already exists.")
	}

	byEmail, err := u.patientRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		return storageFailure(u.log, "Failed to check patient email", err)
	}
	if byEmail != nil {
		return outcome.Rejected(outcome.ReasonDuplicateNaturalKey, "Error: A patient with this email already exists.")
	}

	insuranceID, rejection := u.resolveInsuranceID(ctx, req.InsuranceID)
	if rejection != nil {
		return *rejection
	}

	patient := patientFromRequest(req, insuranceID)

	rows, err := u.patientRepo.Create(ctx, u.db, patient)
	if err != nil {
		return storageFailure(u.log, "Failed to create patient", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: Patient could not be added.")
	}

	return outcome.Success("Patient added successfully!")
}

func (u *patientUsecase) Update(ctx context.Context, req *dto.PatientRequest) outcome.Outcome {
	existing, err := u.patientRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check patient ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Patient with this ID does not exist.")
	}

	byEmail, err := u.patientRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		return storageFailure(u.log, "Failed to check patient email", err)
	}
	if byEmail != nil && byEmail.ID != req.ID {
		return outcome.Rejected(outcome.ReasonDuplicateNaturalKey, "Error: A patient with this email already exists.")
	}

	insuranceID, rejection := u.resolveInsuranceID(ctx, req.InsuranceID)
	if rejection != nil {
		return *rejection
	}

	patient := patientFromRequest(req, insuranceID)

	rows, err := u.patientRepo.Update(ctx, u.db, patient)
	if err != nil {
		return storageFailure(u.log, "Failed to update patient", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No patient was updated.")
	}

	return outcome.Success("Patient updated successfully!")
}

func (u *patientUsecase) Delete(ctx context.Context, id string) outcome.Outcome {
	existing, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to check patient ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Patient with this ID does not exist.")
	}

	prescriptions, err := u.prescriptionRepo.CountByPatientID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to count patient prescriptions", err)
	}
	visits, err := u.visitRepo.CountByPatientID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to count patient visits", err)
	}
	if prescriptions > 0 || visits > 0 {
		return outcome.Rejected(outcome.ReasonReferenced, "Error: Patient is referenced by existing prescriptions or visits and cannot be deleted.")
	}

	rows, err := u.patientRepo.Delete(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to delete patient", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No patient was deleted.")
	}

	return outcome.Success("Patient deleted successfully!")
}

func patientFromRequest(req *dto.PatientRequest, insuranceID string) *entity.Patient {
	return &entity.Patient{
		ID:          req.ID,
		FirstName:   req.FirstName,
		Surname:     req.Surname,
		Postcode:    req.Postcode,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		InsuranceID: insuranceID,
	}
}
