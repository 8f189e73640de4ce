package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/I2oman/HospitalAssessment/internal/converter"
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	"github.com/I2oman/HospitalAssessment/internal/domain/repository"
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	GetAll(ctx context.Context) *dto.DoctorListResponse
	Get(ctx context.Context, id string) (*dto.DoctorResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.DoctorResponse, error)
	GetByFullName(ctx context.Context, fullName string) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.DoctorRequest) outcome.Outcome
	Update(ctx context.Context, req *dto.DoctorRequest) outcome.Outcome
	Delete(ctx context.Context, id string) outcome.Outcome
}

type doctorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	prescriptionRepo repository.PrescriptionRepository
	visitRepo        repository.VisitRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	prescriptionRepo repository.PrescriptionRepository,
	visitRepo repository.VisitRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		prescriptionRepo: prescriptionRepo,
		visitRepo:        visitRepo,
	}
}

// GetAll degrades to an empty list on storage faults; the cause is logged.
func (u *doctorUsecase) GetAll(ctx context.Context) *dto.DoctorListResponse {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
	}

	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *converter.DoctorToResponse(&doctors[i])
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}

func (u *doctorUsecase) Get(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, ErrDoctorNotFound
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetByEmail(ctx context.Context, email string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, ErrDoctorNotFound
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetByFullName(ctx context.Context, fullName string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByFullName(ctx, u.db, fullName)
	if err != nil {
		u.log.Warnf("Failed to find doctor by full name: %+v", err)
		return nil, ErrDoctorNotFound
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest) outcome.Outcome {
	existing, err := u.doctorRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check doctor ID", err)
	}
	if existing != nil {
		return outcome.Rejected(outcome.ReasonDuplicateKey, "Error: Doctor with this ID already exists.")
	}

	byEmail, err := u.doctorRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		return storageFailure(u.log, "Failed to check doctor email", err)
	}
	if byEmail != nil {
		return outcome.Rejected(outcome.ReasonDuplicateNaturalKey, "Error: A doctor with this email already exists.")
	}

	doctor := doctorFromRequest(req)

	rows, err := u.doctorRepo.Create(ctx, u.db, doctor)
	if err != nil {
		return storageFailure(u.log, "Failed to create doctor", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: Doctor could not be added.")
	}

	return outcome.Success("Doctor added successfully!")
}

func (u *doctorUsecase) Update(ctx context.Context, req *dto.DoctorRequest) outcome.Outcome {
	existing, err := u.doctorRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check doctor ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Doctor with this ID does not exist.")
	}

	byEmail, err := u.doctorRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		return storageFailure(u.log, "Failed to check doctor email", err)
	}
	if byEmail != nil && byEmail.ID != req.ID {
		return outcome.Rejected(outcome.ReasonDuplicateNaturalKey, "Error: A doctor with this email already exists.")
	}

	doctor := doctorFromRequest(req)

	rows, err := u.doctorRepo.Update(ctx, u.db, doctor)
	if err != nil {
		return storageFailure(u.log, "Failed to update doctor", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No doctor was updated.")
	}

	return outcome.Success("Doctor updated successfully!")
}

func (u *doctorUsecase) Delete(ctx context.Context, id string) outcome.Outcome {
	existing, err := u.doctorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to check doctor ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Doctor with this ID does not exist.")
	}

	// RESTRICT: a doctor referenced by prescriptions or visits cannot go.
	prescriptions, err := u.prescriptionRepo.CountByDoctorID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to count doctor prescriptions", err)
	}
	visits, err := u.visitRepo.CountByDoctorID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to count doctor visits", err)
	}
	if prescriptions > 0 || visits > 0 {
		return outcome.Rejected(outcome.ReasonReferenced, "Error: Doctor is referenced by existing prescriptions or visits and cannot be deleted.")
	}

	rows, err := u.doctorRepo.Delete(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to delete doctor", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No doctor was deleted.")
	}

	return outcome.Success("Doctor deleted successfully!")
}

func doctorFromRequest(req *dto.DoctorRequest) *entity.Doctor {
	doctor := &entity.Doctor{
		ID:             req.ID,
		FirstName:      req.FirstName,
		Surname:        req.Surname,
		Address:        req.Address,
		Email:          req.Email,
		Specialization: req.Specialization,
	}
	if hospital := strings.TrimSpace(req.Hospital); hospital != "" {
		doctor.Hospital = &hospital
	}
	return doctor
}
