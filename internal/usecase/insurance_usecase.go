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

var ErrInsuranceNotFound = errors.New("insurance not found")

type InsuranceUsecase interface {
	GetAll(ctx context.Context) *dto.InsuranceListResponse
	Get(ctx context.Context, id string) (*dto.InsuranceResponse, error)
	GetByCompany(ctx context.Context, company string) (*dto.InsuranceResponse, error)
	Create(ctx context.Context, req *dto.InsuranceRequest) outcome.Outcome
	Update(ctx context.Context, req *dto.InsuranceRequest) outcome.Outcome
	Delete(ctx context.Context, id string) outcome.Outcome
}

type insuranceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	insuranceRepo repository.InsuranceRepository
	patientRepo   repository.PatientRepository
}

func NewInsuranceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	insuranceRepo repository.InsuranceRepository,
	patientRepo repository.PatientRepository,
) InsuranceUsecase {
	return &insuranceUsecase{
		db:            db,
		log:           log,
		insuranceRepo: insuranceRepo,
		patientRepo:   patientRepo,
	}
}

func (u *insuranceUsecase) GetAll(ctx context.Context) *dto.InsuranceListResponse {
	insurances, err := u.insuranceRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list insurances: %+v", err)
	}

	responses := make([]dto.InsuranceResponse, len(insurances))
	for i := range insurances {
		responses[i] = *converter.InsuranceToResponse(&insurances[i])
	}

	return &dto.InsuranceListResponse{
		Insurances: responses,
		Total:      len(responses),
	}
}

func (u *insuranceUsecase) Get(ctx context.Context, id string) (*dto.InsuranceResponse, error) {
	insurance, err := u.insuranceRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance: %+v", err)
		return nil, ErrInsuranceNotFound
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}
	return converter.InsuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) GetByCompany(ctx context.Context, company string) (*dto.InsuranceResponse, error) {
	insurance, err := u.insuranceRepo.FindByCompany(ctx, u.db, company)
	if err != nil {
		u.log.Warnf("Failed to find insurance by company: %+v", err)
		return nil, ErrInsuranceNotFound
	}
	if insurance == nil {
		return nil, ErrInsuranceNotFound
	}
	return converter.InsuranceToResponse(insurance), nil
}

func (u *insuranceUsecase) Create(ctx context.Context, req *dto.InsuranceRequest) outcome.Outcome {
	existing, err := u.insuranceRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check insurance ID", err)
	}
	if existing != nil {
		return outcome.Rejected(outcome.ReasonDuplicateKey, "Error: Insurance with this ID already exists.")
	}

	insurance := &entity.Insurance{
		ID:      req.ID,
		Company: req.Company,
		Address: req.Address,
		Phone:   req.Phone,
	}

	rows, err := u.insuranceRepo.Create(ctx, u.db, insurance)
	if err != nil {
		return storageFailure(u.log, "Failed to create insurance", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: Insurance could not be added.")
	}

	return outcome.Success("Insurance added successfully!")
}

func (u *insuranceUsecase) Update(ctx context.Context, req *dto.InsuranceRequest) outcome.Outcome {
	existing, err := u.insuranceRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check insurance ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Insurance with this ID does not exist.")
	}

	insurance := &entity.Insurance{
		ID:      req.ID,
		Company: req.Company,
		Address: req.Address,
		Phone:   req.Phone,
	}

	rows, err := u.insuranceRepo.Update(ctx, u.db, insurance)
	if err != nil {
		return storageFailure(u.log, "Failed to update insurance", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No insurance was updated.")
	}

	return outcome.Success("Insurance updated successfully!")
}

func (u *insuranceUsecase) Delete(ctx context.Context, id string) outcome.Outcome {
	existing, err := u.insuranceRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to check insurance ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Insurance with this ID does not exist.")
	}

	patients, err := u.patientRepo.CountByInsuranceID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to count insured patients", err)
	}
	if patients > 0 {
		return outcome.Rejected(outcome.ReasonReferenced, "Error: Insurance is referenced by existing patients and cannot be deleted.")
	}

	rows, err := u.insuranceRepo.Delete(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to delete insurance", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No insurance was deleted.")
	}

	return outcome.Success("Insurance deleted successfully!")
}
