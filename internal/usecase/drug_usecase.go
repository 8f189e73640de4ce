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

var ErrDrugNotFound = errors.New("drug not found")

type DrugUsecase interface {
	GetAll(ctx context.Context) *dto.DrugListResponse
	Get(ctx context.Context, id string) (*dto.DrugResponse, error)
	GetByName(ctx context.Context, name string) (*dto.DrugResponse, error)
	Create(ctx context.Context, req *dto.DrugRequest) outcome.Outcome
	Update(ctx context.Context, req *dto.DrugRequest) outcome.Outcome
	Delete(ctx context.Context, id string) outcome.Outcome
}

type drugUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	drugRepo         repository.DrugRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewDrugUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	drugRepo repository.DrugRepository,
	prescriptionRepo repository.PrescriptionRepository,
) DrugUsecase {
	return &drugUsecase{
		db:               db,
		log:              log,
		drugRepo:         drugRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func (u *drugUsecase) GetAll(ctx context.Context) *dto.DrugListResponse {
	drugs, err := u.drugRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list drugs: %+v", err)
	}

	responses := make([]dto.DrugResponse, len(drugs))
	for i := range drugs {
		responses[i] = *converter.DrugToResponse(&drugs[i])
	}

	return &dto.DrugListResponse{
		Drugs: responses,
		Total: len(responses),
	}
}

func (u *drugUsecase) Get(ctx context.Context, id string) (*dto.DrugResponse, error) {
	drug, err := u.drugRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find drug: %+v", err)
		return nil, ErrDrugNotFound
	}
	if drug == nil {
		return nil, ErrDrugNotFound
	}
	return converter.DrugToResponse(drug), nil
}

func (u *drugUsecase) GetByName(ctx context.Context, name string) (*dto.DrugResponse, error) {
	drug, err := u.drugRepo.FindByName(ctx, u.db, name)
	if err != nil {
		u.log.Warnf("Failed to find drug by name: %+v", err)
		return nil, ErrDrugNotFound
	}
	if drug == nil {
		return nil, ErrDrugNotFound
	}
	return converter.DrugToResponse(drug), nil
}

func (u *drugUsecase) Create(ctx context.Context, req *dto.DrugRequest) outcome.Outcome {
	existing, err := u.drugRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check drug ID", err)
	}
	if existing != nil {
		return outcome.Rejected(outcome.ReasonDuplicateKey, "Error: Drug with this ID already exists.")
	}

	drug := &entity.Drug{
		ID:          req.ID,
		DrugName:    req.DrugName,
		SideEffects: req.SideEffects,
		Benefits:    req.Benefits,
	}

	rows, err := u.drugRepo.Create(ctx, u.db, drug)
	if err != nil {
		return storageFailure(u.log, "Failed to create drug", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: Drug could not be added.")
	}

	return outcome.Success("Drug added successfully!")
}

func (u *drugUsecase) Update(ctx context.Context, req *dto.DrugRequest) outcome.Outcome {
	existing, err := u.drugRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check drug ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Drug with this ID does not exist.")
	}

	drug := &entity.Drug{
		ID:          req.ID,
		DrugName:    req.DrugName,
		SideEffects: req.SideEffects,
		Benefits:    req.Benefits,
	}

	rows, err := u.drugRepo.Update(ctx, u.db, drug)
	if err != nil {
		return storageFailure(u.log, "Failed to update drug", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No drug was updated.")
	}

	return outcome.Success("Drug updated successfully!")
}

func (u *drugUsecase) Delete(ctx context.Context, id string) outcome.Outcome {
	existing, err := u.drugRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to check drug ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Drug with this ID does not exist.")
	}

	prescriptions, err := u.prescriptionRepo.CountByDrugID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to count drug prescriptions", err)
	}
	if prescriptions > 0 {
		return outcome.Rejected(outcome.ReasonReferenced, "Error: Drug is referenced by existing prescriptions and cannot be deleted.")
	}

	rows, err := u.drugRepo.Delete(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to delete drug", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No drug was deleted.")
	}

	return outcome.Success("Drug deleted successfully!")
}
