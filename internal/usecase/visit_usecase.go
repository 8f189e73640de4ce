package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/I2oman/HospitalAssessment/internal/converter"
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	"github.com/I2oman/HospitalAssessment/internal/domain/repository"
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVisitNotFound      = errors.New("visit not found")
	ErrInvalidVisitDate   = errors.New("invalid visit date format, use YYYY-MM-DD")
	ErrMainDoctorNotFound = errors.New("no visits recorded for this patient")
)

type VisitUsecase interface {
	GetAll(ctx context.Context) *dto.VisitListResponse
	Get(ctx context.Context, patientID, doctorID, date string) (*dto.VisitResponse, error)
	GetMainDoctor(ctx context.Context, patientID string) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.VisitRequest) outcome.Outcome
	Update(ctx context.Context, req *dto.VisitRequest) outcome.Outcome
	Delete(ctx context.Context, patientID, doctorID, date string) outcome.Outcome
}

type visitUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	visitRepo   repository.VisitRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) VisitUsecase {
	return &visitUsecase{
		db:          db,
		log:         log,
		visitRepo:   visitRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (u *visitUsecase) materialize(ctx context.Context, visit *entity.Visit) *dto.VisitResponse {
	patient, err := u.patientRepo.FindByID(ctx, u.db, visit.PatientID)
	if err != nil {
		u.log.Warnf("Failed to resolve patient %q: %+v", visit.PatientID, err)
	}
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, visit.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %q: %+v", visit.DoctorID, err)
	}

	return converter.VisitToResponse(visit, patient, doctor)
}

func (u *visitUsecase) GetAll(ctx context.Context) *dto.VisitListResponse {
	visits, err := u.visitRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list visits: %+v", err)
	}

	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *u.materialize(ctx, &visits[i])
	}

	return &dto.VisitListResponse{
		Visits: responses,
		Total:  len(responses),
	}
}

func (u *visitUsecase) Get(ctx context.Context, patientID, doctorID, date string) (*dto.VisitResponse, error) {
	dateOfVisit, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidVisitDate
	}

	visit, err := u.visitRepo.FindByKey(ctx, u.db, entity.VisitKey{
		PatientID:   patientID,
		DoctorID:    doctorID,
		DateOfVisit: dateOfVisit,
	})
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, ErrVisitNotFound
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	return u.materialize(ctx, visit), nil
}

// GetMainDoctor returns the doctor the patient has visited most often.
func (u *visitUsecase) GetMainDoctor(ctx context.Context, patientID string) (*dto.DoctorResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, ErrPatientNotFound
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctorID, err := u.visitRepo.MainDoctorID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find main doctor: %+v", err)
		return nil, ErrMainDoctorNotFound
	}
	if doctorID == "" {
		return nil, ErrMainDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to resolve main doctor %q: %+v", doctorID, err)
		return nil, ErrMainDoctorNotFound
	}
	if doctor == nil {
		return nil, ErrMainDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// coerceVisitKey parses the date component of the composite key.
func coerceVisitKey(patientID, doctorID, date string) (entity.VisitKey, *outcome.Outcome) {
	dateOfVisit, err := time.Parse(dateLayout, date)
	if err != nil {
		o := outcome.Rejected(outcome.ReasonInvalidField, "Error: Invalid date format. Please use YYYY-MM-DD.")
		return entity.VisitKey{}, &o
	}
	return entity.VisitKey{PatientID: patientID, DoctorID: doctorID, DateOfVisit: dateOfVisit}, nil
}

// resolveReferences verifies the patient and doctor both exist.
func (u *visitUsecase) resolveReferences(ctx context.Context, key entity.VisitKey) *outcome.Outcome {
	patient, err := u.patientRepo.FindByID(ctx, u.db, key.PatientID)
	if err != nil {
		o := storageFailure(u.log, "Failed to resolve patient", err)
		return &o
	}
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, key.DoctorID)
	if err != nil {
		o := storageFailure(u.log, "Failed to resolve doctor", err)
		return &o
	}

	if patient == nil || doctor == nil {
		o := outcome.Blocked(outcome.ReasonUnresolvedReference, "Error: Invalid doctor or patient selection.")
		return &o
	}
	return nil
}

func (u *visitUsecase) Create(ctx context.Context, req *dto.VisitRequest) outcome.Outcome {
	key, rejection := coerceVisitKey(req.PatientID, req.DoctorID, req.DateOfVisit)
	if rejection != nil {
		return *rejection
	}

	if rejection := u.resolveReferences(ctx, key); rejection != nil {
		return *rejection
	}

	existing, err := u.visitRepo.FindByKey(ctx, u.db, key)
	if err != nil {
		return storageFailure(u.log, "Failed to check visit key", err)
	}
	if existing != nil {
		return outcome.Rejected(outcome.ReasonDuplicateKey, "Error: A visit with this patient, doctor, and date already exists.")
	}

	visit := &entity.Visit{
		PatientID:   key.PatientID,
		DoctorID:    key.DoctorID,
		DateOfVisit: key.DateOfVisit,
		Symptoms:    req.Symptoms,
		Diagnosis:   req.Diagnosis,
	}

	rows, err := u.visitRepo.Create(ctx, u.db, visit)
	if err != nil {
		return storageFailure(u.log, "Failed to create visit", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: Visit could not be added.")
	}

	return outcome.Success("Visit added successfully!")
}

func (u *visitUsecase) Update(ctx context.Context, req *dto.VisitRequest) outcome.Outcome {
	key, rejection := coerceVisitKey(req.PatientID, req.DoctorID, req.DateOfVisit)
	if rejection != nil {
		return *rejection
	}

	existing, err := u.visitRepo.FindByKey(ctx, u.db, key)
	if err != nil {
		return storageFailure(u.log, "Failed to check visit key", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Visit with this patient, doctor, and date does not exist.")
	}

	// Key fields are immutable; only symptoms and diagnosis change.
	visit := &entity.Visit{
		PatientID:   key.PatientID,
		DoctorID:    key.DoctorID,
		DateOfVisit: key.DateOfVisit,
		Symptoms:    req.Symptoms,
		Diagnosis:   req.Diagnosis,
	}

	rows, err := u.visitRepo.Update(ctx, u.db, visit)
	if err != nil {
		return storageFailure(u.log, "Failed to update visit", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No visit was updated.")
	}

	return outcome.Success("Visit updated successfully!")
}

func (u *visitUsecase) Delete(ctx context.Context, patientID, doctorID, date string) outcome.Outcome {
	key, rejection := coerceVisitKey(patientID, doctorID, date)
	if rejection != nil {
		return *rejection
	}

	existing, err := u.visitRepo.FindByKey(ctx, u.db, key)
	if err != nil {
		return storageFailure(u.log, "Failed to check visit key", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Visit with this patient, doctor, and date does not exist.")
	}

	rows, err := u.visitRepo.Delete(ctx, u.db, key)
	if err != nil {
		return storageFailure(u.log, "Failed to delete visit", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No visit was deleted.")
	}

	return outcome.Success("Visit deleted successfully!")
}
