package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/I2oman/HospitalAssessment/internal/converter"
	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	"github.com/I2oman/HospitalAssessment/internal/domain/repository"
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	GetAll(ctx context.Context) *dto.PrescriptionListResponse
	Get(ctx context.Context, id string) (*dto.PrescriptionResponse, error)
	Create(ctx context.Context, req *dto.PrescriptionRequest) outcome.Outcome
	Update(ctx context.Context, req *dto.PrescriptionRequest) outcome.Outcome
	Delete(ctx context.Context, id string) outcome.Outcome
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	drugRepo         repository.DrugRepository
	doctorRepo       repository.DoctorRepository
	patientRepo      repository.PatientRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	drugRepo repository.DrugRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		drugRepo:         drugRepo,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
	}
}

// materialize resolves the drug, doctor and patient rows referenced by a
// prescription. Dangling references surface as absent fields on the response.
func (u *prescriptionUsecase) materialize(ctx context.Context, prescription *entity.Prescription) *dto.PrescriptionResponse {
	drug, err := u.drugRepo.FindByID(ctx, u.db, prescription.DrugID)
	if err != nil {
		u.log.Warnf("Failed to resolve drug %q: %+v", prescription.DrugID, err)
	}
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, prescription.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor %q: %+v", prescription.DoctorID, err)
	}
	patient, err := u.patientRepo.FindByID(ctx, u.db, prescription.PatientID)
	if err != nil {
		u.log.Warnf("Failed to resolve patient %q: %+v", prescription.PatientID, err)
	}

	return converter.PrescriptionToResponse(prescription, drug, doctor, patient)
}

func (u *prescriptionUsecase) GetAll(ctx context.Context) *dto.PrescriptionListResponse {
	prescriptions, err := u.prescriptionRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
	}

	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *u.materialize(ctx, &prescriptions[i])
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: responses,
		Total:         len(responses),
	}
}

func (u *prescriptionUsecase) Get(ctx context.Context, id string) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, ErrPrescriptionNotFound
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return u.materialize(ctx, prescription), nil
}

// coerce parses the string-typed form fields. Parse failures are recoverable
// validation rejections and never reach storage.
func coercePrescription(req *dto.PrescriptionRequest) (*entity.Prescription, *outcome.Outcome) {
	dosage, err := strconv.Atoi(strings.TrimSpace(req.Dosage))
	if err != nil {
		o := outcome.Rejected(outcome.ReasonInvalidField, "Error: Dosage and Duration must be valid numbers.")
		return nil, &o
	}
	duration, err := strconv.Atoi(strings.TrimSpace(req.Duration))
	if err != nil {
		o := outcome.Rejected(outcome.ReasonInvalidField, "Error: Dosage and Duration must be valid numbers.")
		return nil, &o
	}
	datePrescribed, err := time.Parse(dateLayout, req.DatePrescribed)
	if err != nil {
		o := outcome.Rejected(outcome.ReasonInvalidField, "Error: Invalid date format. Please use YYYY-MM-DD.")
		return nil, &o
	}

	prescription := &entity.Prescription{
		ID:             req.ID,
		DatePrescribed: datePrescribed,
		Dosage:         dosage,
		Duration:       duration,
		DrugID:         req.DrugID,
		DoctorID:       req.DoctorID,
		PatientID:      req.PatientID,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		prescription.Comment = &comment
	}
	return prescription, nil
}

// resolveReferences verifies the drug, doctor and patient all exist before a
// write is attempted.
func (u *prescriptionUsecase) resolveReferences(ctx context.Context, prescription *entity.Prescription) *outcome.Outcome {
	drug, err := u.drugRepo.FindByID(ctx, u.db, prescription.DrugID)
	if err != nil {
		o := storageFailure(u.log, "Failed to resolve drug", err)
		return &o
	}
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, prescription.DoctorID)
	if err != nil {
		o := storageFailure(u.log, "Failed to resolve doctor", err)
		return &o
	}
	patient, err := u.patientRepo.FindByID(ctx, u.db, prescription.PatientID)
	if err != nil {
		o := storageFailure(u.log, "Failed to resolve patient", err)
		return &o
	}

	if drug == nil || doctor == nil || patient == nil {
		o := outcome.Blocked(outcome.ReasonUnresolvedReference, "Error: Invalid drug, doctor, or patient selection.")
		return &o
	}
	return nil
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.PrescriptionRequest) outcome.Outcome {
	prescription, rejection := coercePrescription(req)
	if rejection != nil {
		return *rejection
	}

	existing, err := u.prescriptionRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check prescription ID", err)
	}
	if existing != nil {
		return outcome.Rejected(outcome.ReasonDuplicateKey, "Error: A prescription with this ID already exists.")
	}

	if rejection := u.resolveReferences(ctx, prescription); rejection != nil {
		return *rejection
	}

	rows, err := u.prescriptionRepo.Create(ctx, u.db, prescription)
	if err != nil {
		return storageFailure(u.log, "Failed to create prescription", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: Prescription could not be added.")
	}

	return outcome.Success("Prescription added successfully!")
}

func (u *prescriptionUsecase) Update(ctx context.Context, req *dto.PrescriptionRequest) outcome.Outcome {
	prescription, rejection := coercePrescription(req)
	if rejection != nil {
		return *rejection
	}

	existing, err := u.prescriptionRepo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		return storageFailure(u.log, "Failed to check prescription ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Prescription with this ID does not exist.")
	}

	if rejection := u.resolveReferences(ctx, prescription); rejection != nil {
		return *rejection
	}

	rows, err := u.prescriptionRepo.Update(ctx, u.db, prescription)
	if err != nil {
		return storageFailure(u.log, "Failed to update prescription", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No prescription was updated.")
	}

	return outcome.Success("Prescription updated successfully!")
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id string) outcome.Outcome {
	existing, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to check prescription ID", err)
	}
	if existing == nil {
		return outcome.Rejected(outcome.ReasonNotFound, "Error: Prescription with this ID does not exist.")
	}

	rows, err := u.prescriptionRepo.Delete(ctx, u.db, id)
	if err != nil {
		return storageFailure(u.log, "Failed to delete prescription", err)
	}
	if rows == 0 {
		return outcome.Rejected(outcome.ReasonPersistenceFailure, "Error: No prescription was deleted.")
	}

	return outcome.Success("Prescription deleted successfully!")
}
