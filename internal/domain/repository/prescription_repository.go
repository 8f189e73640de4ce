package repository

import (
	"context"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Prescription, error)
	// Reference counts back the referential guards on doctor, patient and
	// drug deletion.
	CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (int64, error)
	CountByPatientID(ctx context.Context, db *gorm.DB, patientID string) (int64, error)
	CountByDrugID(ctx context.Context, db *gorm.DB, drugID string) (int64, error)
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) (int64, error)
	Update(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
}
