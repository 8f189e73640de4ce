package repository

import (
	"context"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Patient, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error)
	FindByFullName(ctx context.Context, db *gorm.DB, fullName string) (*entity.Patient, error)
	// CountByInsuranceID backs the referential guard on insurance deletion.
	CountByInsuranceID(ctx context.Context, db *gorm.DB, insuranceID string) (int64, error)
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
}
