package repository

import (
	"context"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"gorm.io/gorm"
)

// DoctorRepository owns persistence for the doctor table. Finders return
// (nil, nil) when no row matches; mutations report rows affected so callers
// can detect silent no-ops.
type DoctorRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Doctor, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Doctor, error)
	FindByFullName(ctx context.Context, db *gorm.DB, fullName string) (*entity.Doctor, error)
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) (int64, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
}
