package repository

import (
	"context"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"gorm.io/gorm"
)

type InsuranceRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Insurance, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Insurance, error)
	FindByCompany(ctx context.Context, db *gorm.DB, company string) (*entity.Insurance, error)
	Create(ctx context.Context, db *gorm.DB, insurance *entity.Insurance) (int64, error)
	Update(ctx context.Context, db *gorm.DB, insurance *entity.Insurance) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
}
