package repository

import (
	"context"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"gorm.io/gorm"
)

type DrugRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Drug, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Drug, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Drug, error)
	Create(ctx context.Context, db *gorm.DB, drug *entity.Drug) (int64, error)
	Update(ctx context.Context, db *gorm.DB, drug *entity.Drug) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
}
