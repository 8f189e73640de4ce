package repository

import (
	"context"
	"errors"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	domainRepo "github.com/I2oman/HospitalAssessment/internal/domain/repository"

	"gorm.io/gorm"
)

type insuranceRepository struct{}

func NewInsuranceRepository() domainRepo.InsuranceRepository {
	return &insuranceRepository{}
}

func (r *insuranceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Insurance, error) {
	var insurances []entity.Insurance
	err := db.WithContext(ctx).Find(&insurances).Error
	if err != nil {
		return nil, err
	}
	return insurances, nil
}

func (r *insuranceRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Insurance, error) {
	var insurance entity.Insurance
	err := db.WithContext(ctx).Where("insuranceid = ?", id).First(&insurance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insurance, nil
}

func (r *insuranceRepository) FindByCompany(ctx context.Context, db *gorm.DB, company string) (*entity.Insurance, error) {
	var insurance entity.Insurance
	err := db.WithContext(ctx).Where("company = ?", company).First(&insurance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insurance, nil
}

func (r *insuranceRepository) Create(ctx context.Context, db *gorm.DB, insurance *entity.Insurance) (int64, error) {
	result := db.WithContext(ctx).Create(insurance)
	return result.RowsAffected, result.Error
}

func (r *insuranceRepository) Update(ctx context.Context, db *gorm.DB, insurance *entity.Insurance) (int64, error) {
	result := db.WithContext(ctx).Save(insurance)
	return result.RowsAffected, result.Error
}

func (r *insuranceRepository) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("insuranceid = ?", id).Delete(&entity.Insurance{})
	return result.RowsAffected, result.Error
}
