package repository

import (
	"context"
	"errors"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	domainRepo "github.com/I2oman/HospitalAssessment/internal/domain/repository"

	"gorm.io/gorm"
)

type drugRepository struct{}

func NewDrugRepository() domainRepo.DrugRepository {
	return &drugRepository{}
}

func (r *drugRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Drug, error) {
	var drugs []entity.Drug
	err := db.WithContext(ctx).Find(&drugs).Error
	if err != nil {
		return nil, err
	}
	return drugs, nil
}

func (r *drugRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Drug, error) {
	var drug entity.Drug
	err := db.WithContext(ctx).Where("drugid = ?", id).First(&drug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drug, nil
}

func (r *drugRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Drug, error) {
	var drug entity.Drug
	err := db.WithContext(ctx).Where("drugname = ?", name).First(&drug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drug, nil
}

func (r *drugRepository) Create(ctx context.Context, db *gorm.DB, drug *entity.Drug) (int64, error) {
	result := db.WithContext(ctx).Create(drug)
	return result.RowsAffected, result.Error
}

func (r *drugRepository) Update(ctx context.Context, db *gorm.DB, drug *entity.Drug) (int64, error) {
	result := db.WithContext(ctx).Save(drug)
	return result.RowsAffected, result.Error
}

func (r *drugRepository) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("drugid = ?", id).Delete(&entity.Drug{})
	return result.RowsAffected, result.Error
}
