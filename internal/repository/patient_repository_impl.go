package repository

import (
	"context"
	"errors"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	domainRepo "github.com/I2oman/HospitalAssessment/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("patientid = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByFullName(ctx context.Context, db *gorm.DB, fullName string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("CONCAT(firstname, ' ', surname) = ?", fullName).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) CountByInsuranceID(ctx context.Context, db *gorm.DB, insuranceID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("insuranceid = ?", insuranceID).Count(&count).Error
	return count, err
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	result := db.WithContext(ctx).Create(patient)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	result := db.WithContext(ctx).Save(patient)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("patientid = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
