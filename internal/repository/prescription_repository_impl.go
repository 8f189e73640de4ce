package repository

import (
	"context"
	"errors"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	domainRepo "github.com/I2oman/HospitalAssessment/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.WithContext(ctx).Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.WithContext(ctx).Where("prescriptionid = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Prescription{}).Where("doctorid = ?", doctorID).Count(&count).Error
	return count, err
}

func (r *prescriptionRepository) CountByPatientID(ctx context.Context, db *gorm.DB, patientID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Prescription{}).Where("patientid = ?", patientID).Count(&count).Error
	return count, err
}

func (r *prescriptionRepository) CountByDrugID(ctx context.Context, db *gorm.DB, drugID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Prescription{}).Where("drugid = ?", drugID).Count(&count).Error
	return count, err
}

func (r *prescriptionRepository) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) (int64, error) {
	result := db.WithContext(ctx).Create(prescription)
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) Update(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) (int64, error) {
	result := db.WithContext(ctx).Save(prescription)
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("prescriptionid = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}
