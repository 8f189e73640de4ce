package repository

import (
	"context"
	"errors"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	domainRepo "github.com/I2oman/HospitalAssessment/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.WithContext(ctx).Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) FindByKey(ctx context.Context, db *gorm.DB, key entity.VisitKey) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.WithContext(ctx).
		Where("patientid = ? AND doctorid = ? AND dateofvisit = ?", key.PatientID, key.DoctorID, key.DateOfVisit).
		First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Visit{}).Where("doctorid = ?", doctorID).Count(&count).Error
	return count, err
}

func (r *visitRepository) CountByPatientID(ctx context.Context, db *gorm.DB, patientID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Visit{}).Where("patientid = ?", patientID).Count(&count).Error
	return count, err
}

func (r *visitRepository) MainDoctorID(ctx context.Context, db *gorm.DB, patientID string) (string, error) {
	var doctorID string
	err := db.WithContext(ctx).Model(&entity.Visit{}).
		Select("doctorid").
		Where("patientid = ?", patientID).
		Group("doctorid").
		Order("COUNT(*) DESC").
		Limit(1).
		Scan(&doctorID).Error
	if err != nil {
		return "", err
	}
	return doctorID, nil
}

func (r *visitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) (int64, error) {
	result := db.WithContext(ctx).Create(visit)
	return result.RowsAffected, result.Error
}

// Update overwrites symptoms and diagnosis only; the key columns are
// immutable once a visit exists.
func (r *visitRepository) Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Visit{}).
		Where("patientid = ? AND doctorid = ? AND dateofvisit = ?", visit.PatientID, visit.DoctorID, visit.DateOfVisit).
		Updates(map[string]interface{}{
			"symptoms":  visit.Symptoms,
			"diagnosis": visit.Diagnosis,
		})
	return result.RowsAffected, result.Error
}

func (r *visitRepository) Delete(ctx context.Context, db *gorm.DB, key entity.VisitKey) (int64, error) {
	result := db.WithContext(ctx).
		Where("patientid = ? AND doctorid = ? AND dateofvisit = ?", key.PatientID, key.DoctorID, key.DateOfVisit).
		Delete(&entity.Visit{})
	return result.RowsAffected, result.Error
}
