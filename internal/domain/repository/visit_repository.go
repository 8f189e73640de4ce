package repository

import (
	"context"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"gorm.io/gorm"
)

// VisitRepository owns persistence for the visit table, keyed by the
// (patient, doctor, date) triple. Update only touches symptoms/diagnosis.
type VisitRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Visit, error)
	FindByKey(ctx context.Context, db *gorm.DB, key entity.VisitKey) (*entity.Visit, error)
	CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (int64, error)
	CountByPatientID(ctx context.Context, db *gorm.DB, patientID string) (int64, error)
	// MainDoctorID returns the id of the doctor with the most visits for the
	// patient, or empty when the patient has no visits.
	MainDoctorID(ctx context.Context, db *gorm.DB, patientID string) (string, error)
	Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) (int64, error)
	Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, key entity.VisitKey) (int64, error)
}
