package entity

import "time"

// Prescription represents a prescription record linking a drug, a doctor and
// a patient. References are stored by natural id; dangling references are
// tolerated on read and surface as absent on the composed response.
type Prescription struct {
	ID             string    `gorm:"column:prescriptionid;type:varchar(50);primaryKey" json:"id"`
	DatePrescribed time.Time `gorm:"column:dateprescribed;type:date;not null" json:"date_prescribed"`
	Dosage         int       `gorm:"column:dosage;not null" json:"dosage"`
	Duration       int       `gorm:"column:duration;not null" json:"duration"`
	Comment        *string   `gorm:"column:comment;type:text" json:"comment,omitempty"`
	DrugID         string    `gorm:"column:drugid;type:varchar(50);not null" json:"drug_id"`
	DoctorID       string    `gorm:"column:doctorid;type:varchar(50);not null" json:"doctor_id"`
	PatientID      string    `gorm:"column:patientid;type:varchar(50);not null" json:"patient_id"`
}

func (Prescription) TableName() string {
	return "prescription"
}
