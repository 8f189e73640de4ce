package entity

import "time"

// Visit represents a patient visit. There is no surrogate id: the primary key
// is the (patient, doctor, date) triple, and only symptoms/diagnosis are
// mutable once a visit exists.
type Visit struct {
	PatientID   string    `gorm:"column:patientid;type:varchar(50);primaryKey" json:"patient_id"`
	DoctorID    string    `gorm:"column:doctorid;type:varchar(50);primaryKey" json:"doctor_id"`
	DateOfVisit time.Time `gorm:"column:dateofvisit;type:date;primaryKey" json:"date_of_visit"`
	Symptoms    string    `gorm:"column:symptoms;type:text" json:"symptoms"`
	Diagnosis   string    `gorm:"column:diagnosis;type:text" json:"diagnosis"`
}

func (Visit) TableName() string {
	return "visit"
}

// VisitKey identifies a visit row.
type VisitKey struct {
	PatientID   string
	DoctorID    string
	DateOfVisit time.Time
}
