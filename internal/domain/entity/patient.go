package entity

// Patient represents a patient record. Email is unique across patients;
// InsuranceID references the insurance table by its natural id and defaults
// to DefaultInsuranceID on write.
type Patient struct {
	ID          string `gorm:"column:patientid;type:varchar(50);primaryKey" json:"id"`
	FirstName   string `gorm:"column:firstname;type:varchar(100);not null" json:"first_name"`
	Surname     string `gorm:"column:surname;type:varchar(100);not null" json:"surname"`
	Postcode    string `gorm:"column:postcode;type:varchar(20)" json:"postcode"`
	Address     string `gorm:"column:address;type:text" json:"address"`
	Phone       string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Email       string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	InsuranceID string `gorm:"column:insuranceid;type:varchar(50)" json:"insurance_id"`
}

func (Patient) TableName() string {
	return "patient"
}

// FullName is the natural key used to resolve a patient from a display label.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.Surname
}
