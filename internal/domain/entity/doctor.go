package entity

// Doctor represents a doctor record. The ID is user-chosen and opaque;
// email is unique across doctors.
type Doctor struct {
	ID             string  `gorm:"column:doctorid;type:varchar(50);primaryKey" json:"id"`
	FirstName      string  `gorm:"column:firstname;type:varchar(100);not null" json:"first_name"`
	Surname        string  `gorm:"column:surname;type:varchar(100);not null" json:"surname"`
	Address        string  `gorm:"column:address;type:text" json:"address"`
	Email          string  `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Specialization string  `gorm:"column:specialization;type:varchar(100)" json:"specialization"`
	Hospital       *string `gorm:"column:hospital;type:varchar(255)" json:"hospital,omitempty"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// FullName is the natural key used to resolve a doctor from a display label.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.Surname
}
