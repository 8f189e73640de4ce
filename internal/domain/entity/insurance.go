package entity

// DefaultInsuranceID is the sentinel insurer id written for patients who
// declare no private insurance. It is a convention, not necessarily a row.
const DefaultInsuranceID = "NHS"

// Insurance represents an insurance company record.
type Insurance struct {
	ID      string `gorm:"column:insuranceid;type:varchar(50);primaryKey" json:"id"`
	Company string `gorm:"column:company;type:varchar(255);not null" json:"company"`
	Address string `gorm:"column:address;type:text" json:"address"`
	Phone   string `gorm:"column:phone;type:varchar(50)" json:"phone"`
}

func (Insurance) TableName() string {
	return "insurance"
}
