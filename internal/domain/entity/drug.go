package entity

// Drug represents a drug record.
type Drug struct {
	ID          string `gorm:"column:drugid;type:varchar(50);primaryKey" json:"id"`
	DrugName    string `gorm:"column:drugname;type:varchar(255);not null" json:"drug_name"`
	SideEffects string `gorm:"column:sideeffects;type:text" json:"side_effects"`
	Benefits    string `gorm:"column:benefits;type:text" json:"benefits"`
}

func (Drug) TableName() string {
	return "drug"
}

// Display is the "id - name" label shown to users for drug selection.
func (d *Drug) Display() string {
	return d.ID + " - " + d.DrugName
}
