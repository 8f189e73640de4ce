package dto

// PatientRequest carries patient form input. An empty insurance id defaults
// to the NHS sentinel on write.
type PatientRequest struct {
	ID          string `json:"id" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Postcode    string `json:"postcode"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"required,email"`
	InsuranceID string `json:"insurance_id"`
}

type PatientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	FullName  string `json:"full_name"`
	Postcode  string `json:"postcode"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	// Insurance is absent when the stored insurance id resolves to no row;
	// the company label then falls back to "NHS".
	Insurance        *Ref   `json:"insurance,omitempty"`
	InsuranceCompany string `json:"insurance_company"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
