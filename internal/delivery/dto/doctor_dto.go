package dto

// DoctorRequest carries doctor form input. All fields arrive as strings; an
// empty hospital is stored as NULL.
type DoctorRequest struct {
	ID             string `json:"id" validate:"required"`
	FirstName      string `json:"first_name" validate:"required"`
	Surname        string `json:"surname" validate:"required"`
	Address        string `json:"address"`
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
}

type DoctorResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	Surname        string  `json:"surname"`
	FullName       string  `json:"full_name"`
	Address        string  `json:"address"`
	Email          string  `json:"email"`
	Specialization string  `json:"specialization"`
	Hospital       *string `json:"hospital,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
