package dto

// VisitRequest carries visit form input. The (patient, doctor, date) triple
// is the primary key; on update only symptoms and diagnosis are applied.
type VisitRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	DateOfVisit string `json:"date_of_visit" validate:"required"`
	Symptoms    string `json:"symptoms"`
	Diagnosis   string `json:"diagnosis"`
}

type VisitResponse struct {
	Patient     *Ref   `json:"patient,omitempty"`
	Doctor      *Ref   `json:"doctor,omitempty"`
	DateOfVisit string `json:"date_of_visit"`
	Symptoms    string `json:"symptoms"`
	Diagnosis   string `json:"diagnosis"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
