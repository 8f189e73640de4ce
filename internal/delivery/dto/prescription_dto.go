package dto

// PrescriptionRequest carries prescription form input. Dosage, duration and
// date arrive as strings and are coerced by the usecase; a coercion failure
// rejects the request without touching storage.
type PrescriptionRequest struct {
	ID             string `json:"id" validate:"required"`
	DatePrescribed string `json:"date_prescribed" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	Comment        string `json:"comment"`
	DrugID         string `json:"drug_id" validate:"required"`
	DoctorID       string `json:"doctor_id" validate:"required"`
	PatientID      string `json:"patient_id" validate:"required"`
}

type PrescriptionResponse struct {
	ID             string  `json:"id"`
	DatePrescribed string  `json:"date_prescribed"`
	Dosage         int     `json:"dosage"`
	Duration       int     `json:"duration"`
	Comment        *string `json:"comment,omitempty"`
	Drug           *Ref    `json:"drug,omitempty"`
	Doctor         *Ref    `json:"doctor,omitempty"`
	Patient        *Ref    `json:"patient,omitempty"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
