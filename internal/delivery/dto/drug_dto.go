package dto

type DrugRequest struct {
	ID          string `json:"id" validate:"required"`
	DrugName    string `json:"drug_name" validate:"required"`
	SideEffects string `json:"side_effects"`
	Benefits    string `json:"benefits"`
}

type DrugResponse struct {
	ID          string `json:"id"`
	DrugName    string `json:"drug_name"`
	Display     string `json:"display"`
	SideEffects string `json:"side_effects"`
	Benefits    string `json:"benefits"`
}

type DrugListResponse struct {
	Drugs []DrugResponse `json:"drugs"`
	Total int            `json:"total"`
}
