package dto

type InsuranceRequest struct {
	ID      string `json:"id" validate:"required"`
	Company string `json:"company" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type InsuranceResponse struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type InsuranceListResponse struct {
	Insurances []InsuranceResponse `json:"insurances"`
	Total      int                 `json:"total"`
}
