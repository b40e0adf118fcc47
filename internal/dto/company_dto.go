package dto

type CreateCompanyRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Phone string  `json:"phone" validate:"required"`
	Notes *string `json:"notes"`
}

type EditCompanyRequest struct {
	Name  *string          `json:"name"  validate:"omitempty,min=1"`
	Phone *string          `json:"phone" validate:"omitempty,min=1"`
	Notes Nullable[string] `json:"notes"`
}

type CompanyResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Notes *string `json:"notes"`
}

type CompanyEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Company CompanyResponse `json:"company"`
}

type CompanyListResponse struct {
	Success     bool              `json:"success"`
	Companies   []CompanyResponse `json:"companies"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

type CompanyIdentityResponse struct {
	Success   bool           `json:"success"`
	Companies []IdentityItem `json:"companies"`
}
