package dto

type CreateWorkerRequest struct {
	FullName   string  `json:"fullName"   validate:"required"`
	Phone      string  `json:"phone"      validate:"required"`
	Password   string  `json:"password"   validate:"required,min=4"`
	PersonalID *string `json:"personalId"`
	WorkType   *string `json:"workType"`
	Notes      *string `json:"notes"`
}

// EditWorkerRequest: required attributes are plain pointers (nil = keep),
// optional attributes follow the omitted/null policy via Nullable.
type EditWorkerRequest struct {
	FullName   *string          `json:"fullName"   validate:"omitempty,min=1"`
	Phone      *string          `json:"phone"      validate:"omitempty,min=1"`
	Password   *string          `json:"password"   validate:"omitempty,min=4"`
	PersonalID Nullable[string] `json:"personalId"`
	WorkType   Nullable[string] `json:"workType"`
	Notes      Nullable[string] `json:"notes"`
}

type WorkerResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"fullName"`
	Phone      string  `json:"phone"`
	PersonalID *string `json:"personalId"`
	WorkType   *string `json:"workType"`
	Notes      *string `json:"notes"`
}

type WorkerEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Worker  WorkerResponse `json:"worker"`
}

type WorkerListResponse struct {
	Success     bool             `json:"success"`
	Workers     []WorkerResponse `json:"workers"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

type WorkerIdentityResponse struct {
	Success bool           `json:"success"`
	Workers []IdentityItem `json:"workers"`
}
