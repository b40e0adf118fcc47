package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateShiftRequest struct {
	Date      string  `json:"date"      validate:"required,datetime=2006-01-02"`
	CompanyID string  `json:"companyId" validate:"required,uuid"`
	WorkerID  *string `json:"workerId"  validate:"omitempty,uuid"`
	WorkType  *string `json:"workType"`
	StartHour *string `json:"startHour" validate:"omitempty,clocktime"`
	EndHour   *string `json:"endHour"   validate:"omitempty,clocktime"`
	Location  *string `json:"location"`
	Notes     *string `json:"notes"`
}

type EditShiftRequest struct {
	Date      *string          `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	CompanyID *string          `json:"companyId" validate:"omitempty,uuid"`
	WorkerID  Nullable[string] `json:"workerId"`
	WorkType  Nullable[string] `json:"workType"`
	StartHour Nullable[string] `json:"startHour"`
	EndHour   Nullable[string] `json:"endHour"`
	Location  Nullable[string] `json:"location"`
	Notes     Nullable[string] `json:"notes"`
}

// ShiftQuery is bound from the query string of GET /shift.
type ShiftQuery struct {
	WorkerName  string `form:"workerName"`
	WorkerPhone string `form:"workerPhone"`
	CompanyName string `form:"companyName"`
	Date1       string `form:"date1" validate:"omitempty,datetime=2006-01-02"`
	Date2       string `form:"date2" validate:"omitempty,datetime=2006-01-02"`
	Searcher    string `form:"searcher"`
	PageQuery
}

// ShiftFilter is the predicate structure the storage layer consumes.
// Substring filters match case-insensitively; Searcher is an OR group of
// prefix matches on company name and shift location, AND-ed against the
// structured filters. Page/PageSize of zero disables paging.
type ShiftFilter struct {
	WorkerID    *uuid.UUID
	WorkerName  string
	WorkerPhone string
	CompanyName string
	DateFrom    *time.Time
	DateTo      *time.Time
	Searcher    string
	Ascending   bool
	Page        int
	PageSize    int
}

type WorkerRef struct {
	ID       *string `json:"id"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShiftResponse struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	WorkType  *string    `json:"workType"`
	StartHour *string    `json:"startHour"`
	EndHour   *string    `json:"endHour"`
	Location  *string    `json:"location"`
	Notes     *string    `json:"notes"`
	Worker    WorkerRef  `json:"worker"`
	Company   CompanyRef `json:"company"`
}

type ShiftEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Shift   ShiftResponse `json:"shift"`
}

type ShiftListResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Shifts       []ShiftResponse `json:"shifts"`
	TotalRecords int64           `json:"totalRecords"`
}
