package service

import (
	"context"
	"time"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ShiftService interface {
	Create(ctx context.Context, req dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	Edit(ctx context.Context, id uuid.UUID, req dto.EditShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	List(ctx context.Context, q dto.ShiftQuery) (*dto.ShiftListResponse, error)
}

type shiftService struct {
	shifts    repository.ShiftRepository
	companies repository.CompanyRepository
	users     repository.UserRepository
}

func NewShiftService(shifts repository.ShiftRepository, companies repository.CompanyRepository, users repository.UserRepository) ShiftService {
	return &shiftService{shifts: shifts, companies: companies, users: users}
}

func (s *shiftService) Create(ctx context.Context, req dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apierror.New(400, "Date must be a valid date")
	}

	companyID, err := s.resolveCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	var workerID *uuid.UUID
	if req.WorkerID != nil {
		workerID, err = s.resolveWorker(ctx, *req.WorkerID)
		if err != nil {
			return nil, err
		}
	}

	shift := &model.Shift{
		Date:      date,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		WorkType:  req.WorkType,
		Location:  req.Location,
		Notes:     req.Notes,
		CompanyID: companyID,
		WorkerID:  workerID,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}

	return s.respondWithAssociations(ctx, shift.ID)
}

func (s *shiftService) Edit(ctx context.Context, id uuid.UUID, req dto.EditShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.shifts.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Shift not found")
		}
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, apierror.New(400, "Date must be a valid date")
		}
		shift.Date = date
	}

	if req.CompanyID != nil {
		companyID, err := s.resolveCompany(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		shift.CompanyID = companyID
	}

	// Optional attributes: omitted = unchanged, explicit null = clear.
	if req.WorkerID.Set {
		if req.WorkerID.Valid {
			workerID, err := s.resolveWorker(ctx, req.WorkerID.Value)
			if err != nil {
				return nil, err
			}
			shift.WorkerID = workerID
		} else {
			shift.WorkerID = nil
		}
	}
	if req.WorkType.Set {
		shift.WorkType = req.WorkType.Ptr()
	}
	if req.StartHour.Set {
		if req.StartHour.Valid && !validClockTime(req.StartHour.Value) {
			return nil, apierror.New(400, "Start hour must be a valid time in HH:MM or HH:MM:SS format")
		}
		shift.StartHour = req.StartHour.Ptr()
	}
	if req.EndHour.Set {
		if req.EndHour.Valid && !validClockTime(req.EndHour.Value) {
			return nil, apierror.New(400, "End hour must be a valid time in HH:MM or HH:MM:SS format")
		}
		shift.EndHour = req.EndHour.Ptr()
	}
	if req.Location.Set {
		shift.Location = req.Location.Ptr()
	}
	if req.Notes.Set {
		shift.Notes = req.Notes.Ptr()
	}

	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, err
	}

	return s.respondWithAssociations(ctx, shift.ID)
}

func (s *shiftService) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	shift, err := s.shifts.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return uuid.Nil, apierror.NotFound("Shift not found")
		}
		return uuid.Nil, err
	}

	if err := s.shifts.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return shift.ID, nil
}

func (s *shiftService) List(ctx context.Context, q dto.ShiftQuery) (*dto.ShiftListResponse, error) {
	filter := dto.ShiftFilter{
		WorkerName:  q.WorkerName,
		WorkerPhone: q.WorkerPhone,
		CompanyName: q.CompanyName,
		Searcher:    q.Searcher,
		Page:        q.Page,
		PageSize:    q.PageSize,
	}
	var err error
	if filter.DateFrom, filter.DateTo, err = parseDateRange(q.Date1, q.Date2); err != nil {
		return nil, err
	}

	shifts, total, err := s.shifts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		rows[i] = shiftResponse(&shifts[i])
	}

	return &dto.ShiftListResponse{
		Success:      true,
		Message:      "Shifts retrieved successfully",
		Shifts:       rows,
		TotalRecords: total,
	}, nil
}

func (s *shiftService) resolveCompany(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.New(400, "Company ID must be a valid id")
	}
	if _, err := s.companies.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return uuid.Nil, apierror.NotFound("Company not found")
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (s *shiftService) resolveWorker(ctx context.Context, raw string) (*uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierror.New(400, "Worker ID must be a valid id")
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Worker not found")
		}
		return nil, err
	}
	return &id, nil
}

func (s *shiftService) respondWithAssociations(ctx context.Context, id uuid.UUID) (*dto.ShiftResponse, error) {
	shift, err := s.shifts.FindWithAssociations(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := shiftResponse(shift)
	return &resp, nil
}

// parseDateRange interprets the date1/date2 pair: both bounds form an
// inclusive window, a single bound matches exactly that day.
func parseDateRange(date1, date2 string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if date1 != "" {
		d, err := time.Parse(dateLayout, date1)
		if err != nil {
			return nil, nil, apierror.New(400, "date1 must be a valid date")
		}
		from = &d
	}
	if date2 != "" {
		d, err := time.Parse(dateLayout, date2)
		if err != nil {
			return nil, nil, apierror.New(400, "date2 must be a valid date")
		}
		to = &d
	}
	return from, to, nil
}

func validClockTime(s string) bool {
	if len(s) != 5 && len(s) != 8 {
		return false
	}
	if s[2] != ':' || (len(s) == 8 && s[5] != ':') {
		return false
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if len(s) == 8 {
		for _, i := range []int{6, 7} {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		ss := int(s[6]-'0')*10 + int(s[7]-'0')
		if ss > 59 {
			return false
		}
	}
	return hh < 24 && mm < 60
}

func shiftResponse(sh *model.Shift) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:        sh.ID.String(),
		Date:      sh.Date.Format(dateLayout),
		WorkType:  sh.WorkType,
		StartHour: sh.StartHour,
		EndHour:   sh.EndHour,
		Location:  sh.Location,
		Notes:     sh.Notes,
	}
	if sh.Company != nil {
		resp.Company = dto.CompanyRef{ID: sh.CompanyID.String(), Name: sh.Company.Name}
	}
	if sh.Worker != nil {
		id := sh.Worker.ID.String()
		resp.Worker = dto.WorkerRef{ID: &id, FullName: &sh.Worker.FullName, Phone: &sh.Worker.Phone}
	}
	return resp
}
