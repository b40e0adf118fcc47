package service

import (
	"context"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"

	"github.com/google/uuid"
)

type UserService interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
	EditWorker(ctx context.Context, id uuid.UUID, req dto.EditWorkerRequest) (*dto.WorkerResponse, error)
	DeleteWorker(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListWorkers(ctx context.Context, page dto.PageQuery) (*dto.WorkerListResponse, error)
	ListIdentity(ctx context.Context) ([]dto.IdentityItem, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if _, err := s.users.FindByPhone(ctx, req.Phone); err == nil {
		return nil, apierror.Conflict("The user already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     req.FullName,
		Phone:        req.Phone,
		PersonalID:   req.PersonalID,
		WorkType:     req.WorkType,
		PasswordHash: hash,
		Role:         model.RoleWorker,
		Notes:        req.Notes,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := workerResponse(user)
	return &resp, nil
}

func (s *userService) EditWorker(ctx context.Context, id uuid.UUID, req dto.EditWorkerRequest) (*dto.WorkerResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("User not found")
		}
		return nil, err
	}

	// The admin record is never editable through the worker path; the
	// failure is reported as a generic server error on purpose.
	if user.Role == model.RoleAdmin {
		return nil, apierror.Obscured()
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		if other, err := s.users.FindByPhone(ctx, *req.Phone); err == nil && other.ID != user.ID {
			return nil, apierror.Conflict("The user already exists")
		} else if err != nil && !isNotFound(err) {
			return nil, err
		}
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	// Optional attributes: omitted = unchanged, explicit null = clear.
	if req.PersonalID.Set {
		user.PersonalID = req.PersonalID.Ptr()
	}
	if req.WorkType.Set {
		user.WorkType = req.WorkType.Ptr()
	}
	if req.Notes.Set {
		user.Notes = req.Notes.Ptr()
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := workerResponse(user)
	return &resp, nil
}

func (s *userService) DeleteWorker(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return uuid.Nil, apierror.NotFound("User not found")
		}
		return uuid.Nil, err
	}

	if user.Role == model.RoleAdmin {
		return uuid.Nil, apierror.Obscured()
	}

	// Shifts referencing the worker survive with the reference nulled
	// (FK ON DELETE SET NULL).
	if err := s.users.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func (s *userService) ListWorkers(ctx context.Context, page dto.PageQuery) (*dto.WorkerListResponse, error) {
	users, total, err := s.users.ListWorkers(ctx, page.Page, page.PageSize)
	if err != nil {
		return nil, err
	}

	workers := make([]dto.WorkerResponse, len(users))
	for i := range users {
		workers[i] = workerResponse(&users[i])
	}

	return &dto.WorkerListResponse{
		Success:     true,
		Workers:     workers,
		TotalPages:  dto.TotalPages(total, page.PageSize),
		CurrentPage: page.Page,
	}, nil
}

func (s *userService) ListIdentity(ctx context.Context) ([]dto.IdentityItem, error) {
	users, err := s.users.ListIdentity(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IdentityItem, len(users))
	for i, u := range users {
		items[i] = dto.IdentityItem{ID: u.ID.String(), Name: u.FullName}
	}
	return items, nil
}

func workerResponse(u *model.User) dto.WorkerResponse {
	return dto.WorkerResponse{
		ID:         u.ID.String(),
		FullName:   u.FullName,
		Phone:      u.Phone,
		PersonalID: u.PersonalID,
		WorkType:   u.WorkType,
		Notes:      u.Notes,
	}
}
