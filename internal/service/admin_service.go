package service

import (
	"context"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"
)

// AdminService covers the admin account's self-management endpoints.
// The admin row is looked up by role; exactly one is expected to exist.
type AdminService interface {
	EditFullName(ctx context.Context, req dto.EditFullNameRequest) (string, error)
	EditPassword(ctx context.Context, req dto.EditPasswordRequest) error
	EditPhone(ctx context.Context, req dto.EditPhoneRequest) error
}

type adminService struct {
	users repository.UserRepository
}

func NewAdminService(users repository.UserRepository) AdminService {
	return &adminService{users: users}
}

func (s *adminService) EditFullName(ctx context.Context, req dto.EditFullNameRequest) (string, error) {
	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		if isNotFound(err) {
			return "", apierror.NotFound("Admin not found")
		}
		return "", err
	}

	admin.FullName = req.NewFullName
	if err := s.users.Update(ctx, admin); err != nil {
		return "", err
	}
	return admin.FullName, nil
}

func (s *adminService) EditPassword(ctx context.Context, req dto.EditPasswordRequest) error {
	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Admin not found")
		}
		return err
	}

	// A wrong current password is obscured as a generic server error here.
	if !CheckPassword(req.Password, admin.PasswordHash) {
		return apierror.Obscured()
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return s.users.Update(ctx, admin)
}

func (s *adminService) EditPhone(ctx context.Context, req dto.EditPhoneRequest) error {
	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Admin not found")
		}
		return err
	}

	if !CheckPassword(req.Password, admin.PasswordHash) {
		return apierror.Unauthorized("Incorrect password")
	}

	admin.Phone = req.NewPhone
	return s.users.Update(ctx, admin)
}
