package service

import (
	"context"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"

	"github.com/google/uuid"
)

type CompanyService interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	Edit(ctx context.Context, id uuid.UUID, req dto.EditCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	List(ctx context.Context, page dto.PageQuery) (*dto.CompanyListResponse, error)
	ListIdentity(ctx context.Context) ([]dto.IdentityItem, error)
}

type companyService struct {
	companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if _, err := s.companies.FindByPhone(ctx, req.Phone); err == nil {
		return nil, apierror.Conflict("The company already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	company := &model.Company{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	resp := companyResponse(company)
	return &resp, nil
}

func (s *companyService) Edit(ctx context.Context, id uuid.UUID, req dto.EditCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Company not found")
		}
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Phone != nil {
		if other, err := s.companies.FindByPhone(ctx, *req.Phone); err == nil && other.ID != company.ID {
			return nil, apierror.Conflict("The company already exists")
		} else if err != nil && !isNotFound(err) {
			return nil, err
		}
		company.Phone = *req.Phone
	}
	if req.Notes.Set {
		company.Notes = req.Notes.Ptr()
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	resp := companyResponse(company)
	return &resp, nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return uuid.Nil, apierror.NotFound("Company not found")
		}
		return uuid.Nil, err
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return company.ID, nil
}

func (s *companyService) List(ctx context.Context, page dto.PageQuery) (*dto.CompanyListResponse, error) {
	rows, total, err := s.companies.List(ctx, page.Page, page.PageSize)
	if err != nil {
		return nil, err
	}

	companies := make([]dto.CompanyResponse, len(rows))
	for i := range rows {
		companies[i] = companyResponse(&rows[i])
	}

	return &dto.CompanyListResponse{
		Success:     true,
		Companies:   companies,
		TotalPages:  dto.TotalPages(total, page.PageSize),
		CurrentPage: page.Page,
	}, nil
}

func (s *companyService) ListIdentity(ctx context.Context) ([]dto.IdentityItem, error) {
	rows, err := s.companies.ListIdentity(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IdentityItem, len(rows))
	for i, c := range rows {
		items[i] = dto.IdentityItem{ID: c.ID.String(), Name: c.Name}
	}
	return items, nil
}

func companyResponse(c *model.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Phone: c.Phone,
		Notes: c.Notes,
	}
}
