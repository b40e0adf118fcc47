package repository

import (
	"context"

	"github.com/EN-BAAK/Company-management-system-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(ctx context.Context, c *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByPhone(ctx context.Context, phone string) (*model.Company, error)
	List(ctx context.Context, page, pageSize int) ([]model.Company, int64, error)
	ListIdentity(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, c *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyRepo struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) CompanyRepository { return &companyRepo{db: db} }

func (r *companyRepo) Create(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *companyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *companyRepo) FindByPhone(ctx context.Context, phone string) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&c).Error
	return &c, err
}

func (r *companyRepo) List(ctx context.Context, page, pageSize int) ([]model.Company, int64, error) {
	var companies []model.Company
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Company{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&companies).Error
	return companies, total, err
}

func (r *companyRepo) ListIdentity(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC").
		Find(&companies).Error
	return companies, err
}

func (r *companyRepo) Update(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *companyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// shifts referencing the company go with it (FK ON DELETE CASCADE)
	return r.db.WithContext(ctx).Delete(&model.Company{}, "id = ?", id).Error
}
