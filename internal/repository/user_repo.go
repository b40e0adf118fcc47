package repository

import (
	"context"

	"github.com/EN-BAAK/Company-management-system-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	FindAdmin(ctx context.Context) (*model.User, error)
	// FindByName resolves a user by case-insensitive substring of the full
	// name. Used to resolve the report subject.
	FindByName(ctx context.Context, name string) (*model.User, error)
	// ListWorkers excludes the admin row and the password hash is never
	// serialized by the service layer.
	ListWorkers(ctx context.Context, page, pageSize int) ([]model.User, int64, error)
	ListIdentity(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *userRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error
	return &u, err
}

func (r *userRepo) FindAdmin(ctx context.Context) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("role = ?", model.RoleAdmin).First(&u).Error
	return &u, err
}

func (r *userRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("full_name ILIKE ?", "%"+name+"%").First(&u).Error
	return &u, err
}

func (r *userRepo) ListWorkers(ctx context.Context, page, pageSize int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	q := r.db.WithContext(ctx).Model(&model.User{}).Where("role <> ?", model.RoleAdmin)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("full_name ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

func (r *userRepo) ListIdentity(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("id", "full_name").
		Where("role <> ?", model.RoleAdmin).
		Order("full_name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}
