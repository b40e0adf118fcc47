package repository

import (
	"context"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(ctx context.Context, s *model.Shift) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	// FindWithAssociations eager-loads the worker and company for responses.
	FindWithAssociations(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	// List applies the filter predicate and returns the matching page plus
	// the unpaged match count.
	List(ctx context.Context, f dto.ShiftFilter) ([]model.Shift, int64, error)
	Update(ctx context.Context, s *model.Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shiftRepo struct{ db *gorm.DB }

func NewShiftRepository(db *gorm.DB) ShiftRepository { return &shiftRepo{db: db} }

func (r *shiftRepo) Create(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shiftRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *shiftRepo) FindWithAssociations(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).
		Preload("Worker").Preload("Company").
		First(&s, "id = ?", id).Error
	return &s, err
}

// buildQuery translates the filter into the shift predicate. The company
// join is required (shifts without a resolvable company fall out), the
// worker join is a LEFT join so unassigned shifts survive the worker
// filters being absent.
func (r *shiftRepo) buildQuery(ctx context.Context, f dto.ShiftFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Shift{}).
		Joins("JOIN companies ON companies.id = shifts.company_id").
		Joins("LEFT JOIN users ON users.id = shifts.worker_id")

	if f.WorkerID != nil {
		q = q.Where("shifts.worker_id = ?", *f.WorkerID)
	}
	if f.WorkerName != "" {
		q = q.Where("users.full_name ILIKE ?", "%"+f.WorkerName+"%")
	}
	if f.WorkerPhone != "" {
		q = q.Where("users.phone ILIKE ?", "%"+f.WorkerPhone+"%")
	}
	if f.CompanyName != "" {
		q = q.Where("companies.name ILIKE ?", "%"+f.CompanyName+"%")
	}

	switch {
	case f.DateFrom != nil && f.DateTo != nil:
		q = q.Where("shifts.date BETWEEN ? AND ?", *f.DateFrom, *f.DateTo)
	case f.DateFrom != nil:
		q = q.Where("shifts.date = ?", *f.DateFrom)
	case f.DateTo != nil:
		q = q.Where("shifts.date = ?", *f.DateTo)
	}

	if f.Searcher != "" {
		prefix := f.Searcher + "%"
		q = q.Where("companies.name ILIKE ? OR shifts.location ILIKE ?", prefix, prefix)
	}

	return q
}

func (r *shiftRepo) List(ctx context.Context, f dto.ShiftFilter) ([]model.Shift, int64, error) {
	q := r.buildQuery(ctx, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "shifts.date DESC"
	if f.Ascending {
		order = "shifts.date ASC"
	}
	q = q.Preload("Worker").Preload("Company").Order(order)

	if f.PageSize > 0 {
		q = q.Offset((f.Page - 1) * f.PageSize).Limit(f.PageSize)
	}

	var shifts []model.Shift
	err := q.Find(&shifts).Error
	return shifts, total, err
}

func (r *shiftRepo) Update(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shiftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shift{}, "id = ?", id).Error
}
