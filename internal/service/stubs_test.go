package service_test

// In-memory repository stubs shared by the service tests. The stubs emulate
// the FK behavior the schema declares: deleting a company removes its
// shifts, deleting a worker nulls the reference on theirs.

import (
	"context"
	"sort"
	"strings"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memStore struct {
	users     map[uuid.UUID]*model.User
	companies map[uuid.UUID]*model.Company
	shifts    map[uuid.UUID]*model.Shift
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uuid.UUID]*model.User),
		companies: make(map[uuid.UUID]*model.Company),
		shifts:    make(map[uuid.UUID]*model.Shift),
	}
}

// ── UserRepository stub ──────────────────────────────────────────────────────

type stubUserRepo struct{ store *memStore }

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.store.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	for _, u := range r.store.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindAdmin(_ context.Context) (*model.User, error) {
	for _, u := range r.store.users {
		if u.Role == model.RoleAdmin {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	needle := strings.ToLower(name)
	for _, u := range r.store.users {
		if strings.Contains(strings.ToLower(u.FullName), needle) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) ListWorkers(_ context.Context, page, pageSize int) ([]model.User, int64, error) {
	var workers []model.User
	for _, u := range r.store.users {
		if u.Role != model.RoleAdmin {
			workers = append(workers, *u)
		}
	}
	sort.Slice(workers, func(i, j int) bool { return workers[i].FullName < workers[j].FullName })
	total := int64(len(workers))
	return pageSlice(workers, page, pageSize), total, nil
}

func (r *stubUserRepo) ListIdentity(_ context.Context) ([]model.User, error) {
	users, _, err := r.ListWorkers(context.Background(), 1, len(r.store.users)+1)
	return users, err
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.store.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.users, id)
	// emulate FK ON DELETE SET NULL
	for _, s := range r.store.shifts {
		if s.WorkerID != nil && *s.WorkerID == id {
			s.WorkerID = nil
			s.Worker = nil
		}
	}
	return nil
}

// ── CompanyRepository stub ───────────────────────────────────────────────────

type stubCompanyRepo struct{ store *memStore }

var _ repository.CompanyRepository = (*stubCompanyRepo)(nil)

func (r *stubCompanyRepo) Create(_ context.Context, c *model.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.store.companies[c.ID] = c
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Company, error) {
	c, ok := r.store.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompanyRepo) FindByPhone(_ context.Context, phone string) (*model.Company, error) {
	for _, c := range r.store.companies {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCompanyRepo) List(_ context.Context, page, pageSize int) ([]model.Company, int64, error) {
	var companies []model.Company
	for _, c := range r.store.companies {
		companies = append(companies, *c)
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })
	total := int64(len(companies))
	return pageSlice(companies, page, pageSize), total, nil
}

func (r *stubCompanyRepo) ListIdentity(_ context.Context) ([]model.Company, error) {
	companies, _, err := r.List(context.Background(), 1, len(r.store.companies)+1)
	return companies, err
}

func (r *stubCompanyRepo) Update(_ context.Context, c *model.Company) error {
	r.store.companies[c.ID] = c
	return nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.companies, id)
	// emulate FK ON DELETE CASCADE
	for sid, s := range r.store.shifts {
		if s.CompanyID == id {
			delete(r.store.shifts, sid)
		}
	}
	return nil
}

// ── ShiftRepository stub ─────────────────────────────────────────────────────

type stubShiftRepo struct{ store *memStore }

var _ repository.ShiftRepository = (*stubShiftRepo)(nil)

func (r *stubShiftRepo) Create(_ context.Context, s *model.Shift) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.store.shifts[s.ID] = s
	return nil
}

func (r *stubShiftRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Shift, error) {
	s, ok := r.store.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubShiftRepo) FindWithAssociations(_ context.Context, id uuid.UUID) (*model.Shift, error) {
	s, ok := r.store.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *s
	loaded.Company = r.store.companies[s.CompanyID]
	if s.WorkerID != nil {
		loaded.Worker = r.store.users[*s.WorkerID]
	}
	return &loaded, nil
}

func (r *stubShiftRepo) List(_ context.Context, f dto.ShiftFilter) ([]model.Shift, int64, error) {
	var matched []model.Shift
	for _, s := range r.store.shifts {
		company, ok := r.store.companies[s.CompanyID]
		if !ok {
			continue // required join
		}
		var worker *model.User
		if s.WorkerID != nil {
			worker = r.store.users[*s.WorkerID]
		}

		if f.WorkerID != nil && (s.WorkerID == nil || *s.WorkerID != *f.WorkerID) {
			continue
		}
		if f.WorkerName != "" && (worker == nil || !containsFold(worker.FullName, f.WorkerName)) {
			continue
		}
		if f.WorkerPhone != "" && (worker == nil || !containsFold(worker.Phone, f.WorkerPhone)) {
			continue
		}
		if f.CompanyName != "" && !containsFold(company.Name, f.CompanyName) {
			continue
		}
		switch {
		case f.DateFrom != nil && f.DateTo != nil:
			if s.Date.Before(*f.DateFrom) || s.Date.After(*f.DateTo) {
				continue
			}
		case f.DateFrom != nil:
			if !s.Date.Equal(*f.DateFrom) {
				continue
			}
		case f.DateTo != nil:
			if !s.Date.Equal(*f.DateTo) {
				continue
			}
		}
		if f.Searcher != "" {
			companyHit := prefixFold(company.Name, f.Searcher)
			locationHit := s.Location != nil && prefixFold(*s.Location, f.Searcher)
			if !companyHit && !locationHit {
				continue
			}
		}

		loaded := *s
		loaded.Company = company
		loaded.Worker = worker
		matched = append(matched, loaded)
	}

	sort.Slice(matched, func(i, j int) bool {
		if f.Ascending {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].Date.After(matched[j].Date)
	})

	total := int64(len(matched))
	if f.PageSize > 0 {
		matched = pageSlice(matched, f.Page, f.PageSize)
	}
	return matched, total, nil
}

func (r *stubShiftRepo) Update(_ context.Context, s *model.Shift) error {
	r.store.shifts[s.ID] = s
	return nil
}

func (r *stubShiftRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.shifts, id)
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func pageSlice[T any](rows []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func prefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
