package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCompany(store *memStore, name, phone string) *model.Company {
	company := &model.Company{ID: uuid.New(), Name: name, Phone: phone}
	store.companies[company.ID] = company
	return company
}

func TestCreateCompany(t *testing.T) {
	store := newMemStore()
	svc := service.NewCompanyService(&stubCompanyRepo{store: store})

	company, err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:  "Acme Security",
		Phone: "039998877",
		Notes: strPtr("main client"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Security", company.Name)
	assert.NotEmpty(t, company.ID)
}

func TestCreateCompanyDuplicatePhone(t *testing.T) {
	store := newMemStore()
	svc := service.NewCompanyService(&stubCompanyRepo{store: store})
	seedCompany(store, "Acme Security", "039998877")

	_, err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:  "Other Name",
		Phone: "039998877",
	})
	handled := handledError(t, err)
	assert.Equal(t, http.StatusBadRequest, handled.Status)
	assert.Equal(t, "The company already exists", handled.Message)
}

func TestEditCompany(t *testing.T) {
	store := newMemStore()
	svc := service.NewCompanyService(&stubCompanyRepo{store: store})
	company := seedCompany(store, "Acme Security", "039998877")
	company.Notes = strPtr("main client")

	resp, err := svc.Edit(context.Background(), company.ID, dto.EditCompanyRequest{
		Name:  strPtr("Acme Guarding"),
		Notes: setNull(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Guarding", resp.Name)
	assert.Equal(t, "039998877", resp.Phone)
	assert.Nil(t, resp.Notes)
}

func TestEditCompanyNotFound(t *testing.T) {
	store := newMemStore()
	svc := service.NewCompanyService(&stubCompanyRepo{store: store})

	_, err := svc.Edit(context.Background(), uuid.New(), dto.EditCompanyRequest{})
	handled := handledError(t, err)
	assert.Equal(t, http.StatusNotFound, handled.Status)
	assert.Equal(t, "Company not found", handled.Message)
}

func TestDeleteCompanyRemovesItsShifts(t *testing.T) {
	store := newMemStore()
	svc := service.NewCompanyService(&stubCompanyRepo{store: store})
	company := seedCompany(store, "Acme Security", "039998877")
	other := seedCompany(store, "Beta Corp", "031112233")

	doomed := &model.Shift{ID: uuid.New(), CompanyID: company.ID}
	kept := &model.Shift{ID: uuid.New(), CompanyID: other.ID}
	store.shifts[doomed.ID] = doomed
	store.shifts[kept.ID] = kept

	id, err := svc.Delete(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, id)
	assert.NotContains(t, store.shifts, doomed.ID)
	assert.Contains(t, store.shifts, kept.ID)
}

func TestListCompaniesPagination(t *testing.T) {
	store := newMemStore()
	svc := service.NewCompanyService(&stubCompanyRepo{store: store})
	seedCompany(store, "Acme", "031")
	seedCompany(store, "Beta", "032")
	seedCompany(store, "Gamma", "033")

	page, err := svc.List(context.Background(), dto.PageQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.True(t, page.Success)
	assert.Len(t, page.Companies, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}
