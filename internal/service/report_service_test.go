package service_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/EN-BAAK/Company-management-system-server/internal/config"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(store *memStore) service.ReportService {
	cfg := &config.Config{} // no logo, no Hebrew font
	return service.NewReportService(&stubShiftRepo{store: store}, &stubUserRepo{store: store}, cfg)
}

func TestReportUnknownWorker(t *testing.T) {
	store := newMemStore()
	svc := newReportService(store)

	_, err := svc.Build(context.Background(), dto.ReportQuery{WorkerName: "Nobody"})
	handled := handledError(t, err)
	assert.Equal(t, http.StatusNotFound, handled.Status)
	assert.Equal(t, "Worker with name Nobody not found", handled.Message)
}

func TestReportWorkerWithoutShifts(t *testing.T) {
	store := newMemStore()
	svc := newReportService(store)
	seedWorker(store, "David Cohen", "0501234567")

	_, err := svc.Build(context.Background(), dto.ReportQuery{WorkerName: "David"})
	handled := handledError(t, err)
	assert.Equal(t, http.StatusNotFound, handled.Status)
	assert.Equal(t, "No shifts found for the report", handled.Message)
}

func TestReportSingleWorker(t *testing.T) {
	store := newMemStore()
	svc := newReportService(store)
	company := seedCompany(store, "Acme Security", "039998877")
	worker := seedWorker(store, "David Cohen", "0501234567")
	worker.PersonalID = strPtr("123456789")
	seedShift(store, company, worker, "2026-03-10")
	seedShift(store, company, worker, "2026-03-12")

	file, err := svc.Build(context.Background(), dto.ReportQuery{WorkerName: "cohen"})
	require.NoError(t, err)
	assert.Equal(t, "David Cohen", file.SubjectName)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestReportAllWorkersFiltered(t *testing.T) {
	store := newMemStore()
	svc := newReportService(store)
	acme := seedCompany(store, "Acme Security", "039998877")
	beta := seedCompany(store, "Beta Corp", "031112233")
	david := seedWorker(store, "David Cohen", "0501234567")
	seedShift(store, acme, david, "2026-03-10")
	seedShift(store, beta, nil, "2026-03-14")

	file, err := svc.Build(context.Background(), dto.ReportQuery{CompanyName: "acme"})
	require.NoError(t, err)
	assert.Equal(t, "Multiple Workers", file.SubjectName)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))

	// filters that match nothing surface as 404, not an empty document
	_, err = svc.Build(context.Background(), dto.ReportQuery{CompanyName: "nonexistent"})
	handled := handledError(t, err)
	assert.Equal(t, http.StatusNotFound, handled.Status)
}

func TestReportHebrew(t *testing.T) {
	store := newMemStore()
	svc := newReportService(store)
	company := seedCompany(store, "Acme Security", "039998877")
	worker := seedWorker(store, "David Cohen", "0501234567")
	seedShift(store, company, worker, "2026-03-10")

	file, err := svc.Build(context.Background(), dto.ReportQuery{WorkerName: "David", Lang: "he"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}
