package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recovery-backend/internal/handlers"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callLogStoreStub satisfies services.CallLogStore for handler tests.
type callLogStoreStub struct {
	listSince func(ctx context.Context, since time.Time) ([]*models.CallLog, error)
	list      func(ctx context.Context, limit int) ([]*models.CallLog, error)
}

func (s *callLogStoreStub) Create(ctx context.Context, cl *models.CallLog) error { return nil }

func (s *callLogStoreStub) List(ctx context.Context, limit int) ([]*models.CallLog, error) {
	if s.list != nil {
		return s.list(ctx, limit)
	}
	return nil, nil
}

func (s *callLogStoreStub) ListSince(ctx context.Context, since time.Time) ([]*models.CallLog, error) {
	if s.listSince != nil {
		return s.listSince(ctx, since)
	}
	return nil, nil
}

func TestListCallLogsSinceParam(t *testing.T) {
	var gotSince time.Time
	store := &callLogStoreStub{
		listSince: func(ctx context.Context, since time.Time) ([]*models.CallLog, error) {
			gotSince = since
			return []*models.CallLog{{ID: 1, Customer: "Ravi Kumar", Phone: "9876543210"}}, nil
		},
	}
	h := handlers.NewCallLogHandler(services.NewCallLogService(store))

	req := httptest.NewRequest("GET", "/api/calllogs?since=2026-08-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()
	h.ListCallLogs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), gotSince.UTC())
	assert.Contains(t, rec.Body.String(), "Ravi Kumar")
}

func TestListCallLogsSinceRejectsBadTimestamp(t *testing.T) {
	h := handlers.NewCallLogHandler(services.NewCallLogService(&callLogStoreStub{}))

	req := httptest.NewRequest("GET", "/api/calllogs?since=yesterday", nil)
	rec := httptest.NewRecorder()
	h.ListCallLogs(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCallLogsDefaultsToLimit(t *testing.T) {
	var gotLimit int
	store := &callLogStoreStub{
		list: func(ctx context.Context, limit int) ([]*models.CallLog, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	h := handlers.NewCallLogHandler(services.NewCallLogService(store))

	req := httptest.NewRequest("GET", "/api/calllogs", nil)
	rec := httptest.NewRecorder()
	h.ListCallLogs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, gotLimit)
}
