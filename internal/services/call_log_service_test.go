package services_test

import (
	"context"
	"testing"
	"time"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackInvalidations swaps the dashboard cache invalidation hook for a
// counter, restoring it when the test ends.
func trackInvalidations(t *testing.T) *int {
	t.Helper()
	count := 0
	orig := cache.InvalidateStats
	cache.InvalidateStats = func(ctx context.Context) { count++ }
	t.Cleanup(func() { cache.InvalidateStats = orig })
	return &count
}

// callLogStore is a function-backed mock that satisfies
// services.CallLogStore.
type callLogStore struct {
	CreateFn    func(ctx context.Context, cl *models.CallLog) error
	ListFn      func(ctx context.Context, limit int) ([]*models.CallLog, error)
	ListSinceFn func(ctx context.Context, since time.Time) ([]*models.CallLog, error)
}

func (m *callLogStore) Create(ctx context.Context, cl *models.CallLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cl)
	}
	return nil
}

func (m *callLogStore) List(ctx context.Context, limit int) ([]*models.CallLog, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}
	return nil, nil
}

func (m *callLogStore) ListSince(ctx context.Context, since time.Time) ([]*models.CallLog, error) {
	if m.ListSinceFn != nil {
		return m.ListSinceFn(ctx, since)
	}
	return nil, nil
}

func TestCallLogCreate(t *testing.T) {
	svc := services.NewCallLogService(&callLogStore{})

	cl, err := svc.Create(context.Background(), &models.CreateCallLogRequest{
		Customer: "Ravi Kumar",
		Phone:    "9876543210",
		Duration: "2m10s",
		Status:   "Connected",
	})
	require.NoError(t, err)
	assert.False(t, cl.Time.IsZero())

	_, err = svc.Create(context.Background(), &models.CreateCallLogRequest{Customer: "R", Phone: "98"})
	assert.Error(t, err)
}

func TestCallLogCreateInvalidatesDashboards(t *testing.T) {
	invalidations := trackInvalidations(t)
	svc := services.NewCallLogService(&callLogStore{})

	_, err := svc.Create(context.Background(), &models.CreateCallLogRequest{
		Customer: "Ravi Kumar",
		Phone:    "9876543210",
		Status:   "Connected",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, *invalidations)

	_, err = svc.Create(context.Background(), &models.CreateCallLogRequest{Phone: "98"})
	require.Error(t, err)
	assert.Equal(t, 1, *invalidations, "a rejected call log must not drop the cache")
}

func TestCallLogListLimit(t *testing.T) {
	var gotLimit int
	svc := services.NewCallLogService(&callLogStore{
		ListFn: func(ctx context.Context, limit int) ([]*models.CallLog, error) {
			gotLimit = limit
			return nil, nil
		},
	})

	svc.List(context.Background(), 0)
	assert.Equal(t, 100, gotLimit, "zero falls back to the default")

	svc.List(context.Background(), 1000)
	assert.Equal(t, 100, gotLimit, "oversize requests are clamped")

	svc.List(context.Background(), 25)
	assert.Equal(t, 25, gotLimit)
}

func TestCallLogListSince(t *testing.T) {
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var gotSince time.Time
	svc := services.NewCallLogService(&callLogStore{
		ListSinceFn: func(ctx context.Context, since time.Time) ([]*models.CallLog, error) {
			gotSince = since
			return []*models.CallLog{{ID: 1, Phone: "9876543210"}}, nil
		},
	})

	logs, err := svc.ListSince(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, cutoff, gotSince)
}
