package services_test

import (
	"context"
	"testing"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldDataStore is a function-backed mock that satisfies
// services.FieldDataStore.
type fieldDataStore struct {
	CreateFn func(ctx context.Context, fd *models.FieldData) error
	ListFn   func(ctx context.Context, marketingID int) ([]*models.FieldData, error)
	DeleteFn func(ctx context.Context, id int) error
}

func (m *fieldDataStore) Create(ctx context.Context, fd *models.FieldData) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fd)
	}
	return nil
}

func (m *fieldDataStore) List(ctx context.Context, marketingID int) ([]*models.FieldData, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, marketingID)
	}
	return nil, nil
}

func (m *fieldDataStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func TestFieldDataCreateValidation(t *testing.T) {
	svc := services.NewFieldDataService(&fieldDataStore{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateFieldDataRequest{ManagerPhone: "9876543210"})
	assert.Error(t, err, "bankName is required")

	_, err = svc.Create(ctx, &models.CreateFieldDataRequest{BankName: "SBI", ManagerPhone: "98"})
	assert.Error(t, err, "short manager phone")

	fd, err := svc.Create(ctx, &models.CreateFieldDataRequest{
		BankName:     "SBI",
		BankArea:     "Nashik Road",
		ManagerName:  "Asha Patil",
		ManagerPhone: "9876543210",
		MarketingID:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "SBI", fd.BankName)
	assert.Equal(t, 7, fd.MarketingID)
}

// Field visits feed the marketing dashboard, so create and delete both
// drop the cached payloads.
func TestFieldDataMutationsInvalidateDashboards(t *testing.T) {
	invalidations := trackInvalidations(t)
	svc := services.NewFieldDataService(&fieldDataStore{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateFieldDataRequest{BankName: "SBI", MarketingID: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, *invalidations)

	require.NoError(t, svc.Delete(ctx, 3))
	assert.Equal(t, 2, *invalidations)

	_, err = svc.Create(ctx, &models.CreateFieldDataRequest{ManagerPhone: "98"})
	require.Error(t, err)
	assert.Equal(t, 2, *invalidations, "a rejected entry must not drop the cache")
}

func TestFieldDataDeleteMissing(t *testing.T) {
	svc := services.NewFieldDataService(&fieldDataStore{
		DeleteFn: func(ctx context.Context, id int) error { return pgx.ErrNoRows },
	})

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), services.ErrNotFound)
}
