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

// followupStore is a function-backed mock that satisfies
// services.FollowupStore.
type followupStore struct {
	CreateFn func(ctx context.Context, f *models.Followup) error
	GetFn    func(ctx context.Context, id int) (*models.Followup, error)
	ListFn   func(ctx context.Context, status, phone string) ([]*models.Followup, error)
	UpdateFn func(ctx context.Context, f *models.Followup) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *followupStore) Create(ctx context.Context, f *models.Followup) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *followupStore) Get(ctx context.Context, id int) (*models.Followup, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *followupStore) List(ctx context.Context, status, phone string) ([]*models.Followup, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status, phone)
	}
	return nil, nil
}

func (m *followupStore) Update(ctx context.Context, f *models.Followup) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, f)
	}
	return nil
}

func (m *followupStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func TestFollowupCreateDefaultsStatus(t *testing.T) {
	svc := services.NewFollowupService(&followupStore{})

	f, err := svc.Create(context.Background(), &models.CreateFollowupRequest{
		Name:  "Ravi Kumar",
		Phone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FollowupPending, f.Status)
	assert.False(t, f.Time.IsZero())
}

func TestFollowupCreateValidation(t *testing.T) {
	svc := services.NewFollowupService(&followupStore{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateFollowupRequest{Phone: "9876543210"})
	assert.Error(t, err, "name is required")

	_, err = svc.Create(ctx, &models.CreateFollowupRequest{Name: "R", Phone: "98"})
	assert.Error(t, err, "phone must be 10 digits")

	_, err = svc.Create(ctx, &models.CreateFollowupRequest{Name: "R", Phone: "9876543210", Status: "Ghosted"})
	assert.Error(t, err, "unknown status")
}

func TestFollowupUpdateOutcome(t *testing.T) {
	store := &followupStore{
		GetFn: func(ctx context.Context, id int) (*models.Followup, error) {
			return &models.Followup{ID: id, Name: "Ravi Kumar", Phone: "9876543210", Status: models.FollowupPending}, nil
		},
		UpdateFn: func(ctx context.Context, f *models.Followup) error { return nil },
	}
	svc := services.NewFollowupService(store)

	status := models.FollowupConnected
	response := "will visit branch on Monday"
	f, err := svc.Update(context.Background(), 4, &models.UpdateFollowupRequest{Status: &status, Response: &response})
	require.NoError(t, err)
	assert.Equal(t, models.FollowupConnected, f.Status)
	assert.Equal(t, response, f.Response)

	bad := "Ghosted"
	_, err = svc.Update(context.Background(), 4, &models.UpdateFollowupRequest{Status: &bad})
	assert.Error(t, err)
}

func TestFollowupListFilters(t *testing.T) {
	var gotStatus, gotPhone string
	store := &followupStore{
		ListFn: func(ctx context.Context, status, phone string) ([]*models.Followup, error) {
			gotStatus, gotPhone = status, phone
			return nil, nil
		},
	}
	svc := services.NewFollowupService(store)

	_, err := svc.List(context.Background(), models.FollowupCallBack, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, models.FollowupCallBack, gotStatus)
	assert.Equal(t, "9876543210", gotPhone)

	_, err = svc.List(context.Background(), "Ghosted", "")
	assert.Error(t, err)

	_, err = svc.List(context.Background(), "", "98")
	assert.Error(t, err)
}

// Creating, updating and deleting a lead all change the telecaller
// dashboard numbers, so each drops the cached payloads.
func TestFollowupMutationsInvalidateDashboards(t *testing.T) {
	invalidations := trackInvalidations(t)
	store := &followupStore{
		GetFn: func(ctx context.Context, id int) (*models.Followup, error) {
			return &models.Followup{ID: id, Name: "Ravi Kumar", Phone: "9876543210", Status: models.FollowupPending}, nil
		},
	}
	svc := services.NewFollowupService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateFollowupRequest{Name: "Ravi Kumar", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, 1, *invalidations)

	status := models.FollowupConnected
	_, err = svc.Update(ctx, 4, &models.UpdateFollowupRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 2, *invalidations)

	require.NoError(t, svc.Delete(ctx, 4))
	assert.Equal(t, 3, *invalidations)
}
