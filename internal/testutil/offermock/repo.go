package offermock

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// Repo is a function-backed mock that satisfies services.OfferStore.
type Repo struct {
	CreateFn      func(ctx context.Context, o *models.Offer) error
	GetFn         func(ctx context.Context, id int) (*models.Offer, error)
	GetByCaseIDFn func(ctx context.Context, caseID int) (*models.Offer, error)
	ListFn        func(ctx context.Context, agentID int) ([]*models.Offer, error)
	UpdateFn      func(ctx context.Context, o *models.Offer) error
	DeleteOwnedFn func(ctx context.Context, id, agentID int) error
	DeleteFn      func(ctx context.Context, id int) error
}

func (m *Repo) Create(ctx context.Context, o *models.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, id int) (*models.Offer, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) GetByCaseID(ctx context.Context, caseID int) (*models.Offer, error) {
	if m.GetByCaseIDFn != nil {
		return m.GetByCaseIDFn(ctx, caseID)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) List(ctx context.Context, agentID int) ([]*models.Offer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, agentID)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, o *models.Offer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, o)
	}
	return nil
}

func (m *Repo) DeleteOwned(ctx context.Context, id, agentID int) error {
	if m.DeleteOwnedFn != nil {
		return m.DeleteOwnedFn(ctx, id, agentID)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
