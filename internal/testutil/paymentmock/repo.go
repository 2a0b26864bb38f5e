package paymentmock

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// Repo is a function-backed mock that satisfies services.PaymentStore.
type Repo struct {
	CreateFn func(ctx context.Context, p *models.Payment) error
	GetFn    func(ctx context.Context, id int) (*models.Payment, error)
	ListFn   func(ctx context.Context, caseNumber string) ([]*models.Payment, error)
	UpdateFn func(ctx context.Context, p *models.Payment) error
	DeleteFn func(ctx context.Context, id int) error
}

func (m *Repo) Create(ctx context.Context, p *models.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, id int) (*models.Payment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) List(ctx context.Context, caseNumber string) ([]*models.Payment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, caseNumber)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, p *models.Payment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
