package usermock

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// Repo is a function-backed mock that satisfies services.UserStore.
// Only the methods a test provides are backed; the rest return zero
// values or pgx.ErrNoRows.
type Repo struct {
	CreateFn          func(ctx context.Context, u *models.User) error
	GetFn             func(ctx context.Context, id int) (*models.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*models.User, error)
	GetByIdentifierFn func(ctx context.Context, identifier string) (*models.User, error)
	ListFn            func(ctx context.Context) ([]*models.User, error)
	ListByRoleFn      func(ctx context.Context, role string) ([]*models.User, error)
	UpdateFn          func(ctx context.Context, u *models.User) error
	DeleteFn          func(ctx context.Context, id int) error
}

func (m *Repo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, id int) (*models.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if m.GetByIdentifierFn != nil {
		return m.GetByIdentifierFn(ctx, identifier)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) List(ctx context.Context) ([]*models.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByRole(ctx context.Context, role string) ([]*models.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, u *models.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
