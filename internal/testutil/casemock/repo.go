package casemock

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// Repo is a function-backed mock that satisfies services.CaseStore and
// services.OfferCaseStore.
type Repo struct {
	CreateFn          func(ctx context.Context, cs *models.Case) error
	GetFn             func(ctx context.Context, id int) (*models.Case, error)
	ListFn            func(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error)
	UpdateFn          func(ctx context.Context, cs *models.Case) error
	DeleteFn          func(ctx context.Context, id int) error
	AssignFn          func(ctx context.Context, caseID, agentID int, amount float64, note, addedBy string) error
	CompleteFn        func(ctx context.Context, caseID, cibilBefore, cibilAfter int, note, addedBy string) error
	AddNoteFn         func(ctx context.Context, note *models.CaseNote) error
	ListNotesFn       func(ctx context.Context, caseID int) ([]models.CaseNote, error)
	SetDocumentFn     func(ctx context.Context, caseID int, field, filename string) error
	SetPaymentProofFn func(ctx context.Context, caseID int, proofURL string) error
}

func (m *Repo) Create(ctx context.Context, cs *models.Case) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cs)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, id int) (*models.Case, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *Repo) List(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, cs *models.Case) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, cs)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) Assign(ctx context.Context, caseID, agentID int, amount float64, note, addedBy string) error {
	if m.AssignFn != nil {
		return m.AssignFn(ctx, caseID, agentID, amount, note, addedBy)
	}
	return nil
}

func (m *Repo) Complete(ctx context.Context, caseID, cibilBefore, cibilAfter int, note, addedBy string) error {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, caseID, cibilBefore, cibilAfter, note, addedBy)
	}
	return nil
}

func (m *Repo) AddNote(ctx context.Context, note *models.CaseNote) error {
	if m.AddNoteFn != nil {
		return m.AddNoteFn(ctx, note)
	}
	return nil
}

func (m *Repo) ListNotes(ctx context.Context, caseID int) ([]models.CaseNote, error) {
	if m.ListNotesFn != nil {
		return m.ListNotesFn(ctx, caseID)
	}
	return nil, nil
}

func (m *Repo) SetDocument(ctx context.Context, caseID int, field, filename string) error {
	if m.SetDocumentFn != nil {
		return m.SetDocumentFn(ctx, caseID, field, filename)
	}
	return nil
}

func (m *Repo) SetPaymentProof(ctx context.Context, caseID int, proofURL string) error {
	if m.SetPaymentProofFn != nil {
		return m.SetPaymentProofFn(ctx, caseID, proofURL)
	}
	return nil
}
