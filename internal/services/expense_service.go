package services

import (
	"context"
	"errors"

	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"
)

type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	List(ctx context.Context, userID int) ([]*models.Expense, error)
	Delete(ctx context.Context, id int) error
}

type ExpenseService struct {
	Repo ExpenseStore
}

func NewExpenseService(repo ExpenseStore) *ExpenseService {
	return &ExpenseService{Repo: repo}
}

func (s *ExpenseService) Create(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if req.UserID == 0 {
		return nil, errors.New("userId is required")
	}
	if req.Amount < 0 || req.Advance < 0 {
		return nil, errors.New("amounts cannot be negative")
	}

	e := &models.Expense{
		UserID:      req.UserID,
		Date:        timeutil.Now(),
		Amount:      req.Amount,
		Advance:     req.Advance,
		Type:        req.Type,
		Description: req.Description,
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, storeErr(err)
	}
	return e, nil
}

func (s *ExpenseService) List(ctx context.Context, userID int) ([]*models.Expense, error) {
	expenses, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return expenses, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
