package services

import (
	"context"
	"errors"
	"time"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"
)

type CallLogStore interface {
	Create(ctx context.Context, cl *models.CallLog) error
	List(ctx context.Context, limit int) ([]*models.CallLog, error)
	ListSince(ctx context.Context, since time.Time) ([]*models.CallLog, error)
}

type CallLogService struct {
	Repo CallLogStore
}

func NewCallLogService(repo CallLogStore) *CallLogService {
	return &CallLogService{Repo: repo}
}

// Create appends a call record. Logs are never edited or deleted.
func (s *CallLogService) Create(ctx context.Context, req *models.CreateCallLogRequest) (*models.CallLog, error) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, errors.New("phone must be 10 digits")
	}

	cl := &models.CallLog{
		Time:         timeutil.Now(),
		Customer:     req.Customer,
		Phone:        req.Phone,
		Duration:     req.Duration,
		Status:       req.Status,
		Response:     req.Response,
		CallbackTime: req.CallbackTime,
	}
	if req.Time != nil {
		cl.Time = *req.Time
	}
	if err := s.Repo.Create(ctx, cl); err != nil {
		return nil, storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return cl, nil
}

func (s *CallLogService) List(ctx context.Context, limit int) ([]*models.CallLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.Repo.List(ctx, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}

// ListSince returns every call logged at or after the given instant,
// oldest first.
func (s *CallLogService) ListSince(ctx context.Context, since time.Time) ([]*models.CallLog, error) {
	logs, err := s.Repo.ListSince(ctx, since)
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}
