package services

import (
	"context"
	"errors"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"
)

type FollowupStore interface {
	Create(ctx context.Context, f *models.Followup) error
	Get(ctx context.Context, id int) (*models.Followup, error)
	List(ctx context.Context, status, phone string) ([]*models.Followup, error)
	Update(ctx context.Context, f *models.Followup) error
	Delete(ctx context.Context, id int) error
}

type FollowupService struct {
	Repo FollowupStore
}

func NewFollowupService(repo FollowupStore) *FollowupService {
	return &FollowupService{Repo: repo}
}

func (s *FollowupService) Create(ctx context.Context, req *models.CreateFollowupRequest) (*models.Followup, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, errors.New("phone must be 10 digits")
	}

	status := req.Status
	if status == "" {
		status = models.FollowupPending
	}
	if !models.ValidFollowupStatus(status) {
		return nil, errors.New("invalid followup status")
	}

	f := &models.Followup{
		Time:         timeutil.Now(),
		Name:         req.Name,
		Phone:        req.Phone,
		Response:     req.Response,
		IssueType:    req.IssueType,
		Village:      req.Village,
		Status:       status,
		CallbackTime: req.CallbackTime,
	}
	if req.Time != nil {
		f.Time = *req.Time
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return f, nil
}

func (s *FollowupService) List(ctx context.Context, status, phone string) ([]*models.Followup, error) {
	if status != "" && !models.ValidFollowupStatus(status) {
		return nil, errors.New("invalid followup status")
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, errors.New("phone must be 10 digits")
	}
	followups, err := s.Repo.List(ctx, status, phone)
	if err != nil {
		return nil, storeErr(err)
	}
	return followups, nil
}

// Update records a call outcome against an existing lead.
func (s *FollowupService) Update(ctx context.Context, id int, req *models.UpdateFollowupRequest) (*models.Followup, error) {
	f, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if req.Response != nil {
		f.Response = *req.Response
	}
	if req.IssueType != nil {
		f.IssueType = *req.IssueType
	}
	if req.Village != nil {
		f.Village = *req.Village
	}
	if req.Status != nil {
		if !models.ValidFollowupStatus(*req.Status) {
			return nil, errors.New("invalid followup status")
		}
		f.Status = *req.Status
	}
	if req.CallbackTime != nil {
		f.CallbackTime = req.CallbackTime
	}

	if err := s.Repo.Update(ctx, f); err != nil {
		return nil, storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return f, nil
}

func (s *FollowupService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return nil
}
