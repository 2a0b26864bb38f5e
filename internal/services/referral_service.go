package services

import (
	"context"
	"errors"

	"recovery-backend/internal/models"
)

type ReferralStore interface {
	Create(ctx context.Context, ref *models.Referral) error
	List(ctx context.Context) ([]*models.Referral, error)
	Delete(ctx context.Context, id int) error
}

type ReferralService struct {
	Repo ReferralStore
}

func NewReferralService(repo ReferralStore) *ReferralService {
	return &ReferralService{Repo: repo}
}

func (s *ReferralService) Create(ctx context.Context, req *models.CreateReferralRequest) (*models.Referral, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, errors.New("phone must be 10 digits")
	}

	ref := &models.Referral{
		Name:        req.Name,
		Phone:       req.Phone,
		Cases:       req.Cases,
		SuccessRate: req.SuccessRate,
		Commission:  req.Commission,
	}
	if err := s.Repo.Create(ctx, ref); err != nil {
		return nil, storeErr(err)
	}
	return ref, nil
}

func (s *ReferralService) List(ctx context.Context) ([]*models.Referral, error) {
	refs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return refs, nil
}

func (s *ReferralService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
