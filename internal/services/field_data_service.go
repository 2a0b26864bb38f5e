package services

import (
	"context"
	"errors"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
)

type FieldDataStore interface {
	Create(ctx context.Context, fd *models.FieldData) error
	List(ctx context.Context, marketingID int) ([]*models.FieldData, error)
	Delete(ctx context.Context, id int) error
}

type FieldDataService struct {
	Repo FieldDataStore
}

func NewFieldDataService(repo FieldDataStore) *FieldDataService {
	return &FieldDataService{Repo: repo}
}

func (s *FieldDataService) Create(ctx context.Context, req *models.CreateFieldDataRequest) (*models.FieldData, error) {
	if req.BankName == "" {
		return nil, errors.New("bankName is required")
	}
	if req.ManagerPhone != "" && !phonePattern.MatchString(req.ManagerPhone) {
		return nil, errors.New("managerPhone must be 10 digits")
	}

	fd := &models.FieldData{
		BankName:       req.BankName,
		BankArea:       req.BankArea,
		ManagerName:    req.ManagerName,
		ManagerPhone:   req.ManagerPhone,
		ManagerType:    req.ManagerType,
		ExecutiveCode:  req.ExecutiveCode,
		CollectionData: req.CollectionData,
		MarketingID:    req.MarketingID,
	}
	if err := s.Repo.Create(ctx, fd); err != nil {
		return nil, storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return fd, nil
}

func (s *FieldDataService) List(ctx context.Context, marketingID int) ([]*models.FieldData, error) {
	entries, err := s.Repo.List(ctx, marketingID)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *FieldDataService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return nil
}
