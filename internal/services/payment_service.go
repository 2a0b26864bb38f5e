package services

import (
	"context"
	"errors"
	"log"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/metrics"
	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"
)

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id int) (*models.Payment, error)
	List(ctx context.Context, caseNumber string) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id int) error
}

type PaymentService struct {
	Repo PaymentStore
}

func NewPaymentService(repo PaymentStore) *PaymentService {
	return &PaymentService{Repo: repo}
}

func (s *PaymentService) Create(ctx context.Context, req *models.CreatePaymentRequest, createdBy string) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if !models.ValidPaymentMethod(req.Method) {
		return nil, errors.New("invalid payment method")
	}
	status := req.Status
	if status == "" {
		status = models.PaymentPending
	}
	if status != models.PaymentPending && status != models.PaymentCompleted && status != models.PaymentFailed {
		return nil, errors.New("invalid payment status")
	}

	p := &models.Payment{
		Customer:   req.Customer,
		CaseNumber: req.CaseNumber,
		Amount:     req.Amount,
		Date:       timeutil.Now(),
		Method:     req.Method,
		Status:     status,
		Proof:      req.Proof,
		CreatedBy:  createdBy,
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, storeErr(err)
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(p.Method).Inc()
	cache.InvalidateStats(ctx)
	log.Printf("[Payments] Recorded %.2f (%s) against %s", p.Amount, p.Method, p.CaseNumber)
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, caseNumber string) ([]*models.Payment, error) {
	payments, err := s.Repo.List(ctx, caseNumber)
	if err != nil {
		return nil, storeErr(err)
	}
	return payments, nil
}

func (s *PaymentService) Update(ctx context.Context, id int, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if req.Customer != nil {
		p.Customer = *req.Customer
	}
	if req.CaseNumber != nil {
		p.CaseNumber = *req.CaseNumber
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.Method != nil {
		if !models.ValidPaymentMethod(*req.Method) {
			return nil, errors.New("invalid payment method")
		}
		p.Method = *req.Method
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Proof != nil {
		p.Proof = *req.Proof
	}

	if p.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return nil
}
