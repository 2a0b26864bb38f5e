package services

import (
	"context"
	"errors"
	"log"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
	"recovery-backend/internal/repositories"
)

type OfferStore interface {
	Create(ctx context.Context, o *models.Offer) error
	Get(ctx context.Context, id int) (*models.Offer, error)
	GetByCaseID(ctx context.Context, caseID int) (*models.Offer, error)
	List(ctx context.Context, agentID int) ([]*models.Offer, error)
	Update(ctx context.Context, o *models.Offer) error
	DeleteOwned(ctx context.Context, id, agentID int) error
	Delete(ctx context.Context, id int) error
}

// OfferCaseStore is the slice of the case repository offers touch:
// ownership checks and mirroring the payment proof onto the case.
type OfferCaseStore interface {
	Get(ctx context.Context, id int) (*models.Case, error)
	SetPaymentProof(ctx context.Context, caseID int, proofURL string) error
}

type OfferService struct {
	Repo  OfferStore
	Cases OfferCaseStore
}

func NewOfferService(repo OfferStore, cases OfferCaseStore) *OfferService {
	return &OfferService{Repo: repo, Cases: cases}
}

// Create records a settlement offer. The case must be assigned to the
// requesting agent, and a case can carry at most one offer; the unique
// index on case_id catches the race the pre-check cannot.
func (s *OfferService) Create(ctx context.Context, agentID int, req *models.CreateOfferRequest) (*models.Offer, error) {
	if req.DealAmount <= 0 {
		return nil, errors.New("dealAmount must be positive")
	}
	if req.AdvancePaid < 0 || req.AdvancePaid > req.DealAmount {
		return nil, errors.New("advancePaid must be between 0 and dealAmount")
	}

	cs, err := s.Cases.Get(ctx, req.CaseID)
	if err != nil {
		return nil, errors.New("case not found")
	}
	if cs.AssignedTo == nil || *cs.AssignedTo != agentID {
		return nil, errors.New("case is not assigned to you")
	}
	if existing, err := s.Repo.GetByCaseID(ctx, req.CaseID); err == nil && existing != nil {
		return nil, errors.New("an offer already exists for this case")
	}

	o := &models.Offer{
		CaseID:          req.CaseID,
		AgentID:         agentID,
		DealAmount:      req.DealAmount,
		AdvancePaid:     req.AdvancePaid,
		CaseStatus:      req.CaseStatus,
		PaymentStatus:   req.PaymentStatus,
		PaymentProofURL: req.PaymentProofURL,
		Notes:           req.Notes,
	}
	o.RecomputePending()

	if err := s.Repo.Create(ctx, o); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, errors.New("an offer already exists for this case")
		}
		return nil, storeErr(err)
	}

	if o.PaymentProofURL != "" {
		if err := s.Cases.SetPaymentProof(ctx, o.CaseID, o.PaymentProofURL); err != nil {
			log.Printf("[Offers] Failed to mirror payment proof to case %d: %v", o.CaseID, err)
		}
	}
	o.CaseNumber = cs.CaseNumber
	cache.InvalidateStats(ctx)
	log.Printf("[Offers] Created offer for %s by agent %d", cs.CaseNumber, agentID)
	return o, nil
}

func (s *OfferService) List(ctx context.Context, agentID int) ([]*models.Offer, error) {
	offers, err := s.Repo.List(ctx, agentID)
	if err != nil {
		return nil, storeErr(err)
	}
	return offers, nil
}

// Update modifies an offer; only the agent who created it may touch it.
func (s *OfferService) Update(ctx context.Context, id, agentID int, req *models.UpdateOfferRequest) (*models.Offer, error) {
	o, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if o.AgentID != agentID {
		return nil, errors.New("offer belongs to another agent")
	}

	if req.DealAmount != nil {
		o.DealAmount = *req.DealAmount
	}
	if req.AdvancePaid != nil {
		o.AdvancePaid = *req.AdvancePaid
	}
	if req.CaseStatus != nil {
		o.CaseStatus = *req.CaseStatus
	}
	if req.PaymentStatus != nil {
		o.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentProofURL != nil {
		o.PaymentProofURL = *req.PaymentProofURL
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}

	if o.DealAmount <= 0 {
		return nil, errors.New("dealAmount must be positive")
	}
	if o.AdvancePaid < 0 || o.AdvancePaid > o.DealAmount {
		return nil, errors.New("advancePaid must be between 0 and dealAmount")
	}
	o.RecomputePending()

	if err := s.Repo.Update(ctx, o); err != nil {
		return nil, storeErr(err)
	}

	if req.PaymentProofURL != nil && o.PaymentProofURL != "" {
		if err := s.Cases.SetPaymentProof(ctx, o.CaseID, o.PaymentProofURL); err != nil {
			log.Printf("[Offers] Failed to mirror payment proof to case %d: %v", o.CaseID, err)
		}
	}
	cache.InvalidateStats(ctx)
	return o, nil
}

// Delete removes an offer scoped to the authenticated agent. The scope
// comes from the token, never from the request body.
func (s *OfferService) Delete(ctx context.Context, id, agentID int) error {
	if err := s.Repo.DeleteOwned(ctx, id, agentID); err != nil {
		return storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return nil
}

// DeleteAny removes an offer regardless of which agent raised it.
// Reserved for admins.
func (s *OfferService) DeleteAny(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return nil
}
