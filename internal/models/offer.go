package models

import "time"

// Offer is a negotiated settlement tied to a case and the agent who
// brokered it. At most one offer exists per case; the unique index on
// case_id is the authoritative guard, the service pre-check is only a
// fast path.
type Offer struct {
	ID              int       `json:"id"`
	CaseID          int       `json:"case_id"`
	CaseNumber      string    `json:"case_number,omitempty"`
	AgentID         int       `json:"agent_id"`
	DealAmount      float64   `json:"deal_amount"`
	AdvancePaid     float64   `json:"advance_paid"`
	PendingAmount   float64   `json:"pending_amount"` // always deal_amount - advance_paid
	CaseStatus      string    `json:"case_status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentProofURL string    `json:"payment_proof_url,omitempty"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RecomputePending derives the pending amount. Called on every save so
// stored rows can never drift from deal_amount - advance_paid.
func (o *Offer) RecomputePending() {
	o.PendingAmount = o.DealAmount - o.AdvancePaid
}

// CreateOfferRequest represents the request body for creating an offer
type CreateOfferRequest struct {
	CaseID          int     `json:"caseId"`
	DealAmount      float64 `json:"dealAmount"`
	AdvancePaid     float64 `json:"advancePaid"`
	CaseStatus      string  `json:"caseStatus"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentProofURL string  `json:"paymentProofUrl"`
	Notes           string  `json:"notes"`
}

// UpdateOfferRequest represents the request body for updating an offer
type UpdateOfferRequest struct {
	DealAmount      *float64 `json:"dealAmount"`
	AdvancePaid     *float64 `json:"advancePaid"`
	CaseStatus      *string  `json:"caseStatus"`
	PaymentStatus   *string  `json:"paymentStatus"`
	PaymentProofURL *string  `json:"paymentProofUrl"`
	Notes           *string  `json:"notes"`
}
