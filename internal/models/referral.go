package models

import "time"

// Referral tracks a person who refers cases and their commission terms.
// SuccessRate and Commission stay strings because the office enters
// values like "70%" and "5% of recovery".
type Referral struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Cases       int       `json:"cases"`
	SuccessRate string    `json:"success_rate"`
	Commission  string    `json:"commission"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateReferralRequest represents the request body for creating a referral
type CreateReferralRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Cases       int    `json:"cases"`
	SuccessRate string `json:"successRate"`
	Commission  string `json:"commission"`
}
