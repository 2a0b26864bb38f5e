package models

import "time"

// OnlineTransaction tracks a Razorpay order raised for collecting a
// settlement amount online, from order creation to webhook capture.
type OnlineTransaction struct {
	ID            int       `json:"id"`
	OrderID       string    `json:"order_id"` // razorpay order id
	CaseNumber    string    `json:"case_number"`
	Customer      string    `json:"customer"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"` // created, paid, failed
	PaymentID     string    `json:"payment_id,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateOrderRequest represents the request body for raising an online collection order
type CreateOrderRequest struct {
	CaseNumber string  `json:"caseNumber"`
	Customer   string  `json:"customer"`
	Amount     float64 `json:"amount"`
}
