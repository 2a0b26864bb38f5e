package models

import "time"

// Payment methods
const (
	MethodCash         = "Cash"
	MethodUPI          = "UPI"
	MethodBankTransfer = "Bank Transfer"
	MethodCheque       = "Cheque"
	MethodOnline       = "Online"
)

// Payment statuses
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCash, MethodUPI, MethodBankTransfer, MethodCheque, MethodOnline:
		return true
	}
	return false
}

// Payment records money collected against a case. Customer and
// CaseNumber are free text, matching how accountants enter them.
type Payment struct {
	ID         int       `json:"id"`
	Customer   string    `json:"customer"`
	CaseNumber string    `json:"case_number"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	Proof      string    `json:"proof,omitempty"` // uploaded filename
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	Customer   string     `json:"customer"`
	CaseNumber string     `json:"caseNumber"`
	Amount     float64    `json:"amount"`
	Date       *time.Time `json:"date"`
	Method     string     `json:"method"`
	Status     string     `json:"status"`
	Proof      string     `json:"proof"`
}

// UpdatePaymentRequest represents the request body for updating a payment
type UpdatePaymentRequest struct {
	Customer   *string    `json:"customer"`
	CaseNumber *string    `json:"caseNumber"`
	Amount     *float64   `json:"amount"`
	Date       *time.Time `json:"date"`
	Method     *string    `json:"method"`
	Status     *string    `json:"status"`
	Proof      *string    `json:"proof"`
}
