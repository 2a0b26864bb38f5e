package models

import "time"

// Case priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Case is a loan-recovery engagement tracked from lead conversion to
// resolution. It is the single source of truth for what the telecaller
// UI calls a "customer" and the agent UI calls a "case".
type Case struct {
	ID             int        `json:"id"`
	CaseNumber     string     `json:"case_number"` // CASE-0001, unique, sequence-backed
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Aadhaar        string     `json:"aadhaar"`
	Pan            string     `json:"pan"`
	Cibil          int        `json:"cibil"` // 300-900
	Address        string     `json:"address"`
	Problem        string     `json:"problem"`
	Bank           string     `json:"bank"`
	OtherBank      string     `json:"other_bank,omitempty"`
	LoanType       string     `json:"loan_type"`
	AccountNumber  string     `json:"account_number"` // 9-18 digits
	Issues         []string   `json:"issues"`
	PageNumber     string     `json:"page_number"`
	ReferredPerson string     `json:"referred_person"`
	TelecallerID   int        `json:"telecaller_id"`
	TelecallerName string     `json:"telecaller_name"`
	Status         CaseStatus `json:"status"`
	AssignedTo     *int       `json:"assigned_to"` // nil until an agent is assigned
	AssignedName   string     `json:"assigned_name,omitempty"`
	AssignedDate   *time.Time `json:"assigned_date,omitempty"`
	ResolvedDate   *time.Time `json:"resolved_date,omitempty"`
	Amount         float64    `json:"amount"`
	CibilBefore    int        `json:"cibil_before,omitempty"`
	CibilAfter     int        `json:"cibil_after,omitempty"`
	Priority       string     `json:"priority"`

	// Uploaded document filenames, served read-only under /uploads/
	AadhaarDoc          string `json:"aadhaar_doc,omitempty"`
	PanDoc              string `json:"pan_doc,omitempty"`
	AccountStatementDoc string `json:"account_statement_doc,omitempty"`
	PaymentProofDoc     string `json:"payment_proof_doc,omitempty"`

	Notes     []CaseNote `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CaseNote is an audit note appended to a case
type CaseNote struct {
	ID      int       `json:"id"`
	CaseID  int       `json:"case_id"`
	Content string    `json:"content"`
	AddedBy string    `json:"added_by"`
	AddedAt time.Time `json:"added_at"`
}

// CreateCaseRequest represents the request body for creating a case
type CreateCaseRequest struct {
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Aadhaar        string   `json:"aadhaar"`
	Pan            string   `json:"pan"`
	Cibil          int      `json:"cibil"`
	Address        string   `json:"address"`
	Problem        string   `json:"problem"`
	Bank           string   `json:"bank"`
	OtherBank      string   `json:"otherBank"`
	LoanType       string   `json:"loanType"`
	AccountNumber  string   `json:"accountNumber"`
	Issues         []string `json:"issues"`
	PageNumber     string   `json:"pageNumber"`
	ReferredPerson string   `json:"referredPerson"`
	TelecallerID   int      `json:"telecallerId"`
	TelecallerName string   `json:"telecallerName"`
	Priority       string   `json:"priority"`
}

// UpdateCaseRequest represents the request body for updating a case.
// Pointer fields distinguish "not sent" from zero values.
type UpdateCaseRequest struct {
	Name           *string     `json:"name"`
	Phone          *string     `json:"phone"`
	Email          *string     `json:"email"`
	Aadhaar        *string     `json:"aadhaar"`
	Pan            *string     `json:"pan"`
	Cibil          *int        `json:"cibil"`
	Address        *string     `json:"address"`
	Problem        *string     `json:"problem"`
	Bank           *string     `json:"bank"`
	OtherBank      *string     `json:"otherBank"`
	LoanType       *string     `json:"loanType"`
	AccountNumber  *string     `json:"accountNumber"`
	Issues         []string    `json:"issues"`
	PageNumber     *string     `json:"pageNumber"`
	ReferredPerson *string     `json:"referredPerson"`
	Status         *CaseStatus `json:"status"`
	Amount         *float64    `json:"amount"`
	Priority       *string     `json:"priority"`
}

// AssignCaseRequest represents the request body for assigning a case to an agent
type AssignCaseRequest struct {
	AgentID int     `json:"agentId"`
	Amount  float64 `json:"amount"`
}

// CompleteCaseRequest represents the request body for completing a case
type CompleteCaseRequest struct {
	CibilBefore int `json:"cibilBefore"`
	CibilAfter  int `json:"cibilAfter"`
}

// AddNoteRequest represents the request body for appending a case note
type AddNoteRequest struct {
	Content string `json:"content"`
}

// CaseFilter narrows case listings
type CaseFilter struct {
	Status       CaseStatus
	AssignedTo   int
	TelecallerID int
}
