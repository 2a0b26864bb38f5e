package models

import "time"

// Expense is money spent by a user (travel, advance, misc)
type Expense struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"` // joined from users
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Advance     float64   `json:"advance"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	UserID      int        `json:"userId"`
	Date        *time.Time `json:"date"`
	Amount      float64    `json:"amount"`
	Advance     float64    `json:"advance"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
}
