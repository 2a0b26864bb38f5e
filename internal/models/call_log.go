package models

import "time"

// CallLog is an append-only audit record of a call attempt.
// Customer is the dialled party's name as typed, not a case reference.
type CallLog struct {
	ID           int        `json:"id"`
	Time         time.Time  `json:"time"`
	Customer     string     `json:"customer"`
	Phone        string     `json:"phone"`
	Duration     string     `json:"duration"`
	Status       string     `json:"status"` // Connected, Not Connected, Call Back, Rejected
	Response     string     `json:"response"`
	CallbackTime *time.Time `json:"callback_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateCallLogRequest represents the request body for logging a call
type CreateCallLogRequest struct {
	Time         *time.Time `json:"time"`
	Customer     string     `json:"customer"`
	Phone        string     `json:"phone"`
	Duration     string     `json:"duration"`
	Status       string     `json:"status"`
	Response     string     `json:"response"`
	CallbackTime *time.Time `json:"callbackTime"`
}
