package models

import "time"

// Followup statuses (lead lifecycle, telecaller-driven)
const (
	FollowupPending      = "Pending"
	FollowupCompleted    = "Completed"
	FollowupRejected     = "Rejected"
	FollowupCallBack     = "Call Back"
	FollowupInProgress   = "In Progress"
	FollowupConnected    = "Connected"
	FollowupNotConnected = "Not Connected"
	FollowupSuccess      = "Success"
)

// ValidFollowupStatus reports whether s is a known followup status.
func ValidFollowupStatus(s string) bool {
	switch s {
	case FollowupPending, FollowupCompleted, FollowupRejected, FollowupCallBack,
		FollowupInProgress, FollowupConnected, FollowupNotConnected, FollowupSuccess:
		return true
	}
	return false
}

// Followup is a pre-conversion lead contact record managed by a telecaller
type Followup struct {
	ID           int        `json:"id"`
	Time         time.Time  `json:"time"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Response     string     `json:"response"`
	IssueType    string     `json:"issue_type"`
	Village      string     `json:"village"`
	Status       string     `json:"status"`
	CallbackTime *time.Time `json:"callback_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateFollowupRequest represents the request body for creating a followup
type CreateFollowupRequest struct {
	Time         *time.Time `json:"time"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Response     string     `json:"response"`
	IssueType    string     `json:"issueType"`
	Village      string     `json:"village"`
	Status       string     `json:"status"`
	CallbackTime *time.Time `json:"callbackTime"`
}

// UpdateFollowupRequest represents the request body for recording a call outcome
type UpdateFollowupRequest struct {
	Response     *string    `json:"response"`
	IssueType    *string    `json:"issueType"`
	Village      *string    `json:"village"`
	Status       *string    `json:"status"`
	CallbackTime *time.Time `json:"callbackTime"`
}
