package models

import "fmt"

// CaseStatus is the lifecycle state of a recovery case.
// Transitions are one-way: Pending -> In Progress -> Solved.
type CaseStatus string

const (
	StatusPending    CaseStatus = "Pending"
	StatusInProgress CaseStatus = "In Progress"
	StatusSolved     CaseStatus = "Solved"
)

// ValidCaseStatus reports whether s is a known case status.
func ValidCaseStatus(s CaseStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusSolved:
		return true
	}
	return false
}

// CanTransitionTo is the single transition guard consulted by every
// mutating path (assign, complete, and generic case updates).
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	if s == next {
		return true // no-op updates are allowed
	}
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusSolved
	}
	return false
}

// TransitionTo returns next if the transition is legal, or an error
// naming both states.
func (s CaseStatus) TransitionTo(next CaseStatus) (CaseStatus, error) {
	if !ValidCaseStatus(next) {
		return s, fmt.Errorf("unknown case status %q", next)
	}
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("cannot move case from %q to %q", s, next)
	}
	return next, nil
}
