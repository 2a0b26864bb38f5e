package models

import "time"

// User roles
const (
	RoleAdmin      = "admin"
	RoleAgent      = "agent"
	RoleTelecaller = "telecaller"
	RoleMarketing  = "marketing"
	RoleReferral   = "referral"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleTelecaller, RoleMarketing, RoleReferral:
		return true
	}
	return false
}

type User struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"` // Never expose in JSON
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone"`
	Role           string     `json:"role"` // admin, agent, telecaller, marketing, referral
	IsActive       bool       `json:"is_active"`
	AssignedCases  int        `json:"assigned_cases"`
	LastAssignment *time.Time `json:"last_assignment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role,omitempty"` // defaults to telecaller
}

// LoginRequest represents the request body for login.
// Identifier accepts either username or email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"` // Optional
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	IsActive  *bool  `json:"is_active,omitempty"`
}
