package models

import "time"

// User represents a registered account. Email and phone are unique across
// all users; either one works as the login identifier.
type User struct {
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    *int64    `json:"created_by,omitempty"`
	ID           int64     `json:"id"`
}
