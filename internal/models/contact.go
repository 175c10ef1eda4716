package models

import "time"

// Contact belongs to exactly one user. ContactFullName is a denormalized
// column maintained by the database (generated from first and last name),
// the application never writes it.
type Contact struct {
	FirstName    string    `json:"contact_first_name"`
	LastName     string    `json:"contact_last_name"`
	Number       string    `json:"contact_number"`
	Email        *string   `json:"contact_email"`
	Note         *string   `json:"note"`
	FullName     string    `json:"contact_full_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	CreatedBy    int64     `json:"created_by"`
	UpdatedBy    int64     `json:"updated_by"`
}

// Address belongs to a contact; ownership is transitive through the contact.
type Address struct {
	Line1     string    `json:"address_line1"`
	Line2     *string   `json:"address_line2"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	Pincode   *string   `json:"pincode"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	ID        int64     `json:"id"`
	ContactID int64     `json:"contact_id"`
	CreatedBy int64     `json:"created_by"`
}
