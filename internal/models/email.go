package models

import "time"

// EmailLog is a row in the simulated outbox. Nothing is actually sent;
// the log is shared between all authenticated users.
type EmailLog struct {
	ToEmail   string    `json:"to_email"`
	Subject   string    `json:"subject"`
	Body      *string   `json:"body"`
	SentAt    time.Time `json:"sent_at"`
	ID        int64     `json:"id"`
	CreatedBy int64     `json:"created_by"`
}
