package models

import "time"

// Task statuses. The database defaults new tasks to pending.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task belongs to a user and optionally references one of that user's
// contacts. ContactName is filled by the list query from the contact's
// generated full-name column, it is never stored on the task row.
type Task struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"due_date"`
	ContactID   *int64    `json:"contact_id"`
	ContactName *string   `json:"contact_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CreatedBy   int64     `json:"created_by"`
	UpdatedBy   int64     `json:"updated_by"`
}
