package storage

import (
	"context"

	"github.com/vploshikov/gocrm/internal/models"
)

// TaskUpdate carries a merge-update for a task. Nil fields keep their
// stored value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
	ContactID   *int64
}

// TaskStorage defines interface for ownership-scoped task access.
type TaskStorage interface {
	// CreateTask inserts a task owned by task.UserID and fills in its
	// assigned ID.
	CreateTask(ctx context.Context, task *models.Task) error

	// ListTasks returns the user's tasks, newest first, with the
	// contact's full name joined in when a contact is referenced.
	ListTasks(ctx context.Context, userID int64) ([]*models.Task, error)

	// GetTask returns one task scoped by id and owner.
	// Returns ErrNotFound when no row matches.
	GetTask(ctx context.Context, userID, taskID int64) (*models.Task, error)

	// UpdateTask merges upd into the stored row, scoped by id and owner.
	// Returns ErrNotFound when no row matches.
	UpdateTask(ctx context.Context, userID, taskID int64, upd TaskUpdate) error

	// DeleteTask removes a task scoped by id and owner.
	// Returns ErrNotFound when no row matches.
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// EmailStorage defines interface for the simulated email log.
type EmailStorage interface {
	// CreateEmailLog inserts a log row and fills in its assigned ID.
	CreateEmailLog(ctx context.Context, email *models.EmailLog) error

	// ListEmailLogs returns the most recent log rows, newest first,
	// capped at limit.
	ListEmailLogs(ctx context.Context, limit int) ([]*models.EmailLog, error)
}
