package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
)

// CreateTask inserts a task owned by task.UserID
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (user_id, contact_id, title, description, status, due_date, created_by, updated_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		task.UserID,
		task.ContactID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.CreatedBy,
		task.UpdatedBy,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get task id: %w", err)
	}
	task.ID = id
	task.CreatedAt = now

	return nil
}

// ListTasks returns the user's tasks, newest first, with the contact
// name joined in from the contacts table
func (s *Storage) ListTasks(ctx context.Context, userID int64) ([]*models.Task, error) {
	query := `
		SELECT t.id, t.user_id, t.contact_id, t.title, t.description, t.status, t.due_date,
			t.created_by, t.updated_by, t.created_at, c.contact_full_name AS contact_name
		FROM tasks t
		LEFT JOIN contacts c ON c.id = t.contact_id
		WHERE t.user_id = ?
		ORDER BY t.created_at DESC, t.id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows, true)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// GetTask returns one task scoped by id and owner
func (s *Storage) GetTask(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	query := `
		SELECT id, user_id, contact_id, title, description, status, due_date, created_by, updated_by, created_at
		FROM tasks
		WHERE id = ? AND user_id = ?
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, taskID, userID), false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return task, nil
}

// UpdateTask merges upd into the stored row, scoped by id and owner
func (s *Storage) UpdateTask(ctx context.Context, userID, taskID int64, upd storage.TaskUpdate) error {
	query := `
		UPDATE tasks
		SET title = COALESCE(?, title),
			description = COALESCE(?, description),
			status = COALESCE(?, status),
			due_date = COALESCE(?, due_date),
			contact_id = COALESCE(?, contact_id),
			updated_by = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		upd.Title,
		upd.Description,
		upd.Status,
		upd.DueDate,
		upd.ContactID,
		userID,
		taskID,
		userID,
	)

	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteTask removes a task scoped by id and owner
func (s *Storage) DeleteTask(ctx context.Context, userID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func scanTask(row scanner, withContactName bool) (*models.Task, error) {
	task := &models.Task{}
	var contactID sql.NullInt64

	dest := []any{
		&task.ID,
		&task.UserID,
		&contactID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.DueDate,
		&task.CreatedBy,
		&task.UpdatedBy,
		&task.CreatedAt,
	}
	if withContactName {
		dest = append(dest, &task.ContactName)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	if contactID.Valid {
		task.ContactID = &contactID.Int64
	}

	return task, nil
}
