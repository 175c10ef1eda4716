package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/vploshikov/gocrm/internal/models"
)

// CreateEmailLog inserts a simulated-send row into the log
func (s *Storage) CreateEmailLog(ctx context.Context, email *models.EmailLog) error {
	query := `
		INSERT INTO email_logs (to_email, subject, body, created_by, sent_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		email.ToEmail,
		email.Subject,
		email.Body,
		email.CreatedBy,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to insert email log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get email log id: %w", err)
	}
	email.ID = id
	email.SentAt = now

	return nil
}

// ListEmailLogs returns the most recent log rows, newest first
func (s *Storage) ListEmailLogs(ctx context.Context, limit int) ([]*models.EmailLog, error) {
	query := `
		SELECT id, to_email, subject, body, created_by, sent_at
		FROM email_logs
		ORDER BY sent_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer rows.Close()

	var emails []*models.EmailLog
	for rows.Next() {
		email := &models.EmailLog{}
		err := rows.Scan(
			&email.ID,
			&email.ToEmail,
			&email.Subject,
			&email.Body,
			&email.CreatedBy,
			&email.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email log: %w", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate email logs: %w", err)
	}

	return emails, nil
}
