package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
)

// CreateContact inserts a contact owned by contact.UserID
func (s *Storage) CreateContact(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (user_id, contact_first_name, contact_last_name, contact_number,
			contact_email, note, created_by, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		contact.UserID,
		contact.FirstName,
		contact.LastName,
		contact.Number,
		contact.Email,
		contact.Note,
		contact.CreatedBy,
		contact.UpdatedBy,
		now,
		now,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get contact id: %w", err)
	}
	contact.ID = id
	contact.CreatedAt = now
	contact.UpdatedAt = now

	return nil
}

const contactColumns = `id, user_id, contact_first_name, contact_last_name, contact_number,
	contact_email, note, contact_full_name, created_by, updated_by, created_at, updated_at`

// ListContacts returns all contacts owned by userID
func (s *Storage) ListContacts(ctx context.Context, userID int64) ([]*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_id = ? ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// GetContact returns one contact scoped by id and owner
func (s *Storage) GetContact(ctx context.Context, userID, contactID int64) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ? AND user_id = ?`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, contactID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return contact, nil
}

// UpdateContact merges upd into the stored row, scoped by id and owner
func (s *Storage) UpdateContact(ctx context.Context, userID, contactID int64, upd storage.ContactUpdate) error {
	// COALESCE keeps the stored value for every field the request omitted
	query := `
		UPDATE contacts
		SET contact_first_name = COALESCE(?, contact_first_name),
			contact_last_name = COALESCE(?, contact_last_name),
			contact_number = COALESCE(?, contact_number),
			contact_email = COALESCE(?, contact_email),
			note = COALESCE(?, note),
			updated_by = ?,
			updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		upd.FirstName,
		upd.LastName,
		upd.Number,
		upd.Email,
		upd.Note,
		userID,
		time.Now(),
		contactID,
		userID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("failed to update contact: %w", err)
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

// DeleteContact removes a contact scoped by id and owner
func (s *Storage) DeleteContact(ctx context.Context, userID, contactID int64) error {
	query := `DELETE FROM contacts WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, contactID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
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

// ContactExists reports whether contactID belongs to userID
func (s *Storage) ContactExists(ctx context.Context, userID, contactID int64) (bool, error) {
	query := `SELECT 1 FROM contacts WHERE id = ? AND user_id = ?`

	var one int
	err := s.db.QueryRowContext(ctx, query, contactID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check contact: %w", err)
	}

	return true, nil
}

// ListAddressesByContacts returns all addresses of the given contacts
func (s *Storage) ListAddressesByContacts(ctx context.Context, contactIDs []int64) ([]*models.Address, error) {
	if len(contactIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, contact_id, address_line1, address_line2, city, state, pincode, country, created_by, created_at
		FROM contact_addresses
		WHERE contact_id IN (` + placeholders(len(contactIDs)) + `)
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, int64Args(contactIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	var addresses []*models.Address
	for rows.Next() {
		address := &models.Address{}
		err := rows.Scan(
			&address.ID,
			&address.ContactID,
			&address.Line1,
			&address.Line2,
			&address.City,
			&address.State,
			&address.Pincode,
			&address.Country,
			&address.CreatedBy,
			&address.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}

	return addresses, nil
}

// ListTasksByContacts returns all tasks referencing the given contacts
func (s *Storage) ListTasksByContacts(ctx context.Context, contactIDs []int64) ([]*models.Task, error) {
	if len(contactIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, user_id, contact_id, title, description, status, due_date, created_by, updated_by, created_at
		FROM tasks
		WHERE contact_id IN (` + placeholders(len(contactIDs)) + `)
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, int64Args(contactIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by contacts: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows, false)
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

// CreateAddress inserts an address for an already ownership-checked contact
func (s *Storage) CreateAddress(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO contact_addresses (contact_id, address_line1, address_line2, city, state, pincode, country, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		address.ContactID,
		address.Line1,
		address.Line2,
		address.City,
		address.State,
		address.Pincode,
		address.Country,
		address.CreatedBy,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get address id: %w", err)
	}
	address.ID = id
	address.CreatedAt = now

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	contact := &models.Contact{}
	err := row.Scan(
		&contact.ID,
		&contact.UserID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Number,
		&contact.Email,
		&contact.Note,
		&contact.FullName,
		&contact.CreatedBy,
		&contact.UpdatedBy,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return contact, nil
}

// placeholders returns "?, ?, ..." for an IN clause of n bound values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
