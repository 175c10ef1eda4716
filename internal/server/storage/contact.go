package storage

import (
	"context"

	"github.com/vploshikov/gocrm/internal/models"
)

// ContactUpdate carries a merge-update for a contact. Nil fields keep
// their stored value.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Number    *string
	Email     *string
	Note      *string
}

// ContactStorage defines interface for ownership-scoped contact access.
// Every method that takes a userID filters by it in the same statement
// that matches the row id, so a foreign row behaves exactly like an
// absent one.
type ContactStorage interface {
	// CreateContact inserts a contact owned by contact.UserID and fills
	// in its assigned ID. Returns ErrDuplicate when the user already has
	// a contact with the same number.
	CreateContact(ctx context.Context, contact *models.Contact) error

	// ListContacts returns all contacts owned by userID.
	ListContacts(ctx context.Context, userID int64) ([]*models.Contact, error)

	// GetContact returns one contact scoped by id and owner.
	// Returns ErrNotFound when no row matches.
	GetContact(ctx context.Context, userID, contactID int64) (*models.Contact, error)

	// UpdateContact merges upd into the stored row, scoped by id and
	// owner. Returns ErrNotFound when no row matches, ErrDuplicate on a
	// number collision.
	UpdateContact(ctx context.Context, userID, contactID int64, upd ContactUpdate) error

	// DeleteContact removes a contact scoped by id and owner; child
	// addresses and tasks go with it. Returns ErrNotFound when no row
	// matches.
	DeleteContact(ctx context.Context, userID, contactID int64) error

	// ContactExists reports whether contactID belongs to userID.
	ContactExists(ctx context.Context, userID, contactID int64) (bool, error)

	// ListAddressesByContacts returns all addresses of the given
	// contacts, used to build nested contact listings.
	ListAddressesByContacts(ctx context.Context, contactIDs []int64) ([]*models.Address, error)

	// ListTasksByContacts returns all tasks referencing the given
	// contacts, used to build nested contact listings.
	ListTasksByContacts(ctx context.Context, contactIDs []int64) ([]*models.Task, error)

	// CreateAddress inserts an address and fills in its assigned ID.
	// The caller must have verified contact ownership.
	CreateAddress(ctx context.Context, address *models.Address) error
}
