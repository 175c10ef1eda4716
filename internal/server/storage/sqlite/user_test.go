package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	user := &models.User{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		Phone:        "+15550001111",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.Phone, retrieved.Phone)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.Nil(t, retrieved.CreatedBy)
}

func TestUserStorage_CreateUser_Duplicates(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first := &models.User{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "taken@example.com",
		Phone:        "+15550001111",
		PasswordHash: "hash1",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, first))

	tests := []struct {
		name  string
		email string
		phone string
	}{
		{name: "duplicate email", email: "taken@example.com", phone: "+15550009999"},
		{name: "duplicate phone", email: "other@example.com", phone: "+15550001111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, &models.User{
				FirstName:    "Bob",
				LastName:     "Jones",
				Email:        tt.email,
				Phone:        tt.phone,
				PasswordHash: "hash2",
				CreatedAt:    time.Now(),
			})
			assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
		})
	}
}

func TestUserStorage_GetUserByIdentifier(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	user := &models.User{
		FirstName:    "Carol",
		LastName:     "White",
		Email:        "carol@example.com",
		Phone:        "+15550002222",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantError  error
		name       string
		identifier string
	}{
		{name: "by email", identifier: "carol@example.com"},
		{name: "by phone", identifier: "+15550002222"},
		{name: "unknown identifier", identifier: "nobody@example.com", wantError: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetUserByIdentifier(ctx, tt.identifier)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, retrieved.ID)
			}
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetUserByID(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
