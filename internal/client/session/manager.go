package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vploshikov/gocrm/internal/client/storage"
)

// ErrNotAuthenticated is returned when no valid session exists
var ErrNotAuthenticated = errors.New("not authenticated")

// Manager keeps the current session in persistent storage and schedules
// an automatic sign-out when the token expires. A single timer is armed
// at any moment; storing a new token replaces the previous timer instead
// of stacking another one.
type Manager struct {
	store    storage.AuthStorage
	logger   *slog.Logger
	onExpire func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewManager creates a session manager. onExpire is invoked after the
// stored session is cleared by the expiry timer; it may be nil.
func NewManager(store storage.AuthStorage, logger *slog.Logger, onExpire func()) *Manager {
	return &Manager{
		store:    store,
		logger:   logger,
		onExpire: onExpire,
	}
}

// Save persists a freshly issued token and re-arms the expiry timer.
// expiresIn is the token lifetime in seconds as reported by the server.
func (m *Manager) Save(ctx context.Context, token string, expiresIn int64) error {
	auth := &storage.AuthData{
		Token:     token,
		ExpiresAt: time.Now().Unix() + expiresIn,
	}

	if err := m.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	m.arm(time.Duration(expiresIn) * time.Second)

	return nil
}

// Token returns the stored token. An expired session is treated the same
// as a missing one: the stale record is removed and ErrNotAuthenticated
// is returned.
func (m *Manager) Token(ctx context.Context) (string, error) {
	auth, err := m.Info(ctx)
	if err != nil {
		return "", err
	}
	return auth.Token, nil
}

// Info returns the stored session record, applying the same expiry
// handling as Token.
func (m *Manager) Info(ctx context.Context) (*storage.AuthData, error) {
	auth, err := m.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if auth.Expired() {
		if delErr := m.store.DeleteAuth(ctx); delErr != nil && !errors.Is(delErr, storage.ErrAuthNotFound) {
			m.logger.Warn("failed to remove expired session", "error", delErr)
		}
		return nil, ErrNotAuthenticated
	}

	return auth, nil
}

// Resume re-arms the expiry timer for a session that survived a restart.
// An already-expired session is removed immediately.
func (m *Manager) Resume(ctx context.Context) error {
	auth, err := m.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	remaining := time.Until(time.Unix(auth.ExpiresAt, 0))
	if remaining <= 0 {
		if delErr := m.store.DeleteAuth(ctx); delErr != nil && !errors.Is(delErr, storage.ErrAuthNotFound) {
			m.logger.Warn("failed to remove expired session", "error", delErr)
		}
		return nil
	}

	m.arm(remaining)

	return nil
}

// Clear removes the stored session and cancels the expiry timer.
// Clearing an absent session is not an error.
func (m *Manager) Clear(ctx context.Context) error {
	m.stop()

	if err := m.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Close cancels the expiry timer without touching the stored session.
func (m *Manager) Close() {
	m.stop()
}

// arm replaces the current expiry timer with one firing after d
func (m *Manager) arm(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}

	m.timer = time.AfterFunc(d, m.expire)
}

func (m *Manager) stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// expire runs on the timer goroutine when the token lifetime elapses
func (m *Manager) expire() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		m.logger.Warn("failed to remove session on expiry", "error", err)
	}

	m.logger.Info("session expired, signed out")

	if m.onExpire != nil {
		m.onExpire()
	}
}
