package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// authedRequest builds a request whose context already carries the user
// id, as the auth middleware would have left it.
func authedRequest(t *testing.T, method, target string, body string, userID int64) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// mockUserStorage is a map-backed UserStorage
type mockUserStorage struct {
	users       map[int64]*models.User
	nextID      int64
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: map[int64]*models.User{}, nextID: 1}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	for _, existing := range m.users {
		if existing.Email == user.Email || existing.Phone == user.Phone {
			return storage.ErrUserAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStorage) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.Email == identifier || user.Phone == identifier {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

// mockContactStorage is a map-backed ContactStorage
type mockContactStorage struct {
	contacts    map[int64]*models.Contact
	addresses   map[int64]*models.Address
	tasks       map[int64]*models.Task
	nextID      int64
	createError error
	listError   error
}

func newMockContactStorage() *mockContactStorage {
	return &mockContactStorage{
		contacts:  map[int64]*models.Contact{},
		addresses: map[int64]*models.Address{},
		tasks:     map[int64]*models.Task{},
		nextID:    1,
	}
}

func (m *mockContactStorage) CreateContact(ctx context.Context, contact *models.Contact) error {
	if m.createError != nil {
		return m.createError
	}
	for _, existing := range m.contacts {
		if existing.UserID == contact.UserID && existing.Number == contact.Number {
			return storage.ErrDuplicate
		}
	}
	contact.ID = m.nextID
	contact.FullName = contact.FirstName + " " + contact.LastName
	m.nextID++
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactStorage) ListContacts(ctx context.Context, userID int64) ([]*models.Contact, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var result []*models.Contact
	for _, contact := range m.contacts {
		if contact.UserID == userID {
			result = append(result, contact)
		}
	}
	return result, nil
}

func (m *mockContactStorage) GetContact(ctx context.Context, userID, contactID int64) (*models.Contact, error) {
	contact, ok := m.contacts[contactID]
	if !ok || contact.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return contact, nil
}

func (m *mockContactStorage) UpdateContact(ctx context.Context, userID, contactID int64, upd storage.ContactUpdate) error {
	contact, ok := m.contacts[contactID]
	if !ok || contact.UserID != userID {
		return storage.ErrNotFound
	}
	if upd.FirstName != nil {
		contact.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		contact.LastName = *upd.LastName
	}
	if upd.Number != nil {
		contact.Number = *upd.Number
	}
	if upd.Email != nil {
		contact.Email = upd.Email
	}
	if upd.Note != nil {
		contact.Note = upd.Note
	}
	contact.FullName = contact.FirstName + " " + contact.LastName
	return nil
}

func (m *mockContactStorage) DeleteContact(ctx context.Context, userID, contactID int64) error {
	contact, ok := m.contacts[contactID]
	if !ok || contact.UserID != userID {
		return storage.ErrNotFound
	}
	delete(m.contacts, contactID)
	return nil
}

func (m *mockContactStorage) ContactExists(ctx context.Context, userID, contactID int64) (bool, error) {
	contact, ok := m.contacts[contactID]
	return ok && contact.UserID == userID, nil
}

func (m *mockContactStorage) ListAddressesByContacts(ctx context.Context, contactIDs []int64) ([]*models.Address, error) {
	var result []*models.Address
	for _, id := range contactIDs {
		for _, address := range m.addresses {
			if address.ContactID == id {
				result = append(result, address)
			}
		}
	}
	return result, nil
}

func (m *mockContactStorage) ListTasksByContacts(ctx context.Context, contactIDs []int64) ([]*models.Task, error) {
	var result []*models.Task
	for _, id := range contactIDs {
		for _, task := range m.tasks {
			if task.ContactID != nil && *task.ContactID == id {
				result = append(result, task)
			}
		}
	}
	return result, nil
}

func (m *mockContactStorage) CreateAddress(ctx context.Context, address *models.Address) error {
	address.ID = m.nextID
	m.nextID++
	m.addresses[address.ID] = address
	return nil
}

// mockTaskStorage is a map-backed TaskStorage
type mockTaskStorage struct {
	tasks       map[int64]*models.Task
	nextID      int64
	createError error
}

func newMockTaskStorage() *mockTaskStorage {
	return &mockTaskStorage{tasks: map[int64]*models.Task{}, nextID: 1}
}

func (m *mockTaskStorage) CreateTask(ctx context.Context, task *models.Task) error {
	if m.createError != nil {
		return m.createError
	}
	task.ID = m.nextID
	m.nextID++
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStorage) ListTasks(ctx context.Context, userID int64) ([]*models.Task, error) {
	var result []*models.Task
	for _, task := range m.tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *mockTaskStorage) GetTask(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return task, nil
}

func (m *mockTaskStorage) UpdateTask(ctx context.Context, userID, taskID int64, upd storage.TaskUpdate) error {
	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return storage.ErrNotFound
	}
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = upd.Description
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}
	if upd.ContactID != nil {
		task.ContactID = upd.ContactID
	}
	return nil
}

func (m *mockTaskStorage) DeleteTask(ctx context.Context, userID, taskID int64) error {
	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return storage.ErrNotFound
	}
	delete(m.tasks, taskID)
	return nil
}

// mockEmailStorage is a slice-backed EmailStorage
type mockEmailStorage struct {
	emails      []*models.EmailLog
	createError error
}

func (m *mockEmailStorage) CreateEmailLog(ctx context.Context, email *models.EmailLog) error {
	if m.createError != nil {
		return m.createError
	}
	email.ID = int64(len(m.emails) + 1)
	email.SentAt = time.Now()
	m.emails = append(m.emails, email)
	return nil
}

func (m *mockEmailStorage) ListEmailLogs(ctx context.Context, limit int) ([]*models.EmailLog, error) {
	if limit > len(m.emails) {
		limit = len(m.emails)
	}
	result := make([]*models.EmailLog, 0, limit)
	for i := len(m.emails) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.emails[i])
	}
	return result, nil
}
