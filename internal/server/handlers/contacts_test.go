package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/pkg/api"
)

func seedContact(t *testing.T, contacts *mockContactStorage, userID int64, number string) int64 {
	t.Helper()

	contact := &models.Contact{
		UserID:    userID,
		FirstName: "John",
		LastName:  "Doe",
		Number:    number,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
	require.NoError(t, contacts.CreateContact(t.Context(), contact))
	return contact.ID
}

func TestContactsHandler_Create(t *testing.T) {
	contacts := newMockContactStorage()
	h := NewContactsHandler(testLogger(), contacts)

	body := `{"contact_first_name":"Jane","contact_last_name":"Doe","contact_number":"+15551230000","contact_email":"jane@example.com"}`
	req := authedRequest(t, http.MethodPost, "/contacts", body, 1)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp api.CreateContactResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.NotZero(t, resp.ContactID)

	stored := contacts.contacts[resp.ContactID]
	require.NotNil(t, stored)
	assert.Equal(t, int64(1), stored.UserID)
	assert.Equal(t, int64(1), stored.CreatedBy)
}

func TestContactsHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "bad body", body: `{`, wantCode: http.StatusBadRequest},
		{name: "missing name", body: `{"contact_first_name":"","contact_last_name":"D","contact_number":"+15551230000"}`, wantCode: http.StatusBadRequest},
		{name: "bad number", body: `{"contact_first_name":"J","contact_last_name":"D","contact_number":"nope"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewContactsHandler(testLogger(), newMockContactStorage())
			rec := httptest.NewRecorder()
			h.Create(rec, authedRequest(t, http.MethodPost, "/contacts", tt.body, 1))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestContactsHandler_Create_DuplicateNumber(t *testing.T) {
	contacts := newMockContactStorage()
	seedContact(t, contacts, 1, "+15551230000")
	h := NewContactsHandler(testLogger(), contacts)

	body := `{"contact_first_name":"Jane","contact_last_name":"Doe","contact_number":"+15551230000"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(t, http.MethodPost, "/contacts", body, 1))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestContactsHandler_List_Nested(t *testing.T) {
	contacts := newMockContactStorage()
	contactID := seedContact(t, contacts, 1, "+15551230000")
	bareID := seedContact(t, contacts, 1, "+15551230001")
	seedContact(t, contacts, 2, "+15551230002") // other user's row

	require.NoError(t, contacts.CreateAddress(t.Context(), &models.Address{
		ContactID: contactID,
		Line1:     "1 Main St",
		CreatedBy: 1,
	}))
	contacts.tasks[99] = &models.Task{
		ID:        99,
		UserID:    1,
		ContactID: &contactID,
		Title:     "Call John",
		Status:    models.TaskStatusPending,
	}

	h := NewContactsHandler(testLogger(), contacts)
	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(t, http.MethodGet, "/contacts", "", 1))

	require.Equal(t, http.StatusOK, rec.Code)

	var details []api.ContactDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&details))
	require.Len(t, details, 2)

	byID := map[int64]api.ContactDetail{}
	for _, d := range details {
		byID[d.ID] = d
	}

	withChildren := byID[contactID]
	require.Len(t, withChildren.Addresses, 1)
	assert.Equal(t, "1 Main St", withChildren.Addresses[0].Line1)
	require.Len(t, withChildren.Tasks, 1)
	assert.Equal(t, "Call John", withChildren.Tasks[0].Title)

	// empty arrays, not null
	bare := byID[bareID]
	assert.NotNil(t, bare.Addresses)
	assert.Empty(t, bare.Addresses)
	assert.NotNil(t, bare.Tasks)
	assert.Empty(t, bare.Tasks)
}

func TestContactsHandler_Get(t *testing.T) {
	contacts := newMockContactStorage()
	contactID := seedContact(t, contacts, 1, "+15551230000")
	h := NewContactsHandler(testLogger(), contacts)

	t.Run("owner sees the contact", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authedRequest(t, http.MethodGet, "/contacts/1", "", 1)
		req.SetPathValue("id", "1")
		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var detail api.ContactDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
		assert.Equal(t, contactID, detail.ID)
	})

	t.Run("foreign contact is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authedRequest(t, http.MethodGet, "/contacts/1", "", 2)
		req.SetPathValue("id", "1")
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authedRequest(t, http.MethodGet, "/contacts/abc", "", 1)
		req.SetPathValue("id", "abc")
		h.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContactsHandler_Update_Merge(t *testing.T) {
	contacts := newMockContactStorage()
	contactID := seedContact(t, contacts, 1, "+15551230000")
	h := NewContactsHandler(testLogger(), contacts)

	rec := httptest.NewRecorder()
	req := authedRequest(t, http.MethodPut, "/contacts/1", `{"note":"vip"}`, 1)
	req.SetPathValue("id", "1")
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// only the note changed
	stored := contacts.contacts[contactID]
	assert.Equal(t, "John", stored.FirstName)
	assert.Equal(t, "+15551230000", stored.Number)
	require.NotNil(t, stored.Note)
	assert.Equal(t, "vip", *stored.Note)
}

func TestContactsHandler_Update_NotFound(t *testing.T) {
	h := NewContactsHandler(testLogger(), newMockContactStorage())

	rec := httptest.NewRecorder()
	req := authedRequest(t, http.MethodPut, "/contacts/5", `{"note":"x"}`, 1)
	req.SetPathValue("id", "5")
	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactsHandler_Delete(t *testing.T) {
	contacts := newMockContactStorage()
	seedContact(t, contacts, 1, "+15551230000")
	h := NewContactsHandler(testLogger(), contacts)

	rec := httptest.NewRecorder()
	req := authedRequest(t, http.MethodDelete, "/contacts/1", "", 1)
	req.SetPathValue("id", "1")
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, contacts.contacts)

	// a second delete is a 404
	rec = httptest.NewRecorder()
	req = authedRequest(t, http.MethodDelete, "/contacts/1", "", 1)
	req.SetPathValue("id", "1")
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactsHandler_AddAddress(t *testing.T) {
	contacts := newMockContactStorage()
	contactID := seedContact(t, contacts, 1, "+15551230000")
	h := NewContactsHandler(testLogger(), contacts)

	t.Run("owner adds an address", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/contacts/1/address", `{"address_line1":"1 Main St","city":"Springfield"}`, 1)
		req.SetPathValue("id", "1")
		h.AddAddress(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.CreateAddressResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.OK)

		stored := contacts.addresses[resp.AddressID]
		require.NotNil(t, stored)
		assert.Equal(t, contactID, stored.ContactID)
		assert.Equal(t, int64(1), stored.CreatedBy)
	})

	t.Run("foreign contact is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/contacts/1/address", `{"address_line1":"1 Main St"}`, 2)
		req.SetPathValue("id", "1")
		h.AddAddress(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "invalid contact", resp.Error)
	})

	t.Run("missing line1", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/contacts/1/address", `{"city":"Springfield"}`, 1)
		req.SetPathValue("id", "1")
		h.AddAddress(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
