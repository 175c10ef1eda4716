package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
	"github.com/vploshikov/gocrm/internal/validation"
	"github.com/vploshikov/gocrm/pkg/api"
)

// ContactsHandler handles the ownership-scoped contact routes
type ContactsHandler struct {
	logger   *slog.Logger
	contacts storage.ContactStorage
}

// NewContactsHandler creates a new contacts handler
func NewContactsHandler(logger *slog.Logger, contacts storage.ContactStorage) *ContactsHandler {
	return &ContactsHandler{
		logger:   logger,
		contacts: contacts,
	}
}

// Create handles POST /contacts
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	for _, check := range []error{
		validation.ValidateName("contact_first_name", req.FirstName),
		validation.ValidateName("contact_last_name", req.LastName),
		validation.ValidatePhone(req.Number),
	} {
		if check != nil {
			sendError(h.logger, w, check.Error(), http.StatusBadRequest)
			return
		}
	}

	contact := &models.Contact{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Number:    req.Number,
		Email:     req.Email,
		Note:      req.Note,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := h.contacts.CreateContact(ctx, contact); err != nil {
		sendStorageError(h.logger, w, err, "failed to create contact")
		return
	}

	h.logger.InfoContext(ctx, "contact created",
		slog.Int64("user_id", userID),
		slog.Int64("contact_id", contact.ID))

	sendJSON(h.logger, w, api.CreateContactResponse{OK: true, ContactID: contact.ID}, http.StatusCreated)
}

// List handles GET /contacts. Child addresses and tasks are fetched in
// bulk and grouped by contact id in memory, so the client never needs
// follow-up calls per contact.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contacts, err := h.contacts.ListContacts(ctx, userID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to list contacts")
		return
	}

	details, err := h.attachChildren(ctx, contacts)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to load contact children")
		return
	}

	sendJSON(h.logger, w, details, http.StatusOK)
}

// Get handles GET /contacts/{id}
func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid contact id", http.StatusBadRequest)
		return
	}

	contact, err := h.contacts.GetContact(ctx, userID, contactID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to get contact")
		return
	}

	details, err := h.attachChildren(ctx, []*models.Contact{contact})
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to load contact children")
		return
	}

	sendJSON(h.logger, w, details[0], http.StatusOK)
}

// Update handles PUT /contacts/{id}. Fields absent from the body keep
// their stored value.
func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid contact id", http.StatusBadRequest)
		return
	}

	var req api.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Number != nil {
		if err := validation.ValidatePhone(*req.Number); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	upd := storage.ContactUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Number:    req.Number,
		Email:     req.Email,
		Note:      req.Note,
	}

	if err := h.contacts.UpdateContact(ctx, userID, contactID, upd); err != nil {
		sendStorageError(h.logger, w, err, "failed to update contact")
		return
	}

	sendJSON(h.logger, w, api.OKResponse{OK: true}, http.StatusOK)
}

// Delete handles DELETE /contacts/{id}
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid contact id", http.StatusBadRequest)
		return
	}

	if err := h.contacts.DeleteContact(ctx, userID, contactID); err != nil {
		sendStorageError(h.logger, w, err, "failed to delete contact")
		return
	}

	h.logger.InfoContext(ctx, "contact deleted",
		slog.Int64("user_id", userID),
		slog.Int64("contact_id", contactID))

	sendJSON(h.logger, w, api.OKResponse{OK: true}, http.StatusOK)
}

// AddAddress handles POST /contacts/{id}/address
func (h *ContactsHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid contact id", http.StatusBadRequest)
		return
	}

	var req api.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Line1 == "" {
		sendError(h.logger, w, "missing address_line1", http.StatusBadRequest)
		return
	}

	// The contact must belong to the caller before anything is written.
	owned, err := h.contacts.ContactExists(ctx, userID, contactID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to check contact")
		return
	}
	if !owned {
		sendError(h.logger, w, "invalid contact", http.StatusBadRequest)
		return
	}

	address := &models.Address{
		ContactID: contactID,
		Line1:     req.Line1,
		Line2:     req.Line2,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Country:   req.Country,
		CreatedBy: userID,
	}

	if err := h.contacts.CreateAddress(ctx, address); err != nil {
		sendStorageError(h.logger, w, err, "failed to create address")
		return
	}

	sendJSON(h.logger, w, api.CreateAddressResponse{OK: true, AddressID: address.ID}, http.StatusOK)
}

// attachChildren groups child rows by contact id and attaches them.
// Every child row lands on exactly one contact; contacts without
// children get empty arrays, not null.
func (h *ContactsHandler) attachChildren(ctx context.Context, contacts []*models.Contact) ([]api.ContactDetail, error) {
	details := make([]api.ContactDetail, 0, len(contacts))
	if len(contacts) == 0 {
		return details, nil
	}

	contactIDs := make([]int64, 0, len(contacts))
	index := make(map[int64]int, len(contacts))
	for i, contact := range contacts {
		contactIDs = append(contactIDs, contact.ID)
		index[contact.ID] = i
		details = append(details, api.ContactDetail{
			Contact:   *contact,
			Addresses: []models.Address{},
			Tasks:     []models.Task{},
		})
	}

	addresses, err := h.contacts.ListAddressesByContacts(ctx, contactIDs)
	if err != nil {
		return nil, err
	}
	for _, address := range addresses {
		if i, ok := index[address.ContactID]; ok {
			details[i].Addresses = append(details[i].Addresses, *address)
		}
	}

	tasks, err := h.contacts.ListTasksByContacts(ctx, contactIDs)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.ContactID == nil {
			continue
		}
		if i, ok := index[*task.ContactID]; ok {
			details[i].Tasks = append(details[i].Tasks, *task)
		}
	}

	return details, nil
}
