package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
	"github.com/vploshikov/gocrm/pkg/api"
)

// AddressesHandler handles POST /addresses, the body-addressed variant
// of address creation.
type AddressesHandler struct {
	logger   *slog.Logger
	contacts storage.ContactStorage
}

// NewAddressesHandler creates a new addresses handler
func NewAddressesHandler(logger *slog.Logger, contacts storage.ContactStorage) *AddressesHandler {
	return &AddressesHandler{
		logger:   logger,
		contacts: contacts,
	}
}

// Create handles POST /addresses
func (h *AddressesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ContactID == 0 || req.Line1 == "" || req.City == nil || *req.City == "" {
		sendError(h.logger, w, "missing required fields: contact_id, address line 1, and city", http.StatusBadRequest)
		return
	}

	owned, err := h.contacts.ContactExists(ctx, userID, req.ContactID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to check contact")
		return
	}
	if !owned {
		sendError(h.logger, w, "invalid contact", http.StatusBadRequest)
		return
	}

	address := &models.Address{
		ContactID: req.ContactID,
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

	h.logger.InfoContext(ctx, "address created",
		slog.Int64("user_id", userID),
		slog.Int64("contact_id", req.ContactID),
		slog.Int64("address_id", address.ID))

	sendJSON(h.logger, w, api.AddressSavedResponse{
		Message: "Address added successfully",
		ID:      address.ID,
	}, http.StatusCreated)
}
