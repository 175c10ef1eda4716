package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
	"github.com/vploshikov/gocrm/pkg/api"
)

// emailLogLimit caps GET /email at the most recent rows.
const emailLogLimit = 200

// EmailsHandler handles the simulated email routes
type EmailsHandler struct {
	logger *slog.Logger
	emails storage.EmailStorage
}

// NewEmailsHandler creates a new emails handler
func NewEmailsHandler(logger *slog.Logger, emails storage.EmailStorage) *EmailsHandler {
	return &EmailsHandler{
		logger: logger,
		emails: emails,
	}
}

// Send handles POST /email/send. Nothing is delivered; the send is
// recorded in the log attributed to the caller.
func (h *EmailsHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ToEmail == "" || req.Subject == "" {
		sendError(h.logger, w, "missing fields", http.StatusBadRequest)
		return
	}

	email := &models.EmailLog{
		ToEmail:   req.ToEmail,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedBy: userID,
	}

	if err := h.emails.CreateEmailLog(ctx, email); err != nil {
		sendStorageError(h.logger, w, err, "failed to log email")
		return
	}

	sendJSON(h.logger, w, api.SendEmailResponse{OK: true, ID: email.ID}, http.StatusOK)
}

// List handles GET /email
func (h *EmailsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := GetUserID(ctx); !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	emails, err := h.emails.ListEmailLogs(ctx, emailLogLimit)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to list email logs")
		return
	}

	if emails == nil {
		emails = []*models.EmailLog{}
	}
	sendJSON(h.logger, w, emails, http.StatusOK)
}
