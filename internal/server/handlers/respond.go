package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vploshikov/gocrm/internal/server/storage"
	"github.com/vploshikov/gocrm/pkg/api"
)

// sendJSON writes data as a JSON response
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error body. message is the only detail the
// caller ever sees; storage error text stays in the logs.
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Error: message}, statusCode)
}

// sendStorageError maps a data-access failure onto the response
// taxonomy. Anything unrecognized becomes an opaque 500.
func sendStorageError(logger *slog.Logger, w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(logger, w, "not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicate):
		sendError(logger, w, "duplicate entry", http.StatusConflict)
	case errors.Is(err, storage.ErrInvalidReference):
		sendError(logger, w, "invalid contact", http.StatusBadRequest)
	default:
		logger.Error(op, slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// pathID parses the {id} path segment of a request.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
