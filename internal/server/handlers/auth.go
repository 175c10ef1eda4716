package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vploshikov/gocrm/internal/crypto"
	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
	"github.com/vploshikov/gocrm/internal/validation"
	"github.com/vploshikov/gocrm/pkg/api"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	logger    *slog.Logger
	users     storage.UserStorage
	jwtConfig JWTConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	for _, check := range []error{
		validation.ValidateName("first_name", req.FirstName),
		validation.ValidateName("last_name", req.LastName),
		validation.ValidateEmail(req.Email),
		validation.ValidatePhone(req.Phone),
		validation.ValidatePassword(req.Password),
	} {
		if check != nil {
			sendError(h.logger, w, check.Error(), http.StatusBadRequest)
			return
		}
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	// No existence pre-check: the unique constraints decide races between
	// simultaneous registrations.
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "registration rejected, identity taken", slog.String("email", req.Email))
			sendError(h.logger, w, "email or phone already used", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	sendJSON(h.logger, w, api.RegisterResponse{OK: true, UserID: user.ID}, http.StatusOK)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.EmailOrPhone == "" || req.Password == "" {
		sendError(h.logger, w, "missing credentials", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByIdentifier(ctx, req.EmailOrPhone)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Same response as a wrong password so the identifier space
			// cannot be enumerated.
			h.logger.WarnContext(ctx, "login failed: unknown identifier")
			sendError(h.logger, w, "invalid credentials", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: wrong password", slog.Int64("user_id", user.ID))
		sendError(h.logger, w, "invalid credentials", http.StatusBadRequest)
		return
	}

	token, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	sendJSON(h.logger, w, api.LoginResponse{Token: token, ExpiresIn: expiresIn}, http.StatusOK)
}
