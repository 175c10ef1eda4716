package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vploshikov/gocrm/internal/models"
	"github.com/vploshikov/gocrm/internal/server/storage"
	"github.com/vploshikov/gocrm/pkg/api"
)

// TasksHandler handles the ownership-scoped task routes
type TasksHandler struct {
	logger   *slog.Logger
	tasks    storage.TaskStorage
	contacts storage.ContactStorage
}

// NewTasksHandler creates a new tasks handler. The contact storage is
// needed to verify cross-references before writes.
func NewTasksHandler(logger *slog.Logger, tasks storage.TaskStorage, contacts storage.ContactStorage) *TasksHandler {
	return &TasksHandler{
		logger:   logger,
		tasks:    tasks,
		contacts: contacts,
	}
}

// Create handles POST /tasks
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		sendError(h.logger, w, "missing title", http.StatusBadRequest)
		return
	}

	if req.ContactID != nil {
		if !h.ownsContact(w, r, userID, *req.ContactID) {
			return
		}
	}

	status := models.TaskStatusPending
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	task := &models.Task{
		UserID:      userID,
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	if err := h.tasks.CreateTask(ctx, task); err != nil {
		sendStorageError(h.logger, w, err, "failed to create task")
		return
	}

	h.logger.InfoContext(ctx, "task created",
		slog.Int64("user_id", userID),
		slog.Int64("task_id", task.ID))

	sendJSON(h.logger, w, api.CreateTaskResponse{OK: true, TaskID: task.ID}, http.StatusOK)
}

// List handles GET /tasks
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := h.tasks.ListTasks(ctx, userID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to list tasks")
		return
	}

	if tasks == nil {
		tasks = []*models.Task{}
	}
	sendJSON(h.logger, w, tasks, http.StatusOK)
}

// Get handles GET /tasks/{id}
func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid task id", http.StatusBadRequest)
		return
	}

	task, err := h.tasks.GetTask(ctx, userID, taskID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to get task")
		return
	}

	sendJSON(h.logger, w, task, http.StatusOK)
}

// Update handles PUT /tasks/{id}. Fields absent from the body keep
// their stored value, so {"status":"completed"} alone flips the status.
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid task id", http.StatusBadRequest)
		return
	}

	var req api.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ContactID != nil {
		if !h.ownsContact(w, r, userID, *req.ContactID) {
			return
		}
	}

	upd := storage.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		ContactID:   req.ContactID,
	}

	if err := h.tasks.UpdateTask(ctx, userID, taskID, upd); err != nil {
		sendStorageError(h.logger, w, err, "failed to update task")
		return
	}

	sendJSON(h.logger, w, api.OKResponse{OK: true}, http.StatusOK)
}

// Delete handles DELETE /tasks/{id}
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := pathID(r)
	if err != nil {
		sendError(h.logger, w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.tasks.DeleteTask(ctx, userID, taskID); err != nil {
		sendStorageError(h.logger, w, err, "failed to delete task")
		return
	}

	sendJSON(h.logger, w, api.OKResponse{OK: true}, http.StatusOK)
}

// ownsContact verifies the referenced contact belongs to userID and
// writes the error response when it does not.
func (h *TasksHandler) ownsContact(w http.ResponseWriter, r *http.Request, userID, contactID int64) bool {
	owned, err := h.contacts.ContactExists(r.Context(), userID, contactID)
	if err != nil {
		sendStorageError(h.logger, w, err, "failed to check contact")
		return false
	}
	if !owned {
		sendError(h.logger, w, "invalid contact", http.StatusBadRequest)
		return false
	}
	return true
}
