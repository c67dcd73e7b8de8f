package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// TaskHandler handles the task CRUD endpoints. Ownership is resolved
// transitively through the parent board inside the store's SQL, so the
// handler never compares user IDs itself.
type TaskHandler struct {
	taskStore store.TaskStore
}

// NewTaskHandler creates a TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{taskStore: taskStore}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Task name and board_id are required!")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Task name and board_id are required!")
		return
	}

	// A board_id that is not even a UUID names no board anyone owns.
	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		HandleAPIError(w, r, store.ErrBoardNotFound, "")
		return
	}

	task, err := domain.NewTask(boardID, req.Name, req.Description, req.Status, req.Icon)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Create(r.Context(), user.ID, task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		Message: "Task created successfully!",
		TaskID:  task.ID,
	})
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	taskID, err := pathUUID(r, "id", store.ErrTaskNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required fields!")
		return
	}

	update := store.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Icon:        req.Icon,
	}
	if err := h.taskStore.Update(r.Context(), user.ID, taskID, update); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		MessageResponse{Message: "Task updated successfully!"})
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	taskID, err := pathUUID(r, "id", store.ErrTaskNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Delete(r.Context(), user.ID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		MessageResponse{Message: "Task deleted successfully!"})
}
