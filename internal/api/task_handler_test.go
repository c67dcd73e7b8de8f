package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/mocks"
)

func taskTestRouter(handler *TaskHandler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	if user != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), shared.CurrentUserContextKey, user)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	r.Post("/api/tasks", handler.Create)
	r.Put("/api/tasks/{id}", handler.Update)
	r.Delete("/api/tasks/{id}", handler.Delete)
	return r
}

// ownedTaskStore builds a task store that knows one board owned by user.
func ownedTaskStore(user *domain.User, boardID uuid.UUID) *mocks.MockTaskStore {
	taskStore := mocks.NewMockTaskStore()
	taskStore.BoardOwners[boardID] = user.ID
	return taskStore
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	user := testUser()
	boardID := uuid.New()

	t.Run("creates a task", func(t *testing.T) {
		t.Parallel()
		taskStore := ownedTaskStore(user, boardID)
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		rec := doJSON(t, router, http.MethodPost, "/api/tasks", CreateTaskRequest{
			Name:        "Write report",
			BoardID:     boardID.String(),
			Description: "Quarterly summary",
			Status:      domain.TaskStatusCompleted,
			Icon:        "📊",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreateTaskResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Task created successfully!", resp.Message)

		stored, ok := taskStore.Tasks[resp.TaskID]
		require.True(t, ok)
		assert.Equal(t, "Write report", stored.Name)
		assert.Equal(t, domain.TaskStatusCompleted, stored.Status)
		assert.Equal(t, boardID, stored.BoardID)
	})

	t.Run("defaults status to In Progress", func(t *testing.T) {
		t.Parallel()
		taskStore := ownedTaskStore(user, boardID)
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		rec := doJSON(t, router, http.MethodPost, "/api/tasks", CreateTaskRequest{
			Name:    "Write report",
			BoardID: boardID.String(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreateTaskResponse
		decodeBody(t, rec, &resp)
		stored := taskStore.Tasks[resp.TaskID]
		require.NotNil(t, stored)
		assert.Equal(t, domain.TaskStatusInProgress, stored.Status)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()
		router := taskTestRouter(NewTaskHandler(mocks.NewMockTaskStore()), user)

		cases := []CreateTaskRequest{
			{BoardID: boardID.String()},
			{Name: "Write report"},
			{},
		}

		for _, req := range cases {
			rec := doJSON(t, router, http.MethodPost, "/api/tasks", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Task name and board_id are required!", responseMessage(t, rec))
		}
	})

	t.Run("board owned by someone else", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		taskStore.BoardOwners[boardID] = uuid.New() // someone else
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		rec := doJSON(t, router, http.MethodPost, "/api/tasks", CreateTaskRequest{
			Name:    "Write report",
			BoardID: boardID.String(),
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Board not found!", responseMessage(t, rec))
	})

	t.Run("malformed board_id", func(t *testing.T) {
		t.Parallel()
		router := taskTestRouter(NewTaskHandler(mocks.NewMockTaskStore()), user)

		rec := doJSON(t, router, http.MethodPost, "/api/tasks", CreateTaskRequest{
			Name:    "Write report",
			BoardID: "not-a-uuid",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Board not found!", responseMessage(t, rec))
	})
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()

	user := testUser()
	boardID := uuid.New()

	newStoreWithTask := func() (*mocks.MockTaskStore, *domain.Task) {
		taskStore := ownedTaskStore(user, boardID)
		task := &domain.Task{
			ID:          uuid.New(),
			BoardID:     boardID,
			Name:        "Write report",
			Description: "Quarterly summary",
			Status:      domain.TaskStatusInProgress,
			Icon:        "📝",
		}
		taskStore.Tasks[task.ID] = task
		return taskStore, task
	}

	t.Run("updates only the supplied fields", func(t *testing.T) {
		t.Parallel()
		taskStore, task := newStoreWithTask()
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		status := domain.TaskStatusCompleted
		rec := doJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID.String(), UpdateTaskRequest{
			Status: &status,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Task updated successfully!", responseMessage(t, rec))

		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
		assert.Equal(t, "Write report", task.Name)
		assert.Equal(t, "Quarterly summary", task.Description)
		assert.Equal(t, "📝", task.Icon)
	})

	t.Run("empty update succeeds without changing anything", func(t *testing.T) {
		t.Parallel()
		taskStore, task := newStoreWithTask()
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		rec := doJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID.String(), UpdateTaskRequest{})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Task updated successfully!", responseMessage(t, rec))
		assert.Equal(t, "Write report", task.Name)
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		taskStore, _ := newStoreWithTask()
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		name := "Renamed"
		rec := doJSON(t, router, http.MethodPut, "/api/tasks/"+uuid.New().String(), UpdateTaskRequest{
			Name: &name,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found!", responseMessage(t, rec))
	})

	t.Run("task under someone else's board", func(t *testing.T) {
		t.Parallel()
		taskStore, task := newStoreWithTask()
		taskStore.BoardOwners[boardID] = uuid.New() // reassign the board
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		name := "Renamed"
		rec := doJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID.String(), UpdateTaskRequest{
			Name: &name,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found!", responseMessage(t, rec))
		assert.Equal(t, "Write report", task.Name)
	})

	t.Run("malformed task ID", func(t *testing.T) {
		t.Parallel()
		taskStore, _ := newStoreWithTask()
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		rec := doJSON(t, router, http.MethodPut, "/api/tasks/not-a-uuid", UpdateTaskRequest{})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found!", responseMessage(t, rec))
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()

	user := testUser()
	boardID := uuid.New()

	t.Run("deletes the task", func(t *testing.T) {
		t.Parallel()
		taskStore := ownedTaskStore(user, boardID)
		task := &domain.Task{ID: uuid.New(), BoardID: boardID, Name: "Write report", Status: domain.TaskStatusInProgress}
		taskStore.Tasks[task.ID] = task
		router := taskTestRouter(NewTaskHandler(taskStore), user)

		rec := doJSON(t, router, http.MethodDelete, "/api/tasks/"+task.ID.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Task deleted successfully!", responseMessage(t, rec))
		assert.NotContains(t, taskStore.Tasks, task.ID)
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		router := taskTestRouter(NewTaskHandler(mocks.NewMockTaskStore()), user)

		rec := doJSON(t, router, http.MethodDelete, "/api/tasks/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found!", responseMessage(t, rec))
	})

	t.Run("without identity", func(t *testing.T) {
		t.Parallel()
		router := taskTestRouter(NewTaskHandler(mocks.NewMockTaskStore()), nil)

		rec := doJSON(t, router, http.MethodDelete, "/api/tasks/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token is missing!", responseMessage(t, rec))
	})
}
