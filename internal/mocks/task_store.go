package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore with function fields for
// per-test overrides and in-memory maps as default behavior. Ownership
// is resolved transitively through BoardOwners, mirroring the real
// store's join against the boards table.
type MockTaskStore struct {
	CreateFn        func(ctx context.Context, ownerID uuid.UUID, task *domain.Task) error
	ListByBoardFn   func(ctx context.Context, ownerID, boardID uuid.UUID) ([]*domain.Task, error)
	UpdateFn        func(ctx context.Context, ownerID, taskID uuid.UUID, update store.TaskUpdate) error
	DeleteFn        func(ctx context.Context, ownerID, taskID uuid.UUID) error
	DeleteByBoardFn func(ctx context.Context, ownerID, boardID uuid.UUID) error

	// Tasks is the default in-memory storage, keyed by task ID.
	Tasks map[uuid.UUID]*domain.Task

	// BoardOwners maps board IDs to their owning user, standing in for
	// the boards table when resolving ownership.
	BoardOwners map[uuid.UUID]uuid.UUID
}

// Ensure MockTaskStore implements store.TaskStore.
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a MockTaskStore with empty maps.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:       make(map[uuid.UUID]*domain.Task),
		BoardOwners: make(map[uuid.UUID]uuid.UUID),
	}
}

// ownsBoard reports whether ownerID owns the given board.
func (m *MockTaskStore) ownsBoard(ownerID, boardID uuid.UUID) bool {
	owner, ok := m.BoardOwners[boardID]
	return ok && owner == ownerID
}

// Create implements store.TaskStore.Create.
func (m *MockTaskStore) Create(ctx context.Context, ownerID uuid.UUID, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, task)
	}
	if !m.ownsBoard(ownerID, task.BoardID) {
		return store.ErrBoardNotFound
	}
	if m.Tasks == nil {
		m.Tasks = make(map[uuid.UUID]*domain.Task)
	}
	m.Tasks[task.ID] = task
	return nil
}

// ListByBoard implements store.TaskStore.ListByBoard.
func (m *MockTaskStore) ListByBoard(ctx context.Context, ownerID, boardID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByBoardFn != nil {
		return m.ListByBoardFn(ctx, ownerID, boardID)
	}
	tasks := make([]*domain.Task, 0)
	if !m.ownsBoard(ownerID, boardID) {
		return tasks, nil
	}
	for _, t := range m.Tasks {
		if t.BoardID == boardID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID.String() < tasks[j].ID.String()
	})
	return tasks, nil
}

// Update implements store.TaskStore.Update.
func (m *MockTaskStore) Update(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	update store.TaskUpdate,
) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, taskID, update)
	}
	task, ok := m.Tasks[taskID]
	if !ok || !m.ownsBoard(ownerID, task.BoardID) {
		return store.ErrTaskNotFound
	}
	if update.Name != nil {
		task.Name = *update.Name
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Icon != nil {
		task.Icon = *update.Icon
	}
	return nil
}

// Delete implements store.TaskStore.Delete.
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, taskID)
	}
	task, ok := m.Tasks[taskID]
	if !ok || !m.ownsBoard(ownerID, task.BoardID) {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, taskID)
	return nil
}

// DeleteByBoard implements store.TaskStore.DeleteByBoard.
func (m *MockTaskStore) DeleteByBoard(ctx context.Context, ownerID, boardID uuid.UUID) error {
	if m.DeleteByBoardFn != nil {
		return m.DeleteByBoardFn(ctx, ownerID, boardID)
	}
	if !m.ownsBoard(ownerID, boardID) {
		return nil
	}
	for id, t := range m.Tasks {
		if t.BoardID == boardID {
			delete(m.Tasks, id)
		}
	}
	return nil
}

// WithTx implements store.TaskStore.WithTx. The mock has no transaction
// state, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
