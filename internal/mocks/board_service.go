package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/service"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// MockBoardService implements service.BoardService for handler tests.
type MockBoardService struct {
	ListFn   func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)
	CreateFn func(ctx context.Context, ownerID uuid.UUID, name, description string) (*domain.Board, error)
	GetFn    func(ctx context.Context, ownerID, boardID uuid.UUID) (*domain.Board, []*domain.Task, error)
	UpdateFn func(ctx context.Context, ownerID, boardID uuid.UUID, update store.BoardUpdate) error
	DeleteFn func(ctx context.Context, ownerID, boardID uuid.UUID) error
}

// Ensure MockBoardService implements service.BoardService.
var _ service.BoardService = (*MockBoardService)(nil)

// List implements service.BoardService.
func (m *MockBoardService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}
	return []*domain.Board{}, nil
}

// Create implements service.BoardService.
func (m *MockBoardService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	name, description string,
) (*domain.Board, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, name, description)
	}
	return domain.NewBoard(ownerID, name, description)
}

// Get implements service.BoardService.
func (m *MockBoardService) Get(
	ctx context.Context,
	ownerID, boardID uuid.UUID,
) (*domain.Board, []*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, ownerID, boardID)
	}
	return nil, nil, store.ErrBoardNotFound
}

// Update implements service.BoardService.
func (m *MockBoardService) Update(
	ctx context.Context,
	ownerID, boardID uuid.UUID,
	update store.BoardUpdate,
) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, boardID, update)
	}
	return store.ErrBoardNotFound
}

// Delete implements service.BoardService.
func (m *MockBoardService) Delete(ctx context.Context, ownerID, boardID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, boardID)
	}
	return store.ErrBoardNotFound
}
