package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// MockBoardStore implements store.BoardStore with function fields for
// per-test overrides and an in-memory map as default behavior. Ownership
// scoping mirrors the real store: a board owned by someone else is
// reported as not found.
type MockBoardStore struct {
	CreateFn      func(ctx context.Context, board *domain.Board) error
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)
	GetByIDFn     func(ctx context.Context, ownerID, boardID uuid.UUID) (*domain.Board, error)
	UpdateFn      func(ctx context.Context, ownerID, boardID uuid.UUID, update store.BoardUpdate) error
	DeleteFn      func(ctx context.Context, ownerID, boardID uuid.UUID) error

	// Boards is the default in-memory storage, keyed by board ID.
	Boards map[uuid.UUID]*domain.Board
}

// Ensure MockBoardStore implements store.BoardStore.
var _ store.BoardStore = (*MockBoardStore)(nil)

// NewMockBoardStore creates a MockBoardStore with an empty board map.
func NewMockBoardStore() *MockBoardStore {
	return &MockBoardStore{
		Boards: make(map[uuid.UUID]*domain.Board),
	}
}

// Create implements store.BoardStore.Create.
func (m *MockBoardStore) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, board)
	}
	if m.Boards == nil {
		m.Boards = make(map[uuid.UUID]*domain.Board)
	}
	m.Boards[board.ID] = board
	return nil
}

// ListByOwner implements store.BoardStore.ListByOwner.
func (m *MockBoardStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	boards := make([]*domain.Board, 0)
	for _, b := range m.Boards {
		if b.OwnerID == ownerID {
			boards = append(boards, b)
		}
	}
	sort.Slice(boards, func(i, j int) bool {
		return boards[i].CreatedAt.After(boards[j].CreatedAt)
	})
	return boards, nil
}

// GetByID implements store.BoardStore.GetByID.
func (m *MockBoardStore) GetByID(ctx context.Context, ownerID, boardID uuid.UUID) (*domain.Board, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, boardID)
	}
	board, ok := m.Boards[boardID]
	if !ok || board.OwnerID != ownerID {
		return nil, store.ErrBoardNotFound
	}
	return board, nil
}

// Update implements store.BoardStore.Update.
func (m *MockBoardStore) Update(
	ctx context.Context,
	ownerID, boardID uuid.UUID,
	update store.BoardUpdate,
) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, boardID, update)
	}
	board, ok := m.Boards[boardID]
	if !ok || board.OwnerID != ownerID {
		return store.ErrBoardNotFound
	}
	board.Name = update.Name
	if update.Description != nil {
		board.Description = *update.Description
	}
	return nil
}

// Delete implements store.BoardStore.Delete.
func (m *MockBoardStore) Delete(ctx context.Context, ownerID, boardID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, boardID)
	}
	board, ok := m.Boards[boardID]
	if !ok || board.OwnerID != ownerID {
		return store.ErrBoardNotFound
	}
	delete(m.Boards, boardID)
	return nil
}

// WithTx implements store.BoardStore.WithTx. The mock has no transaction
// state, so it returns itself.
func (m *MockBoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return m
}
