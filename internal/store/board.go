package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

// BoardUpdate carries the fields of a board update. Name is mandatory on
// every update; a nil Description means "keep the previous value".
type BoardUpdate struct {
	Name        string
	Description *string
}

// BoardStore defines the interface for board data persistence. Every read
// and write is scoped to an owning user: a board that exists but belongs
// to someone else behaves exactly like a board that does not exist.
type BoardStore interface {
	// Create saves a new board to the store.
	Create(ctx context.Context, board *domain.Board) error

	// ListByOwner returns all boards owned by the given user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)

	// GetByID retrieves a board by ID, scoped to the given owner.
	// Returns ErrBoardNotFound if no such board is visible to the owner.
	GetByID(ctx context.Context, ownerID, boardID uuid.UUID) (*domain.Board, error)

	// Update modifies a board's name and optionally its description,
	// scoped to the given owner. Returns ErrBoardNotFound if no such
	// board is visible to the owner.
	Update(ctx context.Context, ownerID, boardID uuid.UUID, update BoardUpdate) error

	// Delete removes a board, scoped to the given owner. It does not touch
	// the board's tasks; cascading deletion is the service layer's job and
	// runs inside a transaction. Returns ErrBoardNotFound if no such board
	// is visible to the owner.
	Delete(ctx context.Context, ownerID, boardID uuid.UUID) error

	// WithTx returns a BoardStore bound to the given transaction.
	WithTx(tx *sql.Tx) BoardStore
}
