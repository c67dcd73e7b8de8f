package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

// TaskUpdate carries the optional fields of a partial task update.
// A nil field means "keep the previous value"; a request supplying no
// fields at all is a successful no-op.
type TaskUpdate struct {
	Name        *string
	Description *string
	Status      *string
	Icon        *string
}

// IsEmpty reports whether the update carries no changes.
func (u TaskUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil && u.Icon == nil
}

// TaskStore defines the interface for task data persistence. Ownership is
// enforced transitively: every operation resolves the task's parent board
// and checks its owner, so a task under someone else's board behaves
// exactly like a task that does not exist.
type TaskStore interface {
	// Create saves a new task, verifying in the same statement that the
	// task's board is owned by ownerID. Returns ErrBoardNotFound if the
	// board does not exist or is not owned by the caller.
	Create(ctx context.Context, ownerID uuid.UUID, task *domain.Task) error

	// ListByBoard returns all tasks on the given board, scoped to the
	// board's owner. The board itself not existing yields an empty slice;
	// callers that need a 404 check the board first.
	ListByBoard(ctx context.Context, ownerID, boardID uuid.UUID) ([]*domain.Task, error)

	// Update applies a partial update to a task, scoped through the parent
	// board's owner. Fields left nil retain their stored values. Returns
	// ErrTaskNotFound if the task does not exist or its board is not owned
	// by the caller.
	Update(ctx context.Context, ownerID, taskID uuid.UUID, update TaskUpdate) error

	// Delete removes a single task, scoped through the parent board's
	// owner. Returns ErrTaskNotFound under the same rule as Update.
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error

	// DeleteByBoard removes all tasks on the given board. Used by the
	// board deletion transaction before the board row itself is removed.
	DeleteByBoard(ctx context.Context, ownerID, boardID uuid.UUID) error

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *sql.Tx) TaskStore
}
