// Package service implements the business operations behind the API
// handlers, composing the store layer and wrapping multi-step mutations
// in transactions.
package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logger"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// BoardService provides board operations scoped to an owning user.
// Creation seeds the board's default tasks and deletion cascades to its
// tasks, each inside a single transaction so a failure partway leaves no
// partial state.
type BoardService interface {
	// List returns all boards owned by the user, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)

	// Create inserts a board and seeds its three default tasks atomically.
	// Returns the created board.
	Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*domain.Board, error)

	// Get returns a board and all its tasks. Returns store.ErrBoardNotFound
	// if the board does not exist or is not owned by the caller.
	Get(ctx context.Context, ownerID, boardID uuid.UUID) (*domain.Board, []*domain.Task, error)

	// Update modifies a board's name and optionally its description.
	Update(ctx context.Context, ownerID, boardID uuid.UUID, update store.BoardUpdate) error

	// Delete removes a board and all its tasks atomically.
	Delete(ctx context.Context, ownerID, boardID uuid.UUID) error
}

// boardServiceImpl implements BoardService over the postgres stores.
type boardServiceImpl struct {
	db         *sql.DB
	boardStore store.BoardStore
	taskStore  store.TaskStore
	logger     *slog.Logger
}

// NewBoardService creates a BoardService. The *sql.DB handle is needed in
// addition to the stores so that create and delete can open transactions
// and rebind the stores onto them.
func NewBoardService(
	db *sql.DB,
	boardStore store.BoardStore,
	taskStore store.TaskStore,
	log *slog.Logger,
) BoardService {
	if log == nil {
		log = slog.Default()
	}
	return &boardServiceImpl{
		db:         db,
		boardStore: boardStore,
		taskStore:  taskStore,
		logger:     log.With(slog.String("component", "board_service")),
	}
}

// List implements BoardService.List.
func (s *boardServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error) {
	return s.boardStore.ListByOwner(ctx, ownerID)
}

// Create implements BoardService.Create. The board row and its three
// seeded tasks are written in one transaction.
func (s *boardServiceImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	name, description string,
) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	board, err := domain.NewBoard(ownerID, name, description)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		boardStore := s.boardStore.WithTx(tx)
		taskStore := s.taskStore.WithTx(tx)

		if err := boardStore.Create(ctx, board); err != nil {
			return err
		}

		for _, task := range domain.DefaultBoardTasks(board.ID) {
			if err := taskStore.Create(ctx, ownerID, task); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("board created with default tasks",
		slog.String("board_id", board.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return board, nil
}

// Get implements BoardService.Get.
func (s *boardServiceImpl) Get(
	ctx context.Context,
	ownerID, boardID uuid.UUID,
) (*domain.Board, []*domain.Task, error) {
	board, err := s.boardStore.GetByID(ctx, ownerID, boardID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.taskStore.ListByBoard(ctx, ownerID, boardID)
	if err != nil {
		return nil, nil, err
	}

	return board, tasks, nil
}

// Update implements BoardService.Update.
func (s *boardServiceImpl) Update(
	ctx context.Context,
	ownerID, boardID uuid.UUID,
	update store.BoardUpdate,
) error {
	return s.boardStore.Update(ctx, ownerID, boardID, update)
}

// Delete implements BoardService.Delete. Tasks go first, the board row
// second, in one transaction, so no orphan tasks can survive a failure.
func (s *boardServiceImpl) Delete(ctx context.Context, ownerID, boardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		boardStore := s.boardStore.WithTx(tx)
		taskStore := s.taskStore.WithTx(tx)

		if err := taskStore.DeleteByBoard(ctx, ownerID, boardID); err != nil {
			return err
		}

		return boardStore.Delete(ctx, ownerID, boardID)
	})
	if err != nil {
		return err
	}

	log.Info("board deleted with its tasks",
		slog.String("board_id", boardID.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
