package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logger"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// BoardStore implements store.BoardStore on PostgreSQL. Every statement
// carries the owner in its WHERE clause, so an ownership miss and a
// missing row produce the same zero-row outcome.
type BoardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure BoardStore implements store.BoardStore.
var _ store.BoardStore = (*BoardStore)(nil)

// NewBoardStore creates a PostgreSQL-backed BoardStore. If log is nil the
// process default logger is used.
func NewBoardStore(db store.DBTX, log *slog.Logger) *BoardStore {
	if log == nil {
		log = slog.Default()
	}
	return &BoardStore{
		db:     db,
		logger: log.With(slog.String("component", "board_store")),
	}
}

// Create implements store.BoardStore.Create.
func (s *BoardStore) Create(ctx context.Context, board *domain.Board) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := board.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO boards (id, name, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		board.ID, board.Name, board.Description, board.OwnerID, board.CreatedAt)
	if err != nil {
		log.Error("failed to create board",
			slog.String("error", err.Error()),
			slog.String("board_id", board.ID.String()))
		return MapError(err)
	}

	log.Info("board created",
		slog.String("board_id", board.ID.String()),
		slog.String("owner_id", board.OwnerID.String()))
	return nil
}

// ListByOwner implements store.BoardStore.ListByOwner.
func (s *BoardStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created_at
		FROM boards
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list boards",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	boards := []*domain.Board{}
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(
			&board.ID,
			&board.Name,
			&board.Description,
			&board.OwnerID,
			&board.CreatedAt,
		); err != nil {
			log.Error("failed to scan board row", slog.String("error", err.Error()))
			return nil, err
		}
		boards = append(boards, &board)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return boards, nil
}

// GetByID implements store.BoardStore.GetByID.
func (s *BoardStore) GetByID(ctx context.Context, ownerID, boardID uuid.UUID) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created_at
		FROM boards
		WHERE id = $1 AND user_id = $2
	`

	var board domain.Board
	err := s.db.QueryRowContext(ctx, query, boardID, ownerID).Scan(
		&board.ID,
		&board.Name,
		&board.Description,
		&board.OwnerID,
		&board.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBoardNotFound
		}
		log.Error("failed to get board",
			slog.String("error", err.Error()),
			slog.String("board_id", boardID.String()))
		return nil, MapError(err)
	}

	return &board, nil
}

// Update implements store.BoardStore.Update. A nil Description binds NULL,
// which COALESCE resolves to the stored value.
func (s *BoardStore) Update(ctx context.Context, ownerID, boardID uuid.UUID, update store.BoardUpdate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE boards
		SET name = $1, description = COALESCE($2, description)
		WHERE id = $3 AND user_id = $4
	`
	result, err := s.db.ExecContext(ctx, query,
		update.Name, update.Description, boardID, ownerID)
	if err != nil {
		log.Error("failed to update board",
			slog.String("error", err.Error()),
			slog.String("board_id", boardID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrBoardNotFound)
}

// Delete implements store.BoardStore.Delete.
func (s *BoardStore) Delete(ctx context.Context, ownerID, boardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM boards WHERE id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, boardID, ownerID)
	if err != nil {
		log.Error("failed to delete board",
			slog.String("error", err.Error()),
			slog.String("board_id", boardID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBoardNotFound); err != nil {
		return err
	}

	log.Info("board deleted",
		slog.String("board_id", boardID.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}

// WithTx implements store.BoardStore.WithTx.
func (s *BoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return &BoardStore{db: tx, logger: s.logger}
}
