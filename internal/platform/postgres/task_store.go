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

// TaskStore implements store.TaskStore on PostgreSQL. Tasks carry no owner
// column; every statement resolves ownership through the parent board, so
// a task under someone else's board is indistinguishable from a missing
// task.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a PostgreSQL-backed TaskStore. If log is nil the
// process default logger is used.
func NewTaskStore(db store.DBTX, log *slog.Logger) *TaskStore {
	if log == nil {
		log = slog.Default()
	}
	return &TaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Create implements store.TaskStore.Create. The INSERT ... SELECT form
// makes the board ownership check and the insert a single statement:
// zero rows inserted means the board is absent or not ours.
func (s *TaskStore) Create(ctx context.Context, ownerID uuid.UUID, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (id, name, description, status, icon, board_id)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (
			SELECT 1 FROM boards WHERE id = $6 AND user_id = $7
		)
	`
	result, err := s.db.ExecContext(ctx, query,
		task.ID, task.Name, task.Description, task.Status, task.Icon,
		task.BoardID, ownerID)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("board_id", task.BoardID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBoardNotFound); err != nil {
		return err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("board_id", task.BoardID.String()))
	return nil
}

// ListByBoard implements store.TaskStore.ListByBoard.
func (s *TaskStore) ListByBoard(ctx context.Context, ownerID, boardID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT t.id, t.name, t.description, t.status, t.icon, t.board_id
		FROM tasks t
		JOIN boards b ON b.id = t.board_id
		WHERE t.board_id = $1 AND b.user_id = $2
	`
	rows, err := s.db.QueryContext(ctx, query, boardID, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("board_id", boardID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Name,
			&task.Description,
			&task.Status,
			&task.Icon,
			&task.BoardID,
		); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update. Each optional field binds
// either a value or NULL; COALESCE keeps the stored value for NULLs, so
// "absent field" means "unchanged" without any dynamic SQL assembly.
func (s *TaskStore) Update(ctx context.Context, ownerID, taskID uuid.UUID, update store.TaskUpdate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Nothing to change is a successful no-op, but only when the task is
	// actually visible to the caller.
	if update.IsEmpty() {
		return s.checkVisible(ctx, ownerID, taskID)
	}

	query := `
		UPDATE tasks
		SET name        = COALESCE($1, name),
		    description = COALESCE($2, description),
		    status      = COALESCE($3, status),
		    icon        = COALESCE($4, icon)
		WHERE id = $5
		  AND board_id IN (SELECT id FROM boards WHERE user_id = $6)
	`
	result, err := s.db.ExecContext(ctx, query,
		update.Name, update.Description, update.Status, update.Icon,
		taskID, ownerID)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1
		  AND board_id IN (SELECT id FROM boards WHERE user_id = $2)
	`
	result, err := s.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Info("task deleted", slog.String("task_id", taskID.String()))
	return nil
}

// DeleteByBoard implements store.TaskStore.DeleteByBoard. Zero rows is not
// an error here: a board may legitimately have no tasks.
func (s *TaskStore) DeleteByBoard(ctx context.Context, ownerID, boardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE board_id = $1
		  AND board_id IN (SELECT id FROM boards WHERE id = $1 AND user_id = $2)
	`
	if _, err := s.db.ExecContext(ctx, query, boardID, ownerID); err != nil {
		log.Error("failed to delete board tasks",
			slog.String("error", err.Error()),
			slog.String("board_id", boardID.String()))
		return MapError(err)
	}

	return nil
}

func (s *TaskStore) checkVisible(ctx context.Context, ownerID, taskID uuid.UUID) error {
	query := `
		SELECT 1
		FROM tasks t
		JOIN boards b ON b.id = t.board_id
		WHERE t.id = $1 AND b.user_id = $2
	`
	var one int
	if err := s.db.QueryRowContext(ctx, query, taskID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrTaskNotFound
		}
		return MapError(err)
	}
	return nil
}

// WithTx implements store.TaskStore.WithTx.
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{db: tx, logger: s.logger}
}
