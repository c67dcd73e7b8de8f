package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Conventional task status labels. The status column is an open set:
// these constants cover the values the UI knows about, but any string
// is accepted and stored verbatim.
const (
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
	TaskStatusWontDo     = "Won't do"
)

// Validation errors for Task.
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskBoardID = errors.New("task board ID cannot be empty")
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
)

// Task is a unit of work belonging to exactly one board. Ownership is
// never stored on the task itself; it is always resolved through the
// parent board's owner.
type Task struct {
	ID          uuid.UUID `json:"id"`
	BoardID     uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Icon        string    `json:"icon"`
}

// NewTask creates a Task with a fresh ID. An empty status defaults to
// "In Progress"; description and icon may be empty.
func NewTask(boardID uuid.UUID, name, description, status, icon string) (*Task, error) {
	if status == "" {
		status = TaskStatusInProgress
	}

	task := &Task{
		ID:          uuid.New(),
		BoardID:     boardID,
		Name:        name,
		Description: description,
		Status:      status,
		Icon:        icon,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.BoardID == uuid.Nil {
		return ErrEmptyTaskBoardID
	}

	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTaskName
	}

	return nil
}

// DefaultBoardTasks returns the three starter tasks seeded into every
// newly created board, one per conventional status label.
func DefaultBoardTasks(boardID uuid.UUID) []*Task {
	return []*Task{
		{
			ID:          uuid.New(),
			BoardID:     boardID,
			Name:        "Task in Progress",
			Description: "A task that is currently in progress",
			Status:      TaskStatusInProgress,
		},
		{
			ID:          uuid.New(),
			BoardID:     boardID,
			Name:        "Task Completed",
			Description: "A task that has been completed",
			Status:      TaskStatusCompleted,
		},
		{
			ID:          uuid.New(),
			BoardID:     boardID,
			Name:        "Task Won't Do",
			Description: "A task that won't be done",
			Status:      TaskStatusWontDo,
		},
	}
}
