package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors for Board.
var (
	ErrEmptyBoardID      = errors.New("board ID cannot be empty")
	ErrEmptyBoardOwnerID = errors.New("board owner ID cannot be empty")
	ErrEmptyBoardName    = errors.New("board name cannot be empty")
)

// Board is a named collection of tasks owned by exactly one user.
// Visibility and mutability are restricted to the owner on every operation.
type Board struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBoard creates a Board with a fresh ID and creation timestamp.
// Description may be empty.
func NewBoard(ownerID uuid.UUID, name, description string) (*Board, error) {
	board := &Board{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	return board, nil
}

// Validate checks that the Board has valid data.
func (b *Board) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBoardID
	}

	if b.OwnerID == uuid.Nil {
		return ErrEmptyBoardOwnerID
	}

	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyBoardName
	}

	return nil
}
