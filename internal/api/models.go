package api

import (
	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

// Request payloads.

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateBoardRequest defines the payload for board creation.
type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateBoardRequest defines the payload for board updates. Name must be
// supplied on every update; a nil Description leaves the stored value
// untouched.
type UpdateBoardRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// CreateTaskRequest defines the payload for task creation. Status and
// icon are optional; an absent status defaults to "In Progress".
type CreateTaskRequest struct {
	Name        string `json:"name"     validate:"required"`
	BoardID     string `json:"board_id" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Icon        string `json:"icon"`
}

// UpdateTaskRequest defines the payload for partial task updates. Only
// non-nil fields change; supplying none of them is a no-op success.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Icon        *string `json:"icon"`
}

// Response payloads.

// MessageResponse is the generic success envelope for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserPayload is the public view of a user.
type UserPayload struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// LoginResponse is the successful login body: the identity token plus the
// user it names.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// BoardPayload is the public view of a board.
type BoardPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// TaskPayload is the public view of a task.
type TaskPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Icon        string    `json:"icon"`
}

// BoardListResponse is the body of the board listing endpoint.
type BoardListResponse struct {
	Boards []BoardPayload `json:"boards"`
}

// BoardDetailResponse is the body of the single-board endpoint: the board
// plus all its tasks.
type BoardDetailResponse struct {
	Board BoardPayload  `json:"board"`
	Tasks []TaskPayload `json:"tasks"`
}

// CreateBoardResponse is the body of a successful board creation.
type CreateBoardResponse struct {
	Message string    `json:"message"`
	BoardID uuid.UUID `json:"board_id"`
}

// CreateTaskResponse is the body of a successful task creation.
type CreateTaskResponse struct {
	Message string    `json:"message"`
	TaskID  uuid.UUID `json:"task_id"`
}

// Conversions from domain entities.

func toUserPayload(user *domain.User) UserPayload {
	return UserPayload{ID: user.ID, Username: user.Username, Email: user.Email}
}

func toBoardPayload(board *domain.Board) BoardPayload {
	return BoardPayload{ID: board.ID, Name: board.Name, Description: board.Description}
}

func toTaskPayloads(tasks []*domain.Task) []TaskPayload {
	payloads := make([]TaskPayload, 0, len(tasks))
	for _, task := range tasks {
		payloads = append(payloads, TaskPayload{
			ID:          task.ID,
			Name:        task.Name,
			Description: task.Description,
			Status:      task.Status,
			Icon:        task.Icon,
		})
	}
	return payloads
}
