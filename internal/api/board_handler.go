package api

import (
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/service"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// BoardHandler handles the board CRUD endpoints. All operations run under
// the identity resolved by the auth middleware; board IDs supplied by the
// client are only ever interpreted within that owner's scope.
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a BoardHandler with the given dependencies.
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// List handles GET /api/boards.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	boards, err := h.boardService.List(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list boards")
		return
	}

	payloads := make([]BoardPayload, 0, len(boards))
	for _, board := range boards {
		payloads = append(payloads, toBoardPayload(board))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BoardListResponse{Boards: payloads})
}

// Create handles POST /api/boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Board name is required!")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Board name is required!")
		return
	}

	board, err := h.boardService.Create(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateBoardResponse{
		Message: "Board created successfully!",
		BoardID: board.ID,
	})
}

// Get handles GET /api/boards/{id}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	boardID, err := pathUUID(r, "id", store.ErrBoardNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	board, tasks, err := h.boardService.Get(r.Context(), user.ID, boardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BoardDetailResponse{
		Board: toBoardPayload(board),
		Tasks: toTaskPayloads(tasks),
	})
}

// Update handles PUT /api/boards/{id}.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	boardID, err := pathUUID(r, "id", store.ErrBoardNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Board name is required!")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Board name is required!")
		return
	}

	update := store.BoardUpdate{Name: req.Name, Description: req.Description}
	if err := h.boardService.Update(r.Context(), user.ID, boardID, update); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		MessageResponse{Message: "Board updated successfully!"})
}

// Delete handles DELETE /api/boards/{id}.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	boardID, err := pathUUID(r, "id", store.ErrBoardNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.boardService.Delete(r.Context(), user.ID, boardID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		MessageResponse{Message: "Board deleted successfully!"})
}
