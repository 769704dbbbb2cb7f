package handlers

import (
	"errors"
	"net/http"

	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardHandler handles HTTP requests for board operations
type BoardHandler struct {
	boardService service.BoardServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService service.BoardServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// GetTeamBoards handles GET /teams/:id/boards
// @Summary List boards of a team
// @Description List the boards of a team, oldest first
// @Tags boards
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} models.Board "Boards"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/boards [get]
func (h *BoardHandler) GetTeamBoards(c *gin.Context) {
	boards, err := h.boardService.ListForTeam(c.Param("id"))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, boards)
}

// GetBoard handles GET /boards/:id
// @Summary Get board by ID
// @Description Get a specific board by its UUID
// @Tags boards
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Success 200 {object} models.Board "Board"
// @Failure 400 {object} ErrorResponse "Invalid board ID"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Security BearerAuth
// @Router /boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}

	board, err := h.boardService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateBoard handles POST /boards
// @Summary Create a new board
// @Description Create a board within a team
// @Tags boards
// @Accept json
// @Produce json
// @Param board body service.CreateBoardRequest true "Board data"
// @Success 201 {object} models.Board "Created board"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req service.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boardService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, board)
}

// UpdateBoard handles PUT /boards/:id
// @Summary Rename a board
// @Description Rename a board by its UUID
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Param board body service.UpdateBoardRequest true "Board data"
// @Success 200 {object} models.Board "Updated board"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Security BearerAuth
// @Router /boards/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}

	var req service.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boardService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}

// DeleteBoard handles DELETE /boards/:id
// @Summary Delete a board
// @Description Delete a board by its UUID
// @Tags boards
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Success 204 "Board deleted"
// @Failure 400 {object} ErrorResponse "Invalid board ID"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Security BearerAuth
// @Router /boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}

	if err := h.boardService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
