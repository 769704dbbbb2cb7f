package handlers

import (
	"errors"
	"net/http"

	"ticket-tracker-backend/internal/auth"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for comment operations
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// GetTicketComments handles GET /tickets/:id/comments
// @Summary List comments on a ticket
// @Description List a ticket's comments with their authors, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {array} service.CommentWithUser "Comments"
// @Failure 400 {object} ErrorResponse "Invalid ticket ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/comments [get]
func (h *CommentHandler) GetTicketComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket ID"})
		return
	}

	comments, err := h.commentService.ListForTicket(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment handles POST /tickets/:id/comments
// @Summary Comment on a ticket
// @Description Create a comment authored by the session user
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} service.CommentWithUser "Created comment with author"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket ID"})
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TicketID = id

	comment, err := h.commentService.Create(userID, &req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
