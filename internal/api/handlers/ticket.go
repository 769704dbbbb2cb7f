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

// TicketHandler handles HTTP requests for ticket operations
type TicketHandler struct {
	ticketService service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// GetBoardTickets handles GET /boards/:id/tickets
// @Summary List tickets on a board
// @Description List all tickets of a board
// @Tags tickets
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Success 200 {array} models.Ticket "Tickets"
// @Failure 400 {object} ErrorResponse "Invalid board ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /boards/{id}/tickets [get]
func (h *TicketHandler) GetBoardTickets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return
	}

	tickets, err := h.ticketService.ListForBoard(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// GetEpics handles GET /tickets/epics
// @Summary List epic tickets
// @Description List all epic tickets. Lookup failures yield an empty list.
// @Tags tickets
// @Produce json
// @Success 200 {array} models.Ticket "Epics (possibly empty)"
// @Security BearerAuth
// @Router /tickets/epics [get]
func (h *TicketHandler) GetEpics(c *gin.Context) {
	c.JSON(http.StatusOK, h.ticketService.ListEpics())
}

// GetTicketByKey handles GET /tickets/by-key/:key
// @Summary Get ticket by key
// @Description Get a ticket by its display key, e.g. PROJ-42
// @Tags tickets
// @Produce json
// @Param key path string true "Ticket key"
// @Success 200 {object} models.Ticket "Ticket"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Security BearerAuth
// @Router /tickets/by-key/{key} [get]
func (h *TicketHandler) GetTicketByKey(c *gin.Context) {
	ticket, err := h.ticketService.GetByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// CreateTicket handles POST /tickets
// @Summary Create a new ticket
// @Description Create a ticket authored by the session user
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} models.Ticket "Created ticket"
// @Failure 400 {object} ErrorResponse "Invalid request body or enum value"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Create(userID, &req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if isEnumError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// UpdateTicket handles PUT /tickets/:id
// @Summary Update a ticket
// @Description Apply the present fields to a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param ticket body service.UpdateTicketRequest true "Ticket fields"
// @Success 200 {object} models.Ticket "Updated ticket"
// @Failure 400 {object} ErrorResponse "Invalid request body or enum value"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket ID"})
		return
	}

	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isEnumError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func isEnumError(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidStatus) ||
		errors.Is(err, apperrors.ErrInvalidPriority) ||
		errors.Is(err, apperrors.ErrInvalidType)
}
