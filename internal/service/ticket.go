package service

import (
	"errors"
	"fmt"

	"ticket-tracker-backend/internal/database/models"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/logger"
	"ticket-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketService handles business logic for tickets
type TicketService struct {
	repo      repository.TicketRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTicketService creates a new ticket service
func NewTicketService(repo repository.TicketRepositoryInterface, validator *validator.Validate) *TicketService {
	return &TicketService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateTicketRequest represents the request to create a ticket
type CreateTicketRequest struct {
	Title          string                 `json:"title" validate:"required,max=200"`
	Description    *string                `json:"description,omitempty"`
	TicketStatus   models.TicketStatus    `json:"ticket_status" validate:"required"`
	TicketPriority *models.TicketPriority `json:"ticket_priority,omitempty"`
	TicketType     *models.TicketType     `json:"ticket_type,omitempty"`
	StoryPoints    *int                   `json:"story_points,omitempty"`
	TicketNum      *int                   `json:"ticket_num,omitempty"`
	TicketPrefix   *string                `json:"ticket_prefix,omitempty" validate:"omitempty,max=10"`
	BoardID        *uuid.UUID             `json:"board_id,omitempty"`
	AssignedUser   *uuid.UUID             `json:"assigned_user,omitempty"`
	EpicTicketID   *uuid.UUID             `json:"epic_ticket_id,omitempty"`
}

// UpdateTicketRequest represents the request to update a ticket; all fields
// are optional and only present ones are applied.
type UpdateTicketRequest struct {
	Title          *string                `json:"title,omitempty" validate:"omitempty,max=200"`
	Description    *string                `json:"description,omitempty"`
	TicketStatus   *models.TicketStatus   `json:"ticket_status,omitempty"`
	TicketPriority *models.TicketPriority `json:"ticket_priority,omitempty"`
	TicketType     *models.TicketType     `json:"ticket_type,omitempty"`
	StoryPoints    *int                   `json:"story_points,omitempty"`
	BoardID        *uuid.UUID             `json:"board_id,omitempty"`
	AssignedUser   *uuid.UUID             `json:"assigned_user,omitempty"`
	EpicTicketID   *uuid.UUID             `json:"epic_ticket_id,omitempty"`
}

// ListForBoard retrieves all tickets on a board
func (s *TicketService) ListForBoard(boardID uuid.UUID) ([]models.Ticket, error) {
	tickets, err := s.repo.GetByBoardID(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// GetByKey retrieves a ticket by its human-facing key ("PREFIX-42")
func (s *TicketService) GetByKey(key string) (*models.Ticket, error) {
	ticket, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket %s: %w", key, err)
	}
	return ticket, nil
}

// ListEpics retrieves all epic tickets. Epics are supporting data for the
// ticket form; a failed lookup degrades to an empty list instead of
// propagating, so the page still renders.
func (s *TicketService) ListEpics() []models.Ticket {
	tickets, err := s.repo.GetEpics()
	if err != nil {
		s.log.WithField("error", err.Error()).Error("failed to fetch epic tickets")
		return []models.Ticket{}
	}
	return tickets
}

// Create inserts a new ticket and returns the created row
func (s *TicketService) Create(userID uuid.UUID, req *CreateTicketRequest) (*models.Ticket, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateEnums(&req.TicketStatus, req.TicketPriority, req.TicketType); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:          req.Title,
		Description:    req.Description,
		TicketStatus:   req.TicketStatus,
		TicketPriority: req.TicketPriority,
		TicketType:     req.TicketType,
		StoryPoints:    req.StoryPoints,
		TicketNum:      req.TicketNum,
		TicketPrefix:   req.TicketPrefix,
		BoardID:        req.BoardID,
		AssignedUser:   req.AssignedUser,
		CreatedByUser:  userID,
		EpicTicketID:   req.EpicTicketID,
	}
	if req.TicketPrefix != nil && req.TicketNum != nil {
		key := fmt.Sprintf("%s-%d", *req.TicketPrefix, *req.TicketNum)
		ticket.TicketIDStr = &key
	}

	if err := s.repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}
	return ticket, nil
}

// Update applies the present fields to a ticket and returns the updated row
func (s *TicketService) Update(id uuid.UUID, req *UpdateTicketRequest) (*models.Ticket, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateEnums(req.TicketStatus, req.TicketPriority, req.TicketType); err != nil {
		return nil, err
	}

	ticket, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = req.Description
	}
	if req.TicketStatus != nil {
		ticket.TicketStatus = *req.TicketStatus
	}
	if req.TicketPriority != nil {
		ticket.TicketPriority = req.TicketPriority
	}
	if req.TicketType != nil {
		ticket.TicketType = req.TicketType
	}
	if req.StoryPoints != nil {
		ticket.StoryPoints = req.StoryPoints
	}
	if req.BoardID != nil {
		ticket.BoardID = req.BoardID
	}
	if req.AssignedUser != nil {
		ticket.AssignedUser = req.AssignedUser
	}
	if req.EpicTicketID != nil {
		ticket.EpicTicketID = req.EpicTicketID
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return ticket, nil
}

// validateEnums checks the enum-typed fields against the known value sets.
// Nil pointers are skipped.
func validateEnums(status *models.TicketStatus, priority *models.TicketPriority, ticketType *models.TicketType) error {
	if status != nil && !status.Valid() {
		return apperrors.ErrInvalidStatus
	}
	if priority != nil && !priority.Valid() {
		return apperrors.ErrInvalidPriority
	}
	if ticketType != nil && !ticketType.Valid() {
		return apperrors.ErrInvalidType
	}
	return nil
}
