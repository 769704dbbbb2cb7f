package service

import (
	"errors"
	"fmt"
	"time"

	"ticket-tracker-backend/internal/database/models"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for ticket comments
type CommentService struct {
	repo      repository.CommentRepositoryInterface
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(repo repository.CommentRepositoryInterface, validator *validator.Validate) *CommentService {
	return &CommentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	TicketID uuid.UUID `json:"ticket_id" validate:"required"`
	Content  string    `json:"content" validate:"required"`
}

// CommentWithUser is a comment row joined with the authoring user's public
// profile fields.
type CommentWithUser struct {
	ID        uuid.UUID            `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt *time.Time           `json:"updated_at,omitempty"`
	Content   *string              `json:"content,omitempty"`
	TicketID  uuid.UUID            `json:"ticket_id"`
	UserID    uuid.UUID            `json:"user_id"`
	User      models.PublicProfile `json:"users"`
}

// ListForTicket retrieves all comments for a ticket with their authors,
// ordered by creation time ascending.
func (s *CommentService) ListForTicket(ticketID uuid.UUID) ([]CommentWithUser, error) {
	comments, err := s.repo.GetByTicketID(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	result := make([]CommentWithUser, 0, len(comments))
	for i := range comments {
		result = append(result, toCommentWithUser(&comments[i]))
	}
	return result, nil
}

// Create inserts a new comment and returns it joined with the author profile
func (s *CommentService) Create(userID uuid.UUID, req *CreateCommentRequest) (*CommentWithUser, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	comment := &models.Comment{
		TicketID: req.TicketID,
		UserID:   userID,
		Content:  &req.Content,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	// Reload to pick up the author join, matching what reads return
	saved, err := s.repo.GetByID(comment.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}

	result := toCommentWithUser(saved)
	return &result, nil
}

func toCommentWithUser(comment *models.Comment) CommentWithUser {
	out := CommentWithUser{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Content:   comment.Content,
		TicketID:  comment.TicketID,
		UserID:    comment.UserID,
	}
	if comment.User != nil {
		out.User = comment.User.Public()
	}
	return out
}
