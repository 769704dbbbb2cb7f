package service

import (
	"errors"
	"fmt"

	"ticket-tracker-backend/internal/database/models"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardService handles business logic for boards
type BoardService struct {
	repo      repository.BoardRepositoryInterface
	validator *validator.Validate
}

// NewBoardService creates a new board service
func NewBoardService(repo repository.BoardRepositoryInterface, validator *validator.Validate) *BoardService {
	return &BoardService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Name   string    `json:"name" validate:"required,min=1,max=100"`
	TeamID uuid.UUID `json:"team_id" validate:"required"`
}

// UpdateBoardRequest represents the request to rename a board
type UpdateBoardRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ListForTeam retrieves the boards of a team. An empty team id short-circuits
// to an empty slice without touching the backend, so callers with no team
// selected never issue a malformed filter.
func (s *BoardService) ListForTeam(teamID string) ([]models.Board, error) {
	if teamID == "" {
		return []models.Board{}, nil
	}

	id, err := uuid.Parse(teamID)
	if err != nil {
		return nil, apperrors.NewValidationError("team_id", "invalid team ID")
	}

	boards, err := s.repo.GetByTeamID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// GetByID retrieves a board by ID
func (s *BoardService) GetByID(id uuid.UUID) (*models.Board, error) {
	board, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return board, nil
}

// Create creates a new board
func (s *BoardService) Create(req *CreateBoardRequest) (*models.Board, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	board := &models.Board{
		Name:   &req.Name,
		TeamID: &req.TeamID,
	}
	if err := s.repo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

// Update renames a board and returns the updated row
func (s *BoardService) Update(id uuid.UUID, req *UpdateBoardRequest) (*models.Board, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	board, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	board.Name = &req.Name
	if err := s.repo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}
	return board, nil
}

// Delete deletes a board
func (s *BoardService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBoardNotFound
		}
		return fmt.Errorf("failed to get board: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}
