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

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ListForUser retrieves the teams the caller is a member of, in membership
// join order. Fails with ErrUnauthenticated when no session user is present.
func (s *TeamService) ListForUser(userID uuid.UUID) ([]models.Team, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	teams, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// Create creates a new team with the caller as its owner member
func (s *TeamService) Create(userID uuid.UUID, req *CreateTeamRequest) (*models.Team, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.Team{
		Name:          &req.Name,
		CreatedByUser: userID,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	role := string(models.TeamMemberRoleOwner)
	member := &models.TeamMember{
		TeamID: &team.ID,
		UserID: &userID,
		Role:   &role,
	}
	if err := s.memberRepo.Add(member); err != nil {
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	return team, nil
}

// Delete deletes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
