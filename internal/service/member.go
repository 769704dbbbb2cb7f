package service

import (
	"fmt"

	"ticket-tracker-backend/internal/database/models"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/logger"
	"ticket-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// MemberService handles business logic for team memberships
type MemberService struct {
	repo  repository.TeamMemberRepositoryInterface
	scope ScopeServiceInterface
	log   *logger.Logger
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.TeamMemberRepositoryInterface, scope ScopeServiceInterface) *MemberService {
	return &MemberService{
		repo:  repo,
		scope: scope,
		log:   logger.New(),
	}
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   *string   `json:"role,omitempty"`
}

// ListForCurrentTeam validates the caller's session scope, then lists the
// users of the team currently in view. Member lists are supporting data;
// any failure degrades to an empty list with a diagnostic log entry.
func (s *MemberService) ListForCurrentTeam(userID uuid.UUID) []models.User {
	s.scope.Validate(userID)

	scope, err := s.scope.Get(userID)
	if err != nil {
		s.log.WithField("user_id", userID).WithField("error", err.Error()).
			Error("failed to load session scope for member list")
		return []models.User{}
	}
	if scope.TeamID == "" {
		return []models.User{}
	}

	teamID, err := uuid.Parse(scope.TeamID)
	if err != nil {
		s.log.WithField("team_id", scope.TeamID).Error("stored team id is not a UUID")
		return []models.User{}
	}

	users, err := s.repo.GetUsersByTeamID(teamID)
	if err != nil {
		s.log.WithField("team_id", teamID).WithField("error", err.Error()).
			Error("failed to fetch team members")
		return []models.User{}
	}
	return users
}

// ListForTeam lists the users of an explicit team
func (s *MemberService) ListForTeam(teamID uuid.UUID) ([]models.User, error) {
	users, err := s.repo.GetUsersByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return users, nil
}

// Add links a user to a team
func (s *MemberService) Add(teamID uuid.UUID, req *AddMemberRequest) error {
	exists, err := s.repo.Exists(teamID, req.UserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return apperrors.ErrMemberExists
	}

	role := req.Role
	if role == nil {
		defaultRole := string(models.TeamMemberRoleMember)
		role = &defaultRole
	}
	member := &models.TeamMember{
		TeamID: &teamID,
		UserID: &req.UserID,
		Role:   role,
	}
	if err := s.repo.Add(member); err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// Remove unlinks a user from a team
func (s *MemberService) Remove(teamID, userID uuid.UUID) error {
	exists, err := s.repo.Exists(teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !exists {
		return apperrors.ErrMemberNotFound
	}

	if err := s.repo.Remove(teamID, userID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}
