package repository

import (
	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByUserID(userID uuid.UUID) ([]models.Team, error)
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for membership operations
type TeamMemberRepositoryInterface interface {
	Add(member *models.TeamMember) error
	Remove(teamID, userID uuid.UUID) error
	GetUsersByTeamID(teamID uuid.UUID) ([]models.User, error)
	Exists(teamID, userID uuid.UUID) (bool, error)
}

// BoardRepositoryInterface defines the interface for board repository operations
type BoardRepositoryInterface interface {
	Create(board *models.Board) error
	GetByID(id uuid.UUID) (*models.Board, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Board, error)
	Update(board *models.Board) error
	Delete(id uuid.UUID) error
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ticket *models.Ticket) error
	GetByID(id uuid.UUID) (*models.Ticket, error)
	GetByKey(key string) (*models.Ticket, error)
	GetByBoardID(boardID uuid.UUID) ([]models.Ticket, error)
	GetEpics() ([]models.Ticket, error)
	Update(ticket *models.Ticket) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByTicketID(ticketID uuid.UUID) ([]models.Comment, error)
}

// ScopeStoreInterface defines the durable keyed storage for session scopes
type ScopeStoreInterface interface {
	Get(userID uuid.UUID) (*models.UserScope, error)
	Save(scope *models.UserScope) error
	Clear(userID uuid.UUID) error
}
