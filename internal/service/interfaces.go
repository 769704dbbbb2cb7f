package service

import (
	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*models.User, error)
	Update(userID uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	Delete(userID uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListForUser(userID uuid.UUID) ([]models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	Create(userID uuid.UUID, req *CreateTeamRequest) (*models.Team, error)
	Delete(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for membership service
type MemberServiceInterface interface {
	ListForCurrentTeam(userID uuid.UUID) []models.User
	ListForTeam(teamID uuid.UUID) ([]models.User, error)
	Add(teamID uuid.UUID, req *AddMemberRequest) error
	Remove(teamID, userID uuid.UUID) error
}

// BoardServiceInterface defines the interface for board service
type BoardServiceInterface interface {
	ListForTeam(teamID string) ([]models.Board, error)
	GetByID(id uuid.UUID) (*models.Board, error)
	Create(req *CreateBoardRequest) (*models.Board, error)
	Update(id uuid.UUID, req *UpdateBoardRequest) (*models.Board, error)
	Delete(id uuid.UUID) error
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	ListForBoard(boardID uuid.UUID) ([]models.Ticket, error)
	GetByKey(key string) (*models.Ticket, error)
	ListEpics() []models.Ticket
	Create(userID uuid.UUID, req *CreateTicketRequest) (*models.Ticket, error)
	Update(id uuid.UUID, req *UpdateTicketRequest) (*models.Ticket, error)
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	ListForTicket(ticketID uuid.UUID) ([]CommentWithUser, error)
	Create(userID uuid.UUID, req *CreateCommentRequest) (*CommentWithUser, error)
}

// ScopeServiceInterface defines the interface for the session scope resolver
type ScopeServiceInterface interface {
	Validate(userID uuid.UUID) bool
	Clear(userID uuid.UUID)
	Get(userID uuid.UUID) (*models.UserScope, error)
	Set(userID uuid.UUID, teamID, boardID string) error
}
