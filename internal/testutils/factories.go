package testutils

import (
	"fmt"
	"time"

	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	name := "Test User"
	email := "user-" + id.String()[:8] + "@test.com"

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		DisplayName: &name,
		Email:       &email,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = &email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create(createdBy uuid.UUID) *models.Team {
	name := "Test Team"

	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:          &name,
		CreatedByUser: createdBy,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(createdBy uuid.UUID, name string) *models.Team {
	team := f.Create(createdBy)
	team.Name = &name
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership row linking a user to a team
func (f *TeamMemberFactory) Create(teamID, userID uuid.UUID) *models.TeamMember {
	role := string(models.TeamMemberRoleMember)

	return &models.TeamMember{
		TeamID: &teamID,
		UserID: &userID,
		Role:   &role,
	}
}

// BoardFactory provides methods to create test Board data
type BoardFactory struct{}

// NewBoardFactory creates a new BoardFactory
func NewBoardFactory() *BoardFactory {
	return &BoardFactory{}
}

// Create creates a test Board within a team
func (f *BoardFactory) Create(teamID uuid.UUID) *models.Board {
	name := "Test Board"

	return &models.Board{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:   &name,
		TeamID: &teamID,
	}
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket on a board
func (f *TicketFactory) Create(boardID, createdBy uuid.UUID) *models.Ticket {
	id := uuid.New()
	num := 1
	prefix := "TST"
	key := "TST-1"
	priority := models.TicketPriorityMedium
	ticketType := models.TicketTypeTask

	return &models.Ticket{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Title:          "Test Ticket",
		TicketStatus:   models.TicketStatusTodo,
		TicketPriority: &priority,
		TicketType:     &ticketType,
		TicketNum:      &num,
		TicketPrefix:   &prefix,
		TicketIDStr:    &key,
		BoardID:        &boardID,
		CreatedByUser:  createdBy,
	}
}

// WithKey sets a custom prefix/number pair and display key
func (f *TicketFactory) WithKey(boardID, createdBy uuid.UUID, prefix string, num int) *models.Ticket {
	ticket := f.Create(boardID, createdBy)
	key := fmt.Sprintf("%s-%d", prefix, num)
	ticket.TicketPrefix = &prefix
	ticket.TicketNum = &num
	ticket.TicketIDStr = &key
	return ticket
}

// Epic creates a test epic ticket
func (f *TicketFactory) Epic(createdBy uuid.UUID) *models.Ticket {
	ticket := f.Create(uuid.Nil, createdBy)
	epicType := models.TicketTypeEpic
	ticket.TicketType = &epicType
	ticket.BoardID = nil
	ticket.Title = "Test Epic"
	return ticket
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	TeamMember *TeamMemberFactory
	Board      *BoardFactory
	Ticket     *TicketFactory
	Comment    *CommentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		TeamMember: NewTeamMemberFactory(),
		Board:      NewBoardFactory(),
		Ticket:     NewTicketFactory(),
		Comment:    NewCommentFactory(),
	}
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a test Comment on a ticket
func (f *CommentFactory) Create(ticketID, userID uuid.UUID) *models.Comment {
	content := "Test comment"

	return &models.Comment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Content:  &content,
		TicketID: ticketID,
		UserID:   userID,
	}
}
