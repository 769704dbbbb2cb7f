package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket represents a work item on a board. TicketIDStr is the human-facing
// key ("PREFIX-42") assembled from TicketPrefix and TicketNum.
type Ticket struct {
	BaseModel
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
	Title          string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description    *string         `json:"description,omitempty"`
	TicketStatus   TicketStatus    `json:"ticket_status" gorm:"type:varchar(20);not null" validate:"required"`
	TicketPriority *TicketPriority `json:"ticket_priority,omitempty" gorm:"type:varchar(20)"`
	TicketType     *TicketType     `json:"ticket_type,omitempty" gorm:"type:varchar(20)"`
	StoryPoints    *int            `json:"story_points,omitempty"`
	TicketNum      *int            `json:"ticket_num,omitempty"`
	TicketPrefix   *string         `json:"ticket_prefix,omitempty" gorm:"size:10"`
	TicketIDStr    *string         `json:"ticket_id_str,omitempty" gorm:"size:20;index"`
	BoardID        *uuid.UUID      `json:"board_id,omitempty" gorm:"type:uuid;index"`
	AssignedUser   *uuid.UUID      `json:"assigned_user,omitempty" gorm:"type:uuid;index"`
	CreatedByUser  uuid.UUID       `json:"created_by_user" gorm:"type:uuid;not null"`
	EpicTicketID   *uuid.UUID      `json:"epic_ticket_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Board      *Board  `json:"board,omitempty" gorm:"foreignKey:BoardID;constraint:OnDelete:SET NULL"`
	Assignee   *User   `json:"assignee,omitempty" gorm:"foreignKey:AssignedUser"`
	EpicTicket *Ticket `json:"epic_ticket,omitempty" gorm:"foreignKey:EpicTicketID"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
