package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a ticket. Reads always embed the authoring
// user's public profile, ordered by creation time ascending.
type Comment struct {
	BaseModel
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Content   *string    `json:"content,omitempty"`
	TicketID  uuid.UUID  `json:"ticket_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`

	// Relationships
	Ticket *Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
