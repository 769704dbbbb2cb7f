package models

import (
	"github.com/google/uuid"
)

// Board represents a ticket board belonging to a team
type Board struct {
	BaseModel
	Name   *string    `json:"name,omitempty" gorm:"size:100"`
	TeamID *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Board
func (Board) TableName() string {
	return "boards"
}
