package models

import (
	"github.com/google/uuid"
)

// Team represents a team owning boards and memberships
type Team struct {
	BaseModel
	Name          *string   `json:"name,omitempty" gorm:"size:100"`
	CreatedByUser uuid.UUID `json:"created_by_user" gorm:"type:uuid;not null;index"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Boards  []Board      `json:"boards,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
