package models

import (
	"time"

	"github.com/google/uuid"
)

// UserScope is the durable session scope for one user: the team and board
// currently in view. Empty strings mean "not selected". An absent row is
// equivalent to an empty scope.
type UserScope struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	TeamID    string    `json:"team_id" gorm:"size:40"`
	BoardID   string    `json:"board_id" gorm:"size:40"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for UserScope
func (UserScope) TableName() string {
	return "user_scopes"
}
