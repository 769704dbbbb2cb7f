package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMemberRole represents the role of a user within a team
type TeamMemberRole string

const (
	TeamMemberRoleOwner  TeamMemberRole = "owner"
	TeamMemberRoleMember TeamMemberRole = "member"
)

// TeamMember is the association row linking a user to a team with a role.
// Unlike the UUID-keyed tables it uses a plain autoincrement key.
type TeamMember struct {
	ID       int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	JoinedAt time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	Role     *string    `json:"role,omitempty" gorm:"size:50"`
	TeamID   *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_team_members_team_user"`
	UserID   *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_team_members_team_user"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
