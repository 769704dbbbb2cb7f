package repository

import (
	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Add creates a new membership row
func (r *TeamMemberRepository) Add(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// Remove deletes the membership linking a user to a team
func (r *TeamMemberRepository) Remove(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}

// GetUsersByTeamID retrieves the users belonging to a team, joined through
// team_members and ordered by join time.
func (r *TeamMemberRepository) GetUsersByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN team_members ON team_members.user_id = users.id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.joined_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Exists reports whether a membership row links the user to the team
func (r *TeamMemberRepository) Exists(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
