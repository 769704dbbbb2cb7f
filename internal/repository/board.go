package repository

import (
	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardRepository handles database operations for boards
type BoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create creates a new board
func (r *BoardRepository) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

// GetByID retrieves a board by ID
func (r *BoardRepository) GetByID(id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := r.db.First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetByTeamID retrieves all boards for a team ordered by creation time
func (r *BoardRepository) GetByTeamID(teamID uuid.UUID) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates a board
func (r *BoardRepository) Update(board *models.Board) error {
	return r.db.Save(board).Error
}

// Delete deletes a board
func (r *BoardRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Board{}, "id = ?", id).Error
}
