package repository

import (
	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByKey retrieves a ticket by its human-facing key ("PREFIX-42")
func (r *TicketRepository) GetByKey(key string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "ticket_id_str = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetByBoardID retrieves all tickets for a board
func (r *TicketRepository) GetByBoardID(boardID uuid.UUID) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Where("board_id = ?", boardID).Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetEpics retrieves all tickets of type epic across boards
func (r *TicketRepository) GetEpics() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Where("ticket_type = ?", models.TicketTypeEpic).Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// Delete deletes a ticket
func (r *TicketRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Ticket{}, "id = ?", id).Error
}
