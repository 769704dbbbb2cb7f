package repository

import (
	"errors"

	"ticket-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScopeStore persists the per-user session scope (current team and board).
// An absent row reads back as an empty scope.
type ScopeStore struct {
	db *gorm.DB
}

// NewScopeStore creates a new scope store
func NewScopeStore(db *gorm.DB) *ScopeStore {
	return &ScopeStore{db: db}
}

// Get retrieves the stored scope for a user, returning an empty scope when
// no row exists.
func (s *ScopeStore) Get(userID uuid.UUID) (*models.UserScope, error) {
	var scope models.UserScope
	err := s.db.First(&scope, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserScope{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &scope, nil
}

// Save upserts the scope row for a user
func (s *ScopeStore) Save(scope *models.UserScope) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"team_id", "board_id", "updated_at"}),
	}).Create(scope).Error
}

// Clear empties both identifiers for a user. Deleting the row and writing an
// empty one are equivalent; the row is kept so updated_at records the reset.
func (s *ScopeStore) Clear(userID uuid.UUID) error {
	return s.Save(&models.UserScope{UserID: userID})
}
