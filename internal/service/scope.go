package service

import (
	"fmt"
	"sync"

	"ticket-tracker-backend/internal/database/models"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/logger"
	"ticket-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// scopeState is the per-user memoization guard. It lives in memory only;
// the identifiers themselves are durable in the scope store.
type scopeState struct {
	initialized bool
	valid       bool
}

// ScopeService reconciles each user's stored (team, board) selection against
// the teams they actually belong to. Validation runs at most once per user
// until Clear or Set resets the guard; later calls return the memoized
// outcome without querying.
type ScopeService struct {
	teamRepo  repository.TeamRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	store     repository.ScopeStoreInterface
	log       *logger.Logger

	mu     sync.Mutex
	states map[uuid.UUID]*scopeState
}

// NewScopeService creates a new scope service
func NewScopeService(teamRepo repository.TeamRepositoryInterface, boardRepo repository.BoardRepositoryInterface, store repository.ScopeStoreInterface) *ScopeService {
	return &ScopeService{
		teamRepo:  teamRepo,
		boardRepo: boardRepo,
		store:     store,
		log:       logger.New(),
		states:    make(map[uuid.UUID]*scopeState),
	}
}

// Validate checks the user's stored team id against their memberships,
// falling back to the first team (and its first board) when nothing is
// selected. Returns false when the stored team is stale or any lookup
// fails; in both cases the stored identifiers are emptied. Never returns
// an error: lookup failures are logged and degrade to an empty scope.
//
// The mutex serializes validation per service, so concurrent first calls
// collapse into a single lookup and observe the same memoized result.
func (s *ScopeService) Validate(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.states[userID]
	if st == nil {
		st = &scopeState{}
		s.states[userID] = st
	}
	if st.initialized {
		return st.valid
	}

	valid, err := s.revalidate(userID)
	if err != nil {
		s.log.WithField("user_id", userID).WithField("error", err.Error()).
			Error("session scope validation failed")
		if clearErr := s.store.Clear(userID); clearErr != nil {
			s.log.WithField("user_id", userID).WithField("error", clearErr.Error()).
				Error("failed to clear session scope")
		}
		valid = false
	}

	st.initialized = true
	st.valid = valid
	return valid
}

// revalidate performs one reconciliation pass. The team fetch strictly
// precedes the board fetch; the board fetch only happens when a default
// team was just chosen.
func (s *ScopeService) revalidate(userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, apperrors.ErrUnauthenticated
	}

	scope, err := s.store.Get(userID)
	if err != nil {
		return false, fmt.Errorf("load stored scope: %w", err)
	}

	teams, err := s.teamRepo.GetByUserID(userID)
	if err != nil {
		return false, fmt.Errorf("list teams for user: %w", err)
	}

	// A stored team the user no longer belongs to is stale; the board
	// cannot outlive its team context, so both identifiers go.
	if scope.TeamID != "" && !containsTeam(teams, scope.TeamID) {
		if err := s.store.Clear(userID); err != nil {
			return false, fmt.Errorf("clear stale scope: %w", err)
		}
		return false, nil
	}

	// Fallback to the first team and board when nothing is selected
	if scope.TeamID == "" && len(teams) > 0 {
		firstTeam := teams[0]
		scope.TeamID = firstTeam.ID.String()
		if scope.BoardID == "" {
			boards, err := s.boardRepo.GetByTeamID(firstTeam.ID)
			if err != nil {
				return false, fmt.Errorf("list boards for team: %w", err)
			}
			if len(boards) > 0 {
				scope.BoardID = boards[0].ID.String()
			}
		}
		if err := s.store.Save(scope); err != nil {
			return false, fmt.Errorf("save scope defaults: %w", err)
		}
	}

	return true, nil
}

// Clear empties both stored identifiers and resets the memoization guard,
// so the next Validate performs a fresh lookup.
func (s *ScopeService) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, userID)
	if err := s.store.Clear(userID); err != nil {
		s.log.WithField("user_id", userID).WithField("error", err.Error()).
			Error("failed to clear session scope")
	}
}

// Get returns the user's current stored scope
func (s *ScopeService) Get(userID uuid.UUID) (*models.UserScope, error) {
	return s.store.Get(userID)
}

// Set stores an explicit (team, board) selection and resets the guard so
// the next Validate re-checks it against the user's memberships.
func (s *ScopeService) Set(userID uuid.UUID, teamID, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, userID)
	return s.store.Save(&models.UserScope{
		UserID:  userID,
		TeamID:  teamID,
		BoardID: boardID,
	})
}

func containsTeam(teams []models.Team, id string) bool {
	for _, team := range teams {
		if team.ID.String() == id {
			return true
		}
	}
	return false
}
