package service_test

import (
	"errors"
	"testing"

	"ticket-tracker-backend/internal/database/models"
	"ticket-tracker-backend/internal/mocks"
	"ticket-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScopeServiceTestSuite defines the test suite for ScopeService
type ScopeServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTeamRepo  *mocks.MockTeamRepositoryInterface
	mockBoardRepo *mocks.MockBoardRepositoryInterface
	mockStore     *mocks.MockScopeStoreInterface
	scopeService  *service.ScopeService
}

// SetupTest sets up the test suite
func (suite *ScopeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockBoardRepo = mocks.NewMockBoardRepositoryInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockScopeStoreInterface(suite.ctrl)
	suite.scopeService = service.NewScopeService(suite.mockTeamRepo, suite.mockBoardRepo, suite.mockStore)
}

// TearDownTest cleans up after each test
func (suite *ScopeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func makeTeam(id uuid.UUID) models.Team {
	name := "team-" + id.String()[:8]
	return models.Team{
		BaseModel: models.BaseModel{ID: id},
		Name:      &name,
	}
}

func makeBoard(id, teamID uuid.UUID) models.Board {
	name := "board-" + id.String()[:8]
	return models.Board{
		BaseModel: models.BaseModel{ID: id},
		Name:      &name,
		TeamID:    &teamID,
	}
}

// TestValidateKeepsValidSelection tests that a stored team the user still
// belongs to survives validation untouched
func (suite *ScopeServiceTestSuite) TestValidateKeepsValidSelection() {
	userID := uuid.New()
	teamID := uuid.New()
	boardID := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID:  userID,
		TeamID:  teamID.String(),
		BoardID: boardID.String(),
	}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(teamID)}, nil)

	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateClearsStaleTeam tests that a stored team the user no longer
// belongs to clears both identifiers and reports false
func (suite *ScopeServiceTestSuite) TestValidateClearsStaleTeam() {
	userID := uuid.New()
	staleTeam := uuid.New()
	currentTeam := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID:  userID,
		TeamID:  staleTeam.String(),
		BoardID: uuid.New().String(),
	}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(currentTeam)}, nil)
	suite.mockStore.EXPECT().Clear(userID).Return(nil)

	suite.False(suite.scopeService.Validate(userID))
}

// TestValidateDefaultsToFirstTeamAndBoard tests the fallback when nothing is
// selected: first team by join order, then that team's first board
func (suite *ScopeServiceTestSuite) TestValidateDefaultsToFirstTeamAndBoard() {
	userID := uuid.New()
	firstTeam := uuid.New()
	secondTeam := uuid.New()
	firstBoard := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{UserID: userID}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{
		makeTeam(firstTeam),
		makeTeam(secondTeam),
	}, nil)
	suite.mockBoardRepo.EXPECT().GetByTeamID(firstTeam).Return([]models.Board{
		makeBoard(firstBoard, firstTeam),
		makeBoard(uuid.New(), firstTeam),
	}, nil)
	suite.mockStore.EXPECT().Save(gomock.Any()).DoAndReturn(func(scope *models.UserScope) error {
		suite.Equal(firstTeam.String(), scope.TeamID)
		suite.Equal(firstBoard.String(), scope.BoardID)
		return nil
	})

	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateDefaultsTeamKeepsExistingBoard tests that an already selected
// board is not overwritten when only the team is defaulted
func (suite *ScopeServiceTestSuite) TestValidateDefaultsTeamKeepsExistingBoard() {
	userID := uuid.New()
	firstTeam := uuid.New()
	existingBoard := uuid.New().String()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID:  userID,
		BoardID: existingBoard,
	}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(firstTeam)}, nil)
	suite.mockStore.EXPECT().Save(gomock.Any()).DoAndReturn(func(scope *models.UserScope) error {
		suite.Equal(firstTeam.String(), scope.TeamID)
		suite.Equal(existingBoard, scope.BoardID)
		return nil
	})

	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateTeamWithoutBoards tests that a team with no boards still
// validates; the board identifier simply stays empty
func (suite *ScopeServiceTestSuite) TestValidateTeamWithoutBoards() {
	userID := uuid.New()
	firstTeam := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{UserID: userID}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(firstTeam)}, nil)
	suite.mockBoardRepo.EXPECT().GetByTeamID(firstTeam).Return([]models.Board{}, nil)
	suite.mockStore.EXPECT().Save(gomock.Any()).DoAndReturn(func(scope *models.UserScope) error {
		suite.Equal(firstTeam.String(), scope.TeamID)
		suite.Empty(scope.BoardID)
		return nil
	})

	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateNoTeams tests that a user with no memberships and no selection
// validates trivially
func (suite *ScopeServiceTestSuite) TestValidateNoTeams() {
	userID := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{UserID: userID}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{}, nil)

	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateMemoized tests that validation runs at most once per user;
// later calls return the recorded outcome without touching storage
func (suite *ScopeServiceTestSuite) TestValidateMemoized() {
	userID := uuid.New()
	teamID := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID: userID,
		TeamID: teamID.String(),
	}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(teamID)}, nil).Times(1)

	suite.True(suite.scopeService.Validate(userID))
	suite.True(suite.scopeService.Validate(userID))
	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateMemoizedPerUser tests that the guard is keyed by user
func (suite *ScopeServiceTestSuite) TestValidateMemoizedPerUser() {
	userA := uuid.New()
	userB := uuid.New()
	teamID := uuid.New()

	for _, userID := range []uuid.UUID{userA, userB} {
		suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
			UserID: userID,
			TeamID: teamID.String(),
		}, nil).Times(1)
		suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(teamID)}, nil).Times(1)
	}

	suite.True(suite.scopeService.Validate(userA))
	suite.True(suite.scopeService.Validate(userB))
	suite.True(suite.scopeService.Validate(userA))
	suite.True(suite.scopeService.Validate(userB))
}

// TestClearResetsGuard tests that Clear empties the stored identifiers and
// forces the next Validate to run a fresh lookup
func (suite *ScopeServiceTestSuite) TestClearResetsGuard() {
	userID := uuid.New()
	teamID := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID: userID,
		TeamID: teamID.String(),
	}, nil).Times(2)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(teamID)}, nil).Times(2)
	suite.mockStore.EXPECT().Clear(userID).Return(nil)

	suite.True(suite.scopeService.Validate(userID))
	suite.scopeService.Clear(userID)
	suite.True(suite.scopeService.Validate(userID))
}

// TestSetResetsGuard tests that an explicit selection is re-checked on the
// next Validate
func (suite *ScopeServiceTestSuite) TestSetResetsGuard() {
	userID := uuid.New()
	oldTeam := uuid.New()
	newTeam := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID: userID,
		TeamID: oldTeam.String(),
	}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(oldTeam), makeTeam(newTeam)}, nil)
	suite.True(suite.scopeService.Validate(userID))

	suite.mockStore.EXPECT().Save(gomock.Any()).DoAndReturn(func(scope *models.UserScope) error {
		suite.Equal(newTeam.String(), scope.TeamID)
		return nil
	})
	suite.NoError(suite.scopeService.Set(userID, newTeam.String(), ""))

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID: userID,
		TeamID: newTeam.String(),
	}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(oldTeam), makeTeam(newTeam)}, nil)
	suite.True(suite.scopeService.Validate(userID))
}

// TestValidateTeamLookupFails tests that a failed membership lookup degrades
// to an emptied scope and false instead of surfacing the error
func (suite *ScopeServiceTestSuite) TestValidateTeamLookupFails() {
	userID := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{
		UserID: userID,
		TeamID: uuid.New().String(),
	}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return(nil, errors.New("connection refused"))
	suite.mockStore.EXPECT().Clear(userID).Return(nil)

	suite.False(suite.scopeService.Validate(userID))

	// The failed outcome is memoized like any other
	suite.False(suite.scopeService.Validate(userID))
}

// TestValidateStoreLookupFails tests degradation when the scope store itself
// is unavailable
func (suite *ScopeServiceTestSuite) TestValidateStoreLookupFails() {
	userID := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(nil, errors.New("connection refused"))
	suite.mockStore.EXPECT().Clear(userID).Return(nil)

	suite.False(suite.scopeService.Validate(userID))
}

// TestValidateSaveFails tests that a failed defaults write empties the scope
// and reports false
func (suite *ScopeServiceTestSuite) TestValidateSaveFails() {
	userID := uuid.New()
	firstTeam := uuid.New()

	suite.mockStore.EXPECT().Get(userID).Return(&models.UserScope{UserID: userID}, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{makeTeam(firstTeam)}, nil)
	suite.mockBoardRepo.EXPECT().GetByTeamID(firstTeam).Return([]models.Board{}, nil)
	suite.mockStore.EXPECT().Save(gomock.Any()).Return(errors.New("write failed"))
	suite.mockStore.EXPECT().Clear(userID).Return(nil)

	suite.False(suite.scopeService.Validate(userID))
}

// TestValidateNilUser tests that an anonymous caller never validates
func (suite *ScopeServiceTestSuite) TestValidateNilUser() {
	suite.mockStore.EXPECT().Clear(uuid.Nil).Return(nil)

	suite.False(suite.scopeService.Validate(uuid.Nil))
}

// TestScopeServiceTestSuite runs the test suite
func TestScopeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScopeServiceTestSuite))
}
