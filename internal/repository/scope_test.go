package repository

import (
	"testing"

	"ticket-tracker-backend/internal/database/models"
	"ticket-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ScopeStoreTestSuite tests the ScopeStore
type ScopeStoreTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *ScopeStore
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ScopeStoreTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.store = NewScopeStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScopeStoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScopeStoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScopeStoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetMissingRow tests that an absent row reads back as an empty scope
func (suite *ScopeStoreTestSuite) TestGetMissingRow() {
	userID := uuid.New()

	scope, err := suite.store.Get(userID)

	suite.NoError(err)
	suite.NotNil(scope)
	suite.Equal(userID, scope.UserID)
	suite.Empty(scope.TeamID)
	suite.Empty(scope.BoardID)
}

// TestSaveAndGet tests the write/read round trip
func (suite *ScopeStoreTestSuite) TestSaveAndGet() {
	userID := uuid.New()
	teamID := uuid.New().String()
	boardID := uuid.New().String()

	err := suite.store.Save(&models.UserScope{
		UserID:  userID,
		TeamID:  teamID,
		BoardID: boardID,
	})
	suite.NoError(err)

	scope, err := suite.store.Get(userID)

	suite.NoError(err)
	suite.Equal(teamID, scope.TeamID)
	suite.Equal(boardID, scope.BoardID)
	suite.NotZero(scope.UpdatedAt)
}

// TestSaveUpsert tests that a second save replaces the stored selection
func (suite *ScopeStoreTestSuite) TestSaveUpsert() {
	userID := uuid.New()

	suite.NoError(suite.store.Save(&models.UserScope{
		UserID:  userID,
		TeamID:  "team-old",
		BoardID: "board-old",
	}))
	suite.NoError(suite.store.Save(&models.UserScope{
		UserID:  userID,
		TeamID:  "team-new",
		BoardID: "board-new",
	}))

	scope, err := suite.store.Get(userID)

	suite.NoError(err)
	suite.Equal("team-new", scope.TeamID)
	suite.Equal("board-new", scope.BoardID)

	// Only one row per user
	var count int64
	suite.baseTestSuite.DB.Model(&models.UserScope{}).Where("user_id = ?", userID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestClear tests that clearing empties both identifiers but keeps the row
func (suite *ScopeStoreTestSuite) TestClear() {
	userID := uuid.New()

	suite.NoError(suite.store.Save(&models.UserScope{
		UserID:  userID,
		TeamID:  uuid.New().String(),
		BoardID: uuid.New().String(),
	}))

	err := suite.store.Clear(userID)
	suite.NoError(err)

	scope, err := suite.store.Get(userID)
	suite.NoError(err)
	suite.Empty(scope.TeamID)
	suite.Empty(scope.BoardID)

	var count int64
	suite.baseTestSuite.DB.Model(&models.UserScope{}).Where("user_id = ?", userID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestClearWithoutRow tests clearing a user that never stored a scope
func (suite *ScopeStoreTestSuite) TestClearWithoutRow() {
	userID := uuid.New()

	err := suite.store.Clear(userID)
	suite.NoError(err)

	scope, err := suite.store.Get(userID)
	suite.NoError(err)
	suite.Empty(scope.TeamID)
	suite.Empty(scope.BoardID)
}

// TestScopesAreIsolatedPerUser tests that saves do not leak across users
func (suite *ScopeStoreTestSuite) TestScopesAreIsolatedPerUser() {
	alice := uuid.New()
	bob := uuid.New()

	suite.NoError(suite.store.Save(&models.UserScope{UserID: alice, TeamID: "team-a"}))
	suite.NoError(suite.store.Save(&models.UserScope{UserID: bob, TeamID: "team-b"}))
	suite.NoError(suite.store.Clear(alice))

	aliceScope, err := suite.store.Get(alice)
	suite.NoError(err)
	suite.Empty(aliceScope.TeamID)

	bobScope, err := suite.store.Get(bob)
	suite.NoError(err)
	suite.Equal("team-b", bobScope.TeamID)
}

// Run the test suite
func TestScopeStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ScopeStoreTestSuite))
}
