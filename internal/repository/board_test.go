package repository

import (
	"testing"
	"time"

	"ticket-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BoardRepositoryTestSuite tests the BoardRepository
type BoardRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BoardRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BoardRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBoardRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BoardRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BoardRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BoardRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeam persists a user and a team owned by that user
func (suite *BoardRepositoryTestSuite) createTeam() uuid.UUID {
	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))

	team := suite.factories.Team.Create(user.ID)
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	return team.ID
}

// TestCreate tests creating a new board
func (suite *BoardRepositoryTestSuite) TestCreate() {
	teamID := suite.createTeam()

	board := suite.factories.Board.Create(teamID)
	err := suite.repo.Create(board)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, board.ID)
	suite.NotZero(board.CreatedAt)
}

// TestGetByID tests retrieving a board by ID
func (suite *BoardRepositoryTestSuite) TestGetByID() {
	teamID := suite.createTeam()

	board := suite.factories.Board.Create(teamID)
	suite.NoError(suite.repo.Create(board))

	retrieved, err := suite.repo.GetByID(board.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(board.ID, retrieved.ID)
	suite.Equal(teamID, *retrieved.TeamID)
}

// TestGetByIDNotFound tests retrieving a non-existent board
func (suite *BoardRepositoryTestSuite) TestGetByIDNotFound() {
	board, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(board)
}

// TestGetByTeamID tests listing a team's boards ordered by creation time
func (suite *BoardRepositoryTestSuite) TestGetByTeamID() {
	teamID := suite.createTeam()
	otherTeamID := suite.createTeam()

	base := time.Now().Add(-time.Hour)

	second := suite.factories.Board.Create(teamID)
	second.CreatedAt = base.Add(time.Minute)
	suite.NoError(suite.repo.Create(second))

	first := suite.factories.Board.Create(teamID)
	first.CreatedAt = base
	suite.NoError(suite.repo.Create(first))

	suite.NoError(suite.repo.Create(suite.factories.Board.Create(otherTeamID)))

	boards, err := suite.repo.GetByTeamID(teamID)

	suite.NoError(err)
	suite.Len(boards, 2)
	suite.Equal(first.ID, boards[0].ID)
	suite.Equal(second.ID, boards[1].ID)
}

// TestGetByTeamIDEmpty tests listing boards for a team with none
func (suite *BoardRepositoryTestSuite) TestGetByTeamIDEmpty() {
	teamID := suite.createTeam()

	boards, err := suite.repo.GetByTeamID(teamID)

	suite.NoError(err)
	suite.Empty(boards)
}

// TestUpdate tests updating a board
func (suite *BoardRepositoryTestSuite) TestUpdate() {
	teamID := suite.createTeam()

	board := suite.factories.Board.Create(teamID)
	suite.NoError(suite.repo.Create(board))

	newName := "Renamed Board"
	board.Name = &newName
	err := suite.repo.Update(board)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(board.ID)
	suite.NoError(err)
	suite.Equal("Renamed Board", *updated.Name)
}

// TestDelete tests deleting a board
func (suite *BoardRepositoryTestSuite) TestDelete() {
	teamID := suite.createTeam()

	board := suite.factories.Board.Create(teamID)
	suite.NoError(suite.repo.Create(board))

	err := suite.repo.Delete(board.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(board.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestBoardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BoardRepositoryTestSuite))
}
