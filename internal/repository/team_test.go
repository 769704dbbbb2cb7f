package repository

import (
	"testing"
	"time"

	"ticket-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUser persists a user the team rows can reference
func (suite *TeamRepositoryTestSuite) createUser() uuid.UUID {
	user := suite.factories.User.Create()
	err := NewUserRepository(suite.baseTestSuite.DB).Create(user)
	suite.NoError(err)
	return user.ID
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	userID := suite.createUser()

	team := suite.factories.Team.Create(userID)
	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestGetByID tests retrieving a team by ID
func (suite *TeamRepositoryTestSuite) TestGetByID() {
	userID := suite.createUser()

	team := suite.factories.Team.WithName(userID, "platform")
	err := suite.repo.Create(team)
	suite.NoError(err)

	retrievedTeam, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.NotNil(retrievedTeam)
	suite.Equal(team.ID, retrievedTeam.ID)
	suite.Equal("platform", *retrievedTeam.Name)
	suite.Equal(userID, retrievedTeam.CreatedByUser)
}

// TestGetByIDNotFound tests retrieving a non-existent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	nonExistentID := uuid.New()

	team, err := suite.repo.GetByID(nonExistentID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestGetByUserID tests listing a user's teams ordered by join time
func (suite *TeamRepositoryTestSuite) TestGetByUserID() {
	userID := suite.createUser()
	memberRepo := NewTeamMemberRepository(suite.baseTestSuite.DB)

	// The user joined "second" before "first", so "second" must come back first
	teamA := suite.factories.Team.WithName(userID, "first")
	teamB := suite.factories.Team.WithName(userID, "second")
	suite.NoError(suite.repo.Create(teamA))
	suite.NoError(suite.repo.Create(teamB))

	base := time.Now().Add(-time.Hour)

	memberB := suite.factories.TeamMember.Create(teamB.ID, userID)
	memberB.JoinedAt = base
	suite.NoError(memberRepo.Add(memberB))

	memberA := suite.factories.TeamMember.Create(teamA.ID, userID)
	memberA.JoinedAt = base.Add(time.Minute)
	suite.NoError(memberRepo.Add(memberA))

	teams, err := suite.repo.GetByUserID(userID)

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(teamB.ID, teams[0].ID)
	suite.Equal(teamA.ID, teams[1].ID)
}

// TestGetByUserIDExcludesOtherTeams tests that only the user's memberships count
func (suite *TeamRepositoryTestSuite) TestGetByUserIDExcludesOtherTeams() {
	userID := suite.createUser()
	otherID := suite.createUser()
	memberRepo := NewTeamMemberRepository(suite.baseTestSuite.DB)

	mine := suite.factories.Team.WithName(userID, "mine")
	theirs := suite.factories.Team.WithName(otherID, "theirs")
	suite.NoError(suite.repo.Create(mine))
	suite.NoError(suite.repo.Create(theirs))

	suite.NoError(memberRepo.Add(suite.factories.TeamMember.Create(mine.ID, userID)))
	suite.NoError(memberRepo.Add(suite.factories.TeamMember.Create(theirs.ID, otherID)))

	teams, err := suite.repo.GetByUserID(userID)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(mine.ID, teams[0].ID)
}

// TestGetByUserIDNoMemberships tests listing teams for a user with none
func (suite *TeamRepositoryTestSuite) TestGetByUserIDNoMemberships() {
	userID := suite.createUser()

	teams, err := suite.repo.GetByUserID(userID)

	suite.NoError(err)
	suite.Empty(teams)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	userID := suite.createUser()

	team := suite.factories.Team.Create(userID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	err = suite.repo.Delete(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a non-existent team
func (suite *TeamRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	// Should not error when deleting non-existent record
	suite.NoError(err)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
