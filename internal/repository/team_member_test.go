package repository

import (
	"testing"
	"time"

	"ticket-tracker-backend/internal/database/models"
	"ticket-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUserAndTeam persists a user plus a team owned by that user
func (suite *TeamMemberRepositoryTestSuite) createUserAndTeam() (*models.User, *models.Team) {
	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))

	team := suite.factories.Team.Create(user.ID)
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	return user, team
}

// TestAdd tests creating a membership
func (suite *TeamMemberRepositoryTestSuite) TestAdd() {
	user, team := suite.createUserAndTeam()

	member := suite.factories.TeamMember.Create(team.ID, user.ID)
	err := suite.repo.Add(member)

	suite.NoError(err)
	suite.NotZero(member.ID)
	suite.NotZero(member.JoinedAt)
}

// TestAddDuplicate tests that the same user cannot join a team twice
func (suite *TeamMemberRepositoryTestSuite) TestAddDuplicate() {
	user, team := suite.createUserAndTeam()

	err := suite.repo.Add(suite.factories.TeamMember.Create(team.ID, user.ID))
	suite.NoError(err)

	err = suite.repo.Add(suite.factories.TeamMember.Create(team.ID, user.ID))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestExists tests the membership existence check
func (suite *TeamMemberRepositoryTestSuite) TestExists() {
	user, team := suite.createUserAndTeam()

	exists, err := suite.repo.Exists(team.ID, user.ID)
	suite.NoError(err)
	suite.False(exists)

	suite.NoError(suite.repo.Add(suite.factories.TeamMember.Create(team.ID, user.ID)))

	exists, err = suite.repo.Exists(team.ID, user.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestRemove tests removing a membership
func (suite *TeamMemberRepositoryTestSuite) TestRemove() {
	user, team := suite.createUserAndTeam()

	suite.NoError(suite.repo.Add(suite.factories.TeamMember.Create(team.ID, user.ID)))

	err := suite.repo.Remove(team.ID, user.ID)
	suite.NoError(err)

	exists, err := suite.repo.Exists(team.ID, user.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestGetUsersByTeamID tests listing a team's users ordered by join time
func (suite *TeamMemberRepositoryTestSuite) TestGetUsersByTeamID() {
	owner, team := suite.createUserAndTeam()

	late := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(late))

	base := time.Now().Add(-time.Hour)

	first := suite.factories.TeamMember.Create(team.ID, owner.ID)
	first.JoinedAt = base
	suite.NoError(suite.repo.Add(first))

	second := suite.factories.TeamMember.Create(team.ID, late.ID)
	second.JoinedAt = base.Add(time.Minute)
	suite.NoError(suite.repo.Add(second))

	users, err := suite.repo.GetUsersByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(users, 2)
	suite.Equal(owner.ID, users[0].ID)
	suite.Equal(late.ID, users[1].ID)
}

// TestGetUsersByTeamIDEmpty tests listing users for a team with no members
func (suite *TeamMemberRepositoryTestSuite) TestGetUsersByTeamIDEmpty() {
	_, team := suite.createUserAndTeam()

	users, err := suite.repo.GetUsersByTeamID(team.ID)

	suite.NoError(err)
	suite.Empty(users)
}

// Run the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
