package service_test

import (
	"errors"
	"testing"

	"ticket-tracker-backend/internal/database/models"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/mocks"
	"ticket-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockTeamRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	teamService    *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockRepo, suite.mockMemberRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListForUser tests listing the caller's teams in join order
func (suite *TeamServiceTestSuite) TestListForUser() {
	userID := uuid.New()
	first := makeTeam(uuid.New())
	second := makeTeam(uuid.New())

	suite.mockRepo.EXPECT().GetByUserID(userID).Return([]models.Team{first, second}, nil)

	teams, err := suite.teamService.ListForUser(userID)

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(first.ID, teams[0].ID)
}

// TestListForUserAnonymous tests that an anonymous caller is rejected
func (suite *TeamServiceTestSuite) TestListForUserAnonymous() {
	teams, err := suite.teamService.ListForUser(uuid.Nil)

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.Nil(teams)
}

// TestCreate tests that creating a team also records the creator as owner
func (suite *TeamServiceTestSuite) TestCreate() {
	userID := uuid.New()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(team *models.Team) error {
		team.ID = uuid.New()
		suite.Equal("Platform", *team.Name)
		suite.Equal(userID, team.CreatedByUser)
		return nil
	})
	suite.mockMemberRepo.EXPECT().Add(gomock.Any()).DoAndReturn(func(member *models.TeamMember) error {
		suite.Equal(userID, *member.UserID)
		suite.Equal(string(models.TeamMemberRoleOwner), *member.Role)
		return nil
	})

	team, err := suite.teamService.Create(userID, &service.CreateTeamRequest{Name: "Platform"})

	suite.NoError(err)
	suite.NotNil(team)
}

// TestCreateAnonymous tests that team creation requires a session user
func (suite *TeamServiceTestSuite) TestCreateAnonymous() {
	team, err := suite.teamService.Create(uuid.Nil, &service.CreateTeamRequest{Name: "Platform"})

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.Nil(team)
}

// TestCreateValidation tests that an empty team name is rejected
func (suite *TeamServiceTestSuite) TestCreateValidation() {
	team, err := suite.teamService.Create(uuid.New(), &service.CreateTeamRequest{Name: ""})

	suite.Error(err)
	suite.Nil(team)
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *TeamServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	team, err := suite.teamService.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Nil(team)
}

// TestDeleteRepositoryError tests that deletion surfaces storage errors
func (suite *TeamServiceTestSuite) TestDeleteRepositoryError() {
	id := uuid.New()
	team := makeTeam(id)

	suite.mockRepo.EXPECT().GetByID(id).Return(&team, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(errors.New("connection refused"))

	suite.Error(suite.teamService.Delete(id))
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
