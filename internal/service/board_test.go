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

// BoardServiceTestSuite defines the test suite for BoardService
type BoardServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockBoardRepositoryInterface
	boardService *service.BoardService
}

// SetupTest sets up the test suite
func (suite *BoardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBoardRepositoryInterface(suite.ctrl)
	suite.boardService = service.NewBoardService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *BoardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListForTeamEmptyID tests that an empty team id returns an empty slice
// without any repository call
func (suite *BoardServiceTestSuite) TestListForTeamEmptyID() {
	boards, err := suite.boardService.ListForTeam("")

	suite.NoError(err)
	suite.Empty(boards)
}

// TestListForTeamInvalidID tests that a malformed team id is rejected
func (suite *BoardServiceTestSuite) TestListForTeamInvalidID() {
	boards, err := suite.boardService.ListForTeam("not-a-uuid")

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Nil(boards)
}

// TestListForTeam tests the happy path
func (suite *BoardServiceTestSuite) TestListForTeam() {
	teamID := uuid.New()
	expected := []models.Board{makeBoard(uuid.New(), teamID), makeBoard(uuid.New(), teamID)}

	suite.mockRepo.EXPECT().GetByTeamID(teamID).Return(expected, nil)

	boards, err := suite.boardService.ListForTeam(teamID.String())

	suite.NoError(err)
	suite.Len(boards, 2)
}

// TestListForTeamRepositoryError tests that board listing fails loud
func (suite *BoardServiceTestSuite) TestListForTeamRepositoryError() {
	teamID := uuid.New()

	suite.mockRepo.EXPECT().GetByTeamID(teamID).Return(nil, errors.New("connection refused"))

	boards, err := suite.boardService.ListForTeam(teamID.String())

	suite.Error(err)
	suite.Nil(boards)
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *BoardServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	board, err := suite.boardService.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrBoardNotFound)
	suite.Nil(board)
}

// TestCreate tests board creation
func (suite *BoardServiceTestSuite) TestCreate() {
	teamID := uuid.New()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(board *models.Board) error {
		suite.Equal("Sprint Board", *board.Name)
		suite.Equal(teamID, *board.TeamID)
		return nil
	})

	board, err := suite.boardService.Create(&service.CreateBoardRequest{
		Name:   "Sprint Board",
		TeamID: teamID,
	})

	suite.NoError(err)
	suite.NotNil(board)
}

// TestCreateValidation tests that an empty name is rejected before any
// repository call
func (suite *BoardServiceTestSuite) TestCreateValidation() {
	board, err := suite.boardService.Create(&service.CreateBoardRequest{
		Name:   "",
		TeamID: uuid.New(),
	})

	suite.Error(err)
	suite.Nil(board)
}

// TestUpdateNotFound tests renaming a missing board
func (suite *BoardServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	board, err := suite.boardService.Update(id, &service.UpdateBoardRequest{Name: "Renamed"})

	suite.ErrorIs(err, apperrors.ErrBoardNotFound)
	suite.Nil(board)
}

// TestDelete tests board deletion
func (suite *BoardServiceTestSuite) TestDelete() {
	id := uuid.New()
	board := makeBoard(id, uuid.New())

	suite.mockRepo.EXPECT().GetByID(id).Return(&board, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.boardService.Delete(id))
}

// TestBoardServiceTestSuite runs the test suite
func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}
