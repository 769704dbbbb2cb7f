package repository

import (
	"testing"
	"time"

	"ticket-tracker-backend/internal/database/models"
	"ticket-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CommentRepositoryTestSuite tests the CommentRepository
type CommentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CommentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CommentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCommentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CommentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CommentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CommentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTicket persists the user/team/board/ticket chain a comment needs
func (suite *CommentRepositoryTestSuite) createTicket() (*models.User, *models.Ticket) {
	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))

	team := suite.factories.Team.Create(user.ID)
	suite.NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	board := suite.factories.Board.Create(team.ID)
	suite.NoError(NewBoardRepository(suite.baseTestSuite.DB).Create(board))

	ticket := suite.factories.Ticket.Create(board.ID, user.ID)
	suite.NoError(NewTicketRepository(suite.baseTestSuite.DB).Create(ticket))

	return user, ticket
}

// TestCreate tests creating a new comment
func (suite *CommentRepositoryTestSuite) TestCreate() {
	user, ticket := suite.createTicket()

	comment := suite.factories.Comment.Create(ticket.ID, user.ID)
	err := suite.repo.Create(comment)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, comment.ID)
	suite.NotZero(comment.CreatedAt)
}

// TestGetByID tests retrieving a comment with its author preloaded
func (suite *CommentRepositoryTestSuite) TestGetByID() {
	user, ticket := suite.createTicket()

	comment := suite.factories.Comment.Create(ticket.ID, user.ID)
	suite.NoError(suite.repo.Create(comment))

	retrieved, err := suite.repo.GetByID(comment.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(comment.ID, retrieved.ID)
	suite.NotNil(retrieved.User)
	suite.Equal(user.ID, retrieved.User.ID)
}

// TestGetByTicketID tests listing comments ordered oldest first with authors
func (suite *CommentRepositoryTestSuite) TestGetByTicketID() {
	user, ticket := suite.createTicket()

	base := time.Now().Add(-time.Hour)

	// Insert out of order to prove the read sorts by creation time
	newer := suite.factories.Comment.Create(ticket.ID, user.ID)
	newer.CreatedAt = base.Add(time.Minute)
	newerContent := "second"
	newer.Content = &newerContent
	suite.NoError(suite.repo.Create(newer))

	older := suite.factories.Comment.Create(ticket.ID, user.ID)
	older.CreatedAt = base
	olderContent := "first"
	older.Content = &olderContent
	suite.NoError(suite.repo.Create(older))

	comments, err := suite.repo.GetByTicketID(ticket.ID)

	suite.NoError(err)
	suite.Len(comments, 2)
	suite.Equal("first", *comments[0].Content)
	suite.Equal("second", *comments[1].Content)
	suite.NotNil(comments[0].User)
	suite.Equal(user.ID, comments[0].User.ID)
}

// TestGetByTicketIDScoped tests that comments from other tickets are excluded
func (suite *CommentRepositoryTestSuite) TestGetByTicketIDScoped() {
	user, ticket := suite.createTicket()
	_, otherTicket := suite.createTicket()

	mine := suite.factories.Comment.Create(ticket.ID, user.ID)
	suite.NoError(suite.repo.Create(mine))
	suite.NoError(suite.repo.Create(suite.factories.Comment.Create(otherTicket.ID, user.ID)))

	comments, err := suite.repo.GetByTicketID(ticket.ID)

	suite.NoError(err)
	suite.Len(comments, 1)
	suite.Equal(mine.ID, comments[0].ID)
}

// TestGetByTicketIDEmpty tests listing comments for a ticket with none
func (suite *CommentRepositoryTestSuite) TestGetByTicketIDEmpty() {
	_, ticket := suite.createTicket()

	comments, err := suite.repo.GetByTicketID(ticket.ID)

	suite.NoError(err)
	suite.Empty(comments)
}

// Run the test suite
func TestCommentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CommentRepositoryTestSuite))
}
