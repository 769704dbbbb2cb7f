package handlers

import (
	"net/http"
	"testing"

	"ticket-tracker-backend/internal/database/models"
	"ticket-tracker-backend/internal/mocks"
	"ticket-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScopeHandlerTestSuite tests the ScopeHandler
type ScopeHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	scopeService *mocks.MockScopeServiceInterface
	handler      *ScopeHandler
	httpSuite    *testutils.HTTPTestSuite
	userID       uuid.UUID
}

// SetupTest runs before each test
func (suite *ScopeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.scopeService = mocks.NewMockScopeServiceInterface(suite.ctrl)
	suite.handler = NewScopeHandler(suite.scopeService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	// Simulate an authenticated session on every route
	authed := suite.httpSuite.Router.Group("", func(c *gin.Context) {
		c.Set("user_id", suite.userID)
	})
	authed.GET("/scope", suite.handler.GetScope)
	authed.PUT("/scope", suite.handler.SetScope)
	authed.POST("/scope/validate", suite.handler.ValidateScope)
	authed.POST("/scope/clear", suite.handler.ClearScope)

	// Same routes without a session user
	suite.httpSuite.Router.GET("/anon/scope", suite.handler.GetScope)
}

// TearDownTest runs after each test
func (suite *ScopeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetScope tests reading the stored selection
func (suite *ScopeHandlerTestSuite) TestGetScope() {
	stored := &models.UserScope{
		UserID:  suite.userID,
		TeamID:  "team-1",
		BoardID: "board-1",
	}
	suite.scopeService.EXPECT().Get(suite.userID).Return(stored, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/scope", nil)

	var response models.UserScope
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("team-1", response.TeamID)
	suite.Equal("board-1", response.BoardID)
}

// TestGetScopeNoSession tests that the read requires a session user
func (suite *ScopeHandlerTestSuite) TestGetScopeNoSession() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/anon/scope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "not logged in")
}

// TestSetScope tests storing an explicit selection
func (suite *ScopeHandlerTestSuite) TestSetScope() {
	suite.scopeService.EXPECT().Set(suite.userID, "team-1", "board-1").Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/scope", SetScopeRequest{
		TeamID:  "team-1",
		BoardID: "board-1",
	})

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestSetScopeInvalidBody tests rejection of a malformed body
func (suite *ScopeHandlerTestSuite) TestSetScopeInvalidBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/scope", nil,
		map[string]string{"Content-Type": "application/json"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestValidateScope tests surfacing the validation outcome
func (suite *ScopeHandlerTestSuite) TestValidateScope() {
	suite.scopeService.EXPECT().Validate(suite.userID).Return(true)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/scope/validate", nil)

	var response ScopeValidateResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.Valid)
}

// TestValidateScopeInvalid tests surfacing a failed validation
func (suite *ScopeHandlerTestSuite) TestValidateScopeInvalid() {
	suite.scopeService.EXPECT().Validate(suite.userID).Return(false)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/scope/validate", nil)

	var response ScopeValidateResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.Valid)
}

// TestClearScope tests clearing the selection
func (suite *ScopeHandlerTestSuite) TestClearScope() {
	suite.scopeService.EXPECT().Clear(suite.userID)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/scope/clear", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

// Run the test suite
func TestScopeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScopeHandlerTestSuite))
}
