package handlers

import (
	"net/http"

	"ticket-tracker-backend/internal/auth"
	apperrors "ticket-tracker-backend/internal/errors"
	"ticket-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScopeHandler handles HTTP requests for the session scope
type ScopeHandler struct {
	scopeService service.ScopeServiceInterface
}

// NewScopeHandler creates a new scope handler
func NewScopeHandler(scopeService service.ScopeServiceInterface) *ScopeHandler {
	return &ScopeHandler{
		scopeService: scopeService,
	}
}

// SetScopeRequest represents an explicit team/board selection
type SetScopeRequest struct {
	TeamID  string `json:"team_id"`
	BoardID string `json:"board_id"`
}

// ScopeValidateResponse reports the outcome of a validation pass
type ScopeValidateResponse struct {
	Valid bool `json:"valid"`
}

// GetScope handles GET /scope
// @Summary Get current scope
// @Description Get the session user's stored team/board selection
// @Tags scope
// @Produce json
// @Success 200 {object} models.UserScope "Current selection"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scope [get]
func (h *ScopeHandler) GetScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
		return
	}

	scope, err := h.scopeService.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scope)
}

// SetScope handles PUT /scope
// @Summary Set current scope
// @Description Store an explicit team/board selection; it is re-checked on the next validation
// @Tags scope
// @Accept json
// @Produce json
// @Param request body SetScopeRequest true "Selection"
// @Success 200 {object} map[string]interface{} "Selection stored"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scope [put]
func (h *ScopeHandler) SetScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
		return
	}

	var req SetScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.scopeService.Set(userID, req.TeamID, req.BoardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "scope updated"})
}

// ValidateScope handles POST /scope/validate
// @Summary Validate current scope
// @Description Reconcile the stored selection against the user's memberships
// @Tags scope
// @Produce json
// @Success 200 {object} ScopeValidateResponse "Validation outcome"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Security BearerAuth
// @Router /scope/validate [post]
func (h *ScopeHandler) ValidateScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
		return
	}

	c.JSON(http.StatusOK, ScopeValidateResponse{Valid: h.scopeService.Validate(userID)})
}

// ClearScope handles POST /scope/clear
// @Summary Clear current scope
// @Description Empty the stored selection and force a fresh validation next time
// @Tags scope
// @Produce json
// @Success 200 {object} map[string]interface{} "Selection cleared"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Security BearerAuth
// @Router /scope/clear [post]
func (h *ScopeHandler) ClearScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
		return
	}

	h.scopeService.Clear(userID)
	c.JSON(http.StatusOK, gin.H{"message": "scope cleared"})
}
