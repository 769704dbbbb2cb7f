package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context. Unauthenticated
// callers are turned away with the login page as their destination.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.claimsFromRequest(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "authentication required",
				"redirect": "/login",
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "invalid token subject",
				"redirect": "/login",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RejectAuthenticated turns already signed-in callers away from the
// login/register surface, pointing them back at the app root.
func (m *AuthMiddleware) RejectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.claimsFromRequest(c); ok {
			c.JSON(http.StatusConflict, gin.H{
				"error":    "already authenticated",
				"redirect": "/",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) claimsFromRequest(c *gin.Context) (*AuthClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	claims, err := m.service.ValidateJWT(tokenString)
	if err != nil || claims.Purpose != "" {
		return nil, false
	}
	return claims, true
}

// GetUserID is a helper function to extract the session user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
