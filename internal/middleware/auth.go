package middleware

import (
	"context"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserFinder loads the caller for role checks.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type AuthMiddleware struct {
	users  UserFinder
	tokens *token.Manager
}

func NewAuthMiddleware(users UserFinder, tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		users:  users,
		tokens: tokens,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		// Fallback to query parameter "token" (useful for WebSockets)
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			response.Error(c, apperror.Unauthorized("authorization required"))
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, apperror.Unauthorized("invalid or expired token"))
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. The role is read from the database
// so a demoted admin loses access before their token expires.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := response.GetUserID(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, apperror.Unauthorized("user not found"))
			return
		}

		if !user.IsAdmin() {
			response.Error(c, apperror.Forbidden("admin access required"))
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
