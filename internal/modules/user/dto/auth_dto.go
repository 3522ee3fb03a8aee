package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginInput accepts either the email or the username as Identifier.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required,max=100"`
	Password   string `json:"password" binding:"required,max=72"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	AccessToken           string       `json:"accessToken"`
	TokenType             string       `json:"tokenType"`
	ExpiresIn             int64        `json:"expiresIn"`
	ExpiresAt             time.Time    `json:"expiresAt"`
	RefreshToken          string       `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time    `json:"refreshTokenExpiresAt"`
	User                  UserResponse `json:"user"`
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.Name,
		CreatedAt: u.CreatedAt,
	}
}
