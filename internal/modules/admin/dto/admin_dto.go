package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"github.com/google/uuid"
)

type UserQuery struct {
	commonDto.PageQuery
	Search string `form:"search" binding:"max=100"`
}

type UpdateUserRoleInput struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}

type AdminUserResponse struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	FullName        string    `json:"fullName,omitempty"`
	IsProfilePublic bool      `json:"isProfilePublic"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToAdminUserResponse(u *entity.User) AdminUserResponse {
	res := AdminUserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		res.FullName = u.Profile.FullName
		res.IsProfilePublic = u.Profile.IsPublic
	}
	return res
}
