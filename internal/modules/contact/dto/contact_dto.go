package dto

import (
	"strings"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"github.com/google/uuid"
)

type SendContactMessageRequest struct {
	SenderName  string `json:"senderName" binding:"required,max=100"`
	SenderEmail string `json:"senderEmail" binding:"required,email,max=100"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,min=10,max=5000"`
}

func (r *SendContactMessageRequest) Normalize() {
	r.SenderName = strings.TrimSpace(r.SenderName)
	r.SenderEmail = strings.TrimSpace(r.SenderEmail)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Description = strings.TrimSpace(r.Description)
}

type ContactMessageQuery struct {
	commonDto.PageQuery
	IsRead *bool  `form:"isRead"`
	Search string `form:"search" binding:"omitempty,max=200"`
}

type ContactMessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderName  string     `json:"senderName"`
	SenderEmail string     `json:"senderEmail"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	IsRead      bool       `json:"isRead"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SentMessageResponse is what the public sender gets back.
type SentMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func ToContactMessageResponse(m *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:          m.ID,
		SenderName:  m.SenderName,
		SenderEmail: m.SenderEmail,
		Subject:     m.Subject,
		Description: m.Description,
		IsRead:      m.IsRead,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}
