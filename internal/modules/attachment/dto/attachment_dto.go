package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type AttachmentResponse struct {
	ID        uuid.UUID `json:"id"`
	FileURL   string    `json:"fileUrl"`
	FileName  string    `json:"fileName"`
	FileType  string    `json:"fileType"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToAttachmentResponse(a *entity.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:        a.ID,
		FileURL:   a.FileURL,
		FileName:  a.FileName,
		FileType:  a.FileType,
		Size:      a.Size,
		CreatedAt: a.CreatedAt,
	}
}
