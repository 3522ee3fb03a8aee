package repository

import (
	"context"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	crud "anoa.com/portfoliocms/internal/modules/crud/repository"
	"gorm.io/gorm"
)

type AttachmentRepository interface {
	crud.Repository[entity.Attachment]
	// FindUnreferenced returns uploads older than cutoff whose URL no
	// profile, project, review or blog post points at.
	FindUnreferenced(ctx context.Context, cutoff time.Time) ([]entity.Attachment, error)
}

type attachmentRepository struct {
	crud.Repository[entity.Attachment]
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{
		Repository: crud.New[entity.Attachment](db),
		db:         db,
	}
}

func (r *attachmentRepository) FindUnreferenced(ctx context.Context, cutoff time.Time) ([]entity.Attachment, error) {
	var attachments []entity.Attachment
	err := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Where("file_url NOT IN (?)", r.db.Model(&entity.UserProfile{}).Select("image_url").Where("image_url IS NOT NULL")).
		Where("file_url NOT IN (?)", r.db.Model(&entity.UserProfile{}).Select("resume_url").Where("resume_url IS NOT NULL")).
		Where("file_url NOT IN (?)", r.db.Model(&entity.Project{}).Select("image_url").Where("image_url IS NOT NULL")).
		Where("file_url NOT IN (?)", r.db.Model(&entity.Review{}).Select("avatar_url").Where("avatar_url IS NOT NULL")).
		Where("file_url NOT IN (?)", r.db.Model(&entity.BlogPost{}).Select("cover_image_url").Where("cover_image_url IS NOT NULL")).
		Find(&attachments).Error
	return attachments, err
}
