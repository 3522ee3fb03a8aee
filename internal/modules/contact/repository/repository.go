package repository

import (
	"context"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/pkg/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Filter struct {
	IsRead *bool
	Search string
}

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	FindAll(ctx context.Context, owner uuid.UUID, filter Filter, offset, limit int) ([]*entity.ContactMessage, int64, error)
	CountUnread(ctx context.Context, owner uuid.UUID) (int64, error)
	UpdateReadState(ctx context.Context, msg *entity.ContactMessage) error
	Delete(ctx context.Context, msg *entity.ContactMessage) error
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var msg entity.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactMessageRepository) FindAll(ctx context.Context, owner uuid.UUID, filter Filter, offset, limit int) ([]*entity.ContactMessage, int64, error) {
	var messages []*entity.ContactMessage
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.ContactMessage{}).
		Where("user_id = ?", owner)

	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if strings.TrimSpace(filter.Search) != "" {
		like := database.ContainsPattern(filter.Search)
		query = query.Where(`(LOWER(sender_name) LIKE ? ESCAPE '\' OR LOWER(sender_email) LIKE ? ESCAPE '\' OR LOWER(subject) LIKE ? ESCAPE '\')`, like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *contactMessageRepository) CountUnread(ctx context.Context, owner uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ContactMessage{}).
		Where("user_id = ? AND is_read = ?", owner, false).
		Count(&count).Error
	return count, err
}

func (r *contactMessageRepository) UpdateReadState(ctx context.Context, msg *entity.ContactMessage) error {
	return r.db.WithContext(ctx).
		Model(msg).
		Select("is_read", "read_at", "updated_at").
		Updates(msg).Error
}

func (r *contactMessageRepository) Delete(ctx context.Context, msg *entity.ContactMessage) error {
	result := r.db.WithContext(ctx).Delete(msg)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
