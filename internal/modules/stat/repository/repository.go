package repository

import (
	"context"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatRepository interface {
	// CountOwned counts model rows owned by owner. where narrows the count
	// further when non-empty.
	CountOwned(ctx context.Context, model any, owner uuid.UUID, where string, args ...any) (int64, error)
	SumViews(ctx context.Context, owner uuid.UUID) (int64, error)
	TopPosts(ctx context.Context, owner uuid.UUID, limit int) ([]entity.BlogPost, error)
	CountAll(ctx context.Context, model any, where string, args ...any) (int64, error)
}

type statRepository struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) CountOwned(ctx context.Context, model any, owner uuid.UUID, where string, args ...any) (int64, error) {
	query := r.db.WithContext(ctx).Model(model).Where("user_id = ?", owner)
	if where != "" {
		query = query.Where(where, args...)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *statRepository) SumViews(ctx context.Context, owner uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.BlogPost{}).
		Where("user_id = ?", owner).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *statRepository) TopPosts(ctx context.Context, owner uuid.UUID, limit int) ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_published = ?", owner, true).
		Order("view_count DESC").
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *statRepository) CountAll(ctx context.Context, model any, where string, args ...any) (int64, error) {
	query := r.db.WithContext(ctx).Model(model)
	if where != "" {
		query = query.Where(where, args...)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
