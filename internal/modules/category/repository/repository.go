package repository

import (
	"context"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	crud "anoa.com/portfoliocms/internal/modules/crud/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	crud.Repository[entity.BlogPostCategory]
	FindByName(ctx context.Context, owner uuid.UUID, name string) (*entity.BlogPostCategory, error)
}

type categoryRepository struct {
	crud.Repository[entity.BlogPostCategory]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{
		Repository: crud.New[entity.BlogPostCategory](db),
		db:         db,
	}
}

// FindByName matches case-insensitively within one owner's categories.
func (r *categoryRepository) FindByName(ctx context.Context, owner uuid.UUID, name string) (*entity.BlogPostCategory, error) {
	var category entity.BlogPostCategory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = ?", owner, strings.ToLower(strings.TrimSpace(name))).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
