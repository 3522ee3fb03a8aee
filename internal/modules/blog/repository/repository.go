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
	Search      string
	IsPublished *bool
	CategoryID  *uuid.UUID
}

type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, owner uuid.UUID, slug string) (*entity.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAll(ctx context.Context, owner uuid.UUID, filter Filter, offset, limit int) ([]*entity.BlogPost, int64, error)
	SearchPublished(ctx context.Context, term string, offset, limit int) ([]*entity.BlogPost, int64, error)
	FindPublishedByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.BlogPost, error)
	OwnerIsPublic(ctx context.Context, owner uuid.UUID) (bool, error)
	UsernamesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	AddViews(ctx context.Context, id uuid.UUID, delta int64) error
}

type repository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *entity.BlogPost) error {
	return r.db.WithContext(ctx).Omit("Category").Create(post).Error
}

func (r *repository) Update(ctx context.Context, post *entity.BlogPost) error {
	return r.db.WithContext(ctx).Omit("Category").Save(post).Error
}

func (r *repository) Delete(ctx context.Context, post *entity.BlogPost) error {
	result := r.db.WithContext(ctx).Delete(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	var post entity.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) FindPublishedBySlug(ctx context.Context, owner uuid.UUID, slug string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND slug = ? AND is_published = ?", owner, slug, true).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugExists also sees soft-deleted rows, which still hold the unique index.
func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&entity.BlogPost{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAll(ctx context.Context, owner uuid.UUID, filter Filter, offset, limit int) ([]*entity.BlogPost, int64, error) {
	var posts []*entity.BlogPost
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.BlogPost{}).
		Where("user_id = ?", owner)

	if strings.TrimSpace(filter.Search) != "" {
		like := database.ContainsPattern(filter.Search)
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(summary, '')) LIKE ? ESCAPE '\')`, like, like)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Category").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// publicOwnerClause limits blog_posts rows to owners with a public profile.
const publicOwnerClause = "EXISTS (SELECT 1 FROM user_profiles WHERE user_profiles.user_id = blog_posts.user_id AND user_profiles.is_public = ?)"

// SearchPublished is the substring fallback used when no search index is
// configured. Posts of private portfolios are never returned.
func (r *repository) SearchPublished(ctx context.Context, term string, offset, limit int) ([]*entity.BlogPost, int64, error) {
	var posts []*entity.BlogPost
	var total int64

	like := database.ContainsPattern(term)
	query := r.db.WithContext(ctx).
		Model(&entity.BlogPost{}).
		Where("is_published = ?", true).
		Where(publicOwnerClause, true).
		Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(summary, '')) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\')`, like, like, like)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("published_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *repository) FindPublishedByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.BlogPost, error) {
	var posts []*entity.BlogPost
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_published = ?", owner, true).
		Find(&posts).Error
	return posts, err
}

func (r *repository) OwnerIsPublic(ctx context.Context, owner uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.UserProfile{}).
		Where("user_id = ? AND is_public = ?", owner, true).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UsernamesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []entity.User
	if err := r.db.WithContext(ctx).
		Select("id", "username").
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}

func (r *repository) AddViews(ctx context.Context, id uuid.UUID, delta int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}
