package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists one owner-scoped entity type. FindByID is deliberately
// not filtered by owner; ownership is decided by the service.
type Repository[E any] interface {
	List(ctx context.Context, owner uuid.UUID) ([]E, error)
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, e *E) error
}

type repository[E any] struct {
	db *gorm.DB
}

func New[E any](db *gorm.DB) Repository[E] {
	return &repository[E]{db: db}
}

func (r *repository[E]) List(ctx context.Context, owner uuid.UUID) ([]E, error) {
	items := make([]E, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at ASC").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *repository[E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var e E
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository[E]) Create(ctx context.Context, e *E) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository[E]) Update(ctx context.Context, e *E) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository[E]) Delete(ctx context.Context, e *E) error {
	result := r.db.WithContext(ctx).Delete(e)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
