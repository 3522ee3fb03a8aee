package repository

import (
	"context"
	"strings"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	// FindPublicByUsername returns the profile only when it is public.
	FindPublicByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindPublicByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = user_profiles.user_id").
		Where("LOWER(users.username) = ? AND user_profiles.is_public = ?", strings.ToLower(username), true).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}
