package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrTokenNotActive is returned when a rotation loses to a concurrent one or
// the token was revoked in the meantime.
var ErrTokenNotActive = errors.New("refresh token is no longer active")

type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByLogin(ctx context.Context, identifier string) (*entity.User, error)
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)
}

type TokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)
	Rotate(ctx context.Context, current *entity.RefreshToken, next *entity.RefreshToken, now time.Time) error
	Revoke(ctx context.Context, id uuid.UUID, now time.Time) error
	RevokeChain(ctx context.Context, from *entity.RefreshToken, now time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Omit("Role", "Profile").Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, "users.id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "LOWER(users.email) = ?", strings.ToLower(email))
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "LOWER(users.username) = ?", strings.ToLower(username))
}

func (r *userRepository) FindByLogin(ctx context.Context, identifier string) (*entity.User, error) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	return r.findOne(ctx, "LOWER(users.email) = ? OR LOWER(users.username) = ?", id, id)
}

func (r *userRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Preload("Role").Where(query, args...).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	var token entity.RefreshToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// Rotate revokes current and stores next in one transaction. The revocation
// only applies while current is still active, so at most one of two
// concurrent rotations succeeds.
func (r *tokenRepository) Rotate(ctx context.Context, current *entity.RefreshToken, next *entity.RefreshToken, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.RefreshToken{}).
			Where("id = ? AND revoked_at IS NULL", current.ID).
			Updates(map[string]any{"revoked_at": now, "replaced_by_hash": next.TokenHash})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTokenNotActive
		}
		return tx.Create(next).Error
	})
}

func (r *tokenRepository) Revoke(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now).Error
}

// RevokeChain revokes from and every token that replaced it, directly or not.
func (r *tokenRepository) RevokeChain(ctx context.Context, from *entity.RefreshToken, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := from
		seen := map[uuid.UUID]bool{}
		for current != nil && !seen[current.ID] {
			seen[current.ID] = true
			if err := tx.Model(&entity.RefreshToken{}).
				Where("id = ? AND revoked_at IS NULL", current.ID).
				Update("revoked_at", now).Error; err != nil {
				return err
			}
			if current.ReplacedByHash == nil {
				return nil
			}

			var next entity.RefreshToken
			err := tx.Where("token_hash = ?", *current.ReplacedByHash).First(&next).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			current = &next
		}
		return nil
	})
}
