package repository

import (
	"context"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/pkg/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedModels are purged with their owner.
var ownedModels = []any{
	&entity.Skill{},
	&entity.Education{},
	&entity.WorkExperience{},
	&entity.Project{},
	&entity.Certification{},
	&entity.Review{},
	&entity.SocialLink{},
	&entity.ExtraCurricularActivity{},
	&entity.ProblemSolving{},
	&entity.BlogPost{},
	&entity.BlogPostCategory{},
	&entity.ContactMessage{},
	&entity.Attachment{},
}

type UserAdminRepository interface {
	FindAll(ctx context.Context, search string, offset, limit int) ([]*entity.User, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, roleID uint) error
	// Delete removes the user with everything they own.
	Delete(ctx context.Context, userID uuid.UUID) (*Purged, error)
}

// Purged lists what a user deletion leaves behind outside the database.
type Purged struct {
	PostIDs  []uuid.UUID
	FileURLs []string
}

type userAdminRepository struct {
	db *gorm.DB
}

func NewUserAdminRepository(db *gorm.DB) UserAdminRepository {
	return &userAdminRepository{db: db}
}

func (r *userAdminRepository) FindAll(ctx context.Context, search string, offset, limit int) ([]*entity.User, int64, error) {
	var users []*entity.User
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.User{})
	if strings.TrimSpace(search) != "" {
		like := database.ContainsPattern(search)
		query = query.Where(`(LOWER(username) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Role").
		Preload("Profile").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error

	return users, total, err
}

func (r *userAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Preload("Role").Preload("Profile").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userAdminRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userAdminRepository) UpdateRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Update("role_id", roleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userAdminRepository) Delete(ctx context.Context, userID uuid.UUID) (*Purged, error) {
	purged := &Purged{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Model(&entity.BlogPost{}).Where("user_id = ?", userID).Pluck("id", &purged.PostIDs).Error; err != nil {
			return err
		}
		urls, err := ownedFileURLs(tx, userID)
		if err != nil {
			return err
		}
		purged.FileURLs = urls

		for _, model := range ownedModels {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&entity.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&entity.UserProfile{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&entity.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purged, nil
}

// ownedFileURLs collects the uploaded files of userID: attachment rows plus
// the profile image and resume, which are stored without one.
func ownedFileURLs(tx *gorm.DB, userID uuid.UUID) ([]string, error) {
	var attachments []string
	if err := tx.Unscoped().Model(&entity.Attachment{}).Where("user_id = ?", userID).Pluck("file_url", &attachments).Error; err != nil {
		return nil, err
	}

	var profile entity.UserProfile
	err := tx.Select("image_url", "resume_url").Where("user_id = ?", userID).Limit(1).Find(&profile).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(attachments)+2)
	urls := make([]string, 0, len(attachments)+2)
	for _, url := range append(attachments, deref(profile.ImageURL), deref(profile.ResumeURL)) {
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}
	return urls, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
