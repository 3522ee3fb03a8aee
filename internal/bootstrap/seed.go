package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"anoa.com/portfoliocms/internal/config"
	"anoa.com/portfoliocms/internal/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.RefreshToken{},
		&entity.UserProfile{},
		&entity.Skill{},
		&entity.Education{},
		&entity.WorkExperience{},
		&entity.Project{},
		&entity.Certification{},
		&entity.Review{},
		&entity.SocialLink{},
		&entity.ExtraCurricularActivity{},
		&entity.ProblemSolving{},
		&entity.BlogPostCategory{},
		&entity.BlogPost{},
		&entity.ContactMessage{},
		&entity.SystemSetting{},
		&entity.CorsSetting{},
		&entity.Attachment{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []entity.Role{
		{Name: entity.RoleAdmin, Description: "Site administrator"},
		{Name: entity.RoleUser, Description: "Portfolio owner"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&entity.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedAdminUser creates the configured admin account once. It is a no-op
// when ADMIN_EMAIL or ADMIN_PASSWORD is unset.
func SeedAdminUser(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Info("admin credentials not configured, skipping admin seed")
		return nil
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("admin role missing, run SeedRoles first")
		}
		return err
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ? OR username = ?", cfg.AdminEmail, cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Debug("admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		adminUser := entity.User{
			Username:     cfg.AdminUsername,
			Email:        cfg.AdminEmail,
			PasswordHash: string(hashedPasswordBytes),
			RoleID:       &adminRole.ID,
		}
		if err := tx.Omit("Role", "Profile").Create(&adminUser).Error; err != nil {
			return err
		}

		adminProfile := entity.UserProfile{
			UserID:   adminUser.ID,
			FullName: "Administrator",
			Status:   entity.StatusNotLooking,
		}
		if err := tx.Create(&adminProfile).Error; err != nil {
			return err
		}

		logger.Info("admin user seeded", "email", adminUser.Email, "username", adminUser.Username)
		return nil
	})
}
