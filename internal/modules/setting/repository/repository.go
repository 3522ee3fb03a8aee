package repository

import (
	"context"

	"anoa.com/portfoliocms/internal/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingRepository interface {
	GetSystem(ctx context.Context) (*entity.SystemSetting, error)
	SaveSystem(ctx context.Context, setting *entity.SystemSetting) error
	GetCors(ctx context.Context) (*entity.CorsSetting, error)
	SaveCors(ctx context.Context, setting *entity.CorsSetting) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetSystem creates the singleton row with defaults on first read.
func (r *settingRepository) GetSystem(ctx context.Context) (*entity.SystemSetting, error) {
	setting := entity.SystemSetting{ID: entity.SingletonID}
	err := r.db.WithContext(ctx).
		Attrs(entity.SystemSetting{SiteTitle: "Portfolio", ContactEmailEnabled: true}).
		FirstOrCreate(&setting, entity.SystemSetting{ID: entity.SingletonID}).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) SaveSystem(ctx context.Context, setting *entity.SystemSetting) error {
	setting.ID = entity.SingletonID
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *settingRepository) GetCors(ctx context.Context) (*entity.CorsSetting, error) {
	setting := entity.CorsSetting{ID: entity.SingletonID}
	err := r.db.WithContext(ctx).
		Attrs(entity.CorsSetting{AllowedOrigins: datatypes.JSONSlice[string]{}}).
		FirstOrCreate(&setting, entity.CorsSetting{ID: entity.SingletonID}).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) SaveCors(ctx context.Context, setting *entity.CorsSetting) error {
	setting.ID = entity.SingletonID
	return r.db.WithContext(ctx).Save(setting).Error
}
