package entity

import (
	"time"

	"gorm.io/datatypes"
)

// SingletonID is the primary key of the one row in each settings table.
const SingletonID uint = 1

type SystemSetting struct {
	ID                  uint      `gorm:"primaryKey"`
	SiteTitle           string    `gorm:"size:200;not null"`
	SiteDescription     string    `gorm:"type:text"`
	ContactEmailEnabled bool      `gorm:"not null"`
	MaintenanceMessage  *string   `gorm:"type:text"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

type CorsSetting struct {
	ID             uint                        `gorm:"primaryKey"`
	AllowedOrigins datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
}
