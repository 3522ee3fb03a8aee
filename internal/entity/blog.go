package entity

import (
	"time"

	"github.com/google/uuid"
)

type BlogPostCategory struct {
	Base
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"type:text"`
}

// BlogPost slugs are unique across the whole system, soft-deleted rows included.
type BlogPost struct {
	Base
	Title         string            `gorm:"size:255;not null"`
	Slug          string            `gorm:"size:255;uniqueIndex;not null"`
	Summary       *string           `gorm:"type:text"`
	Content       string            `gorm:"type:text;not null"`
	CoverImageURL *string           `gorm:"type:text"`
	IsPublished   bool              `gorm:"default:false;index"`
	PublishedAt   *time.Time        `gorm:"index"`
	CategoryID    *uuid.UUID        `gorm:"type:uuid;index"`
	Category      *BlogPostCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	ViewCount     int64             `gorm:"default:0"`
}
