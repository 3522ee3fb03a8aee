package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every owner-scoped record. DeletedAt makes gorm hide
// soft-deleted rows from every query built on the model.
type Base struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID, err = uuid.NewV7()
	}
	return
}

func (b *Base) GetID() uuid.UUID         { return b.ID }
func (b *Base) SetID(id uuid.UUID)       { b.ID = id }
func (b *Base) OwnerID() uuid.UUID       { return b.UserID }
func (b *Base) SetOwner(owner uuid.UUID) { b.UserID = owner }
