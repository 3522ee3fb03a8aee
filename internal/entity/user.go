package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string       `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"size:255;not null" json:"-"`
	RoleID       *uint        `json:"roleId"`
	Role         Role         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Profile      *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role.Name == RoleAdmin
}

// RefreshToken stores the sha256 of an opaque refresh token. Rotation revokes
// the presented token and records its successor in ReplacedByHash.
type RefreshToken struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"userId"`
	TokenHash      string     `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt      time.Time  `gorm:"index;not null" json:"expiresAt"`
	RevokedAt      *time.Time `json:"revokedAt,omitempty"`
	ReplacedByHash *string    `gorm:"size:64" json:"-"`
	CreatedByIP    string     `gorm:"size:64" json:"-"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (t *RefreshToken) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}

func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
