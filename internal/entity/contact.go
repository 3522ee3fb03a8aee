package entity

import "time"

// ContactMessage belongs to its recipient: Base.UserID is the portfolio owner.
type ContactMessage struct {
	Base
	SenderName  string `gorm:"size:100;not null"`
	SenderEmail string `gorm:"size:100;not null"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	SenderIP    string `gorm:"size:64"`
	IsRead      bool   `gorm:"default:false;index"`
	ReadAt      *time.Time
}
