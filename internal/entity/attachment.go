package entity

// Attachment records a file an owner uploaded to the storage provider.
type Attachment struct {
	Base
	FileURL  string `gorm:"type:text;not null"`
	FileName string `gorm:"size:255;not null"`
	FileType string `gorm:"size:20;not null"`
	Size     int64  `gorm:"not null"`
}
