package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"anoa.com/portfoliocms/pkg/apperror"
)

// ImageStorage defines contract for file storage providers.
type ImageStorage interface {
	// UploadImage uploads image from reader and returns the public URL.
	// folder is optional logical folder in storage (e.g. "avatars").
	UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeleteImage deletes image from storage using its URL.
	DeleteImage(ctx context.Context, fileURL string) error
}

const (
	DriverCloudinary = "cloudinary"
	DriverS3         = "s3"
)

type Config struct {
	Driver     string
	Cloudinary CloudinaryConfig
	S3         S3Config
	MaxWidth   int
}

// New picks the storage driver named in cfg.
func New(ctx context.Context, cfg Config) (ImageStorage, error) {
	switch cfg.Driver {
	case "", DriverCloudinary:
		return NewCloudinaryStorage(cfg.Cloudinary)
	case DriverS3:
		return NewS3Storage(ctx, cfg.S3, cfg.MaxWidth)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func IsImage(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".gif", ".webp":
		return true
	}
	return false
}

func joinFolder(base, folder string) string {
	switch {
	case base == "":
		return folder
	case folder == "":
		return base
	default:
		return path.Join(base, folder)
	}
}

var (
	ImageExtensions    = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	DocumentExtensions = []string{".pdf"}
)

// CheckFile validates an upload before it reaches the provider.
func CheckFile(fileName string, size, maxBytes int64, allowed ...[]string) error {
	if size <= 0 {
		return apperror.Validation("file is empty")
	}
	if maxBytes > 0 && size > maxBytes {
		return apperror.Validation(fmt.Sprintf("file must be at most %d MB", maxBytes>>20))
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	var names []string
	for _, group := range allowed {
		for _, a := range group {
			if ext == a {
				return nil
			}
			names = append(names, a)
		}
	}
	return apperror.Validation(fmt.Sprintf("file type %q is not allowed", ext), "allowed: "+strings.Join(names, ", "))
}

// FileType classifies fileName as "image" or "document".
func FileType(fileName string) string {
	if IsImage(fileName) {
		return "image"
	}
	return "document"
}
