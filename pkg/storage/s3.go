package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// S3Config targets AWS S3 or any S3-compatible endpoint (R2, MinIO).
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicURL       string
	Folder          string
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Storage struct {
	client   objectPutter
	cfg      S3Config
	maxWidth int
}

func NewS3Storage(ctx context.Context, cfg S3Config, maxWidth int) (ImageStorage, error) {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return nil, fmt.Errorf("missing required S3 configuration parameters")
	}
	if cfg.PublicURL == "" {
		return nil, fmt.Errorf("S3_PUBLIC_URL is required to build file URLs")
	}

	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.AccessKeySecret,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Storage{client: client, cfg: cfg, maxWidth: maxWidth}, nil
}

func (s *s3Storage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if IsImage(fileName) && s.maxWidth > 0 {
		body, err = downscale(body, ext, s.maxWidth)
		if err != nil {
			return "", err
		}
	}

	key := path.Join(joinFolder(s.cfg.Folder, folder), uuid.NewString()+ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to s3: %w", err)
	}

	return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + key, nil
}

func (s *s3Storage) DeleteImage(ctx context.Context, fileURL string) error {
	key := s.keyFromURL(fileURL)
	if key == "" {
		return fmt.Errorf("could not extract object key from URL: %s", fileURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from s3: %w", err)
	}
	return nil
}

func (s *s3Storage) keyFromURL(fileURL string) string {
	base := strings.TrimRight(s.cfg.PublicURL, "/") + "/"
	if !strings.HasPrefix(fileURL, base) {
		return ""
	}
	key, err := url.PathUnescape(strings.TrimPrefix(fileURL, base))
	if err != nil {
		return ""
	}
	return key
}

// downscale shrinks images wider than maxWidth, keeping the original format.
// Animated GIFs lose their animation, so they are stored as-is.
func downscale(body []byte, ext string, maxWidth int) ([]byte, error) {
	if ext == ".gif" {
		return body, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		// unknown raster formats (webp without decoder) are stored untouched
		return body, nil
	}
	if cfg.Width <= maxWidth {
		return body, nil
	}

	img, err := imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return body, nil
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return out.Bytes(), nil
}
