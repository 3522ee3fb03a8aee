package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublicID(t *testing.T) {
	s := &cloudinaryStorage{}

	assert.Equal(t, "folder/sample",
		s.extractPublicID("https://res.cloudinary.com/demo/image/upload/v123456789/folder/sample.jpg"))
	assert.Equal(t, "portfolio/avatars/me",
		s.extractPublicID("https://res.cloudinary.com/demo/image/upload/portfolio/avatars/me.webp"))
	assert.Empty(t, s.extractPublicID("https://example.com/not-cloudinary.png"))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("photo.JPG"))
	assert.True(t, IsImage("cover.webp"))
	assert.False(t, IsImage("resume.pdf"))
}

type fakeBucket struct {
	objects map[string][]byte
}

func (f *fakeBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, _ := io.ReadAll(in.Body)
	f.objects[*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeBucket) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3UploadDownscalesAndDeletes(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{}}
	s := &s3Storage{
		client:   bucket,
		cfg:      S3Config{Bucket: "media", PublicURL: "https://cdn.example.com/", Folder: "portfolio"},
		maxWidth: 100,
	}

	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for x := 0; x < 400; x++ {
		img.Set(x, 10, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	url, err := s.UploadImage(context.Background(), &buf, "projects", "shot.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/portfolio/projects/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	require.Len(t, bucket.objects, 1)

	for _, stored := range bucket.objects {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(stored))
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 50, cfg.Height)
	}

	require.NoError(t, s.DeleteImage(context.Background(), url))
	assert.Empty(t, bucket.objects)
	assert.Error(t, s.DeleteImage(context.Background(), "https://elsewhere.example.com/x.png"))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "ftp"})
	assert.Error(t, err)
}

func TestCheckFile(t *testing.T) {
	assert.NoError(t, CheckFile("me.PNG", 1024, 10<<20, ImageExtensions))
	assert.NoError(t, CheckFile("cv.pdf", 1024, 10<<20, ImageExtensions, DocumentExtensions))

	err := CheckFile("cv.pdf", 1024, 10<<20, ImageExtensions)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	err = CheckFile("big.png", 11<<20, 10<<20, ImageExtensions)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	err = CheckFile("empty.png", 0, 10<<20, ImageExtensions)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	assert.Equal(t, "image", FileType("a.webp"))
	assert.Equal(t, "document", FileType("a.pdf"))
}
