package attachment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/attachment/dto"
	"anoa.com/portfoliocms/internal/modules/attachment/repository"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orphanAge is how long an upload may stay unreferenced before cleanup.
const orphanAge = 24 * time.Hour

type AttachmentService interface {
	Upload(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*dto.AttachmentResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.AttachmentResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CleanupOrphanAttachments(ctx context.Context) error
}

type attachmentService struct {
	repo        repository.AttachmentRepository
	fileStorage storage.ImageStorage
	maxBytes    int64
	logger      *slog.Logger
}

func NewAttachmentService(repo repository.AttachmentRepository, fileStorage storage.ImageStorage, maxBytes int64, logger *slog.Logger) AttachmentService {
	return &attachmentService{
		repo:        repo,
		fileStorage: fileStorage,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

func (s *attachmentService) Upload(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*dto.AttachmentResponse, error) {
	if err := storage.CheckFile(file.FileName, file.Size, s.maxBytes, storage.ImageExtensions, storage.DocumentExtensions); err != nil {
		return nil, err
	}
	if s.fileStorage == nil {
		return nil, errors.New("file storage is not configured")
	}

	url, err := s.fileStorage.UploadImage(ctx, file.Reader, "attachments", file.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	attachment := &entity.Attachment{
		Base:     entity.Base{UserID: userID},
		FileURL:  url,
		FileName: file.FileName,
		FileType: storage.FileType(file.FileName),
		Size:     file.Size,
	}
	if err := s.repo.Create(ctx, attachment); err != nil {
		// the row is lost but the file is not; remove it so it does not leak
		if delErr := s.fileStorage.DeleteImage(ctx, url); delErr != nil {
			s.logger.Warn("failed to remove stored file after insert error", slog.String("url", url), slog.Any("error", delErr))
		}
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	res := dto.ToAttachmentResponse(attachment)
	return &res, nil
}

func (s *attachmentService) List(ctx context.Context, userID uuid.UUID) ([]dto.AttachmentResponse, error) {
	attachments, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return commonDto.MapItems(attachments, func(a entity.Attachment) dto.AttachmentResponse {
		return dto.ToAttachmentResponse(&a)
	}), nil
}

func (s *attachmentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	attachment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("attachment not found")
		}
		return err
	}
	if attachment.UserID != userID {
		return apperror.NotFound("attachment not found")
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.DeleteImage(ctx, attachment.FileURL); err != nil {
			s.logger.Warn("failed to delete stored file", slog.String("url", attachment.FileURL), slog.Any("error", err))
		}
	}
	if err := s.repo.Delete(ctx, attachment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("attachment not found")
		}
		return err
	}
	return nil
}

func (s *attachmentService) CleanupOrphanAttachments(ctx context.Context) error {
	orphans, err := s.repo.FindUnreferenced(ctx, time.Now().Add(-orphanAge))
	if err != nil {
		return err
	}

	for i := range orphans {
		orphan := &orphans[i]
		if s.fileStorage != nil {
			if err := s.fileStorage.DeleteImage(ctx, orphan.FileURL); err != nil {
				s.logger.Warn("failed to delete orphan file", slog.String("url", orphan.FileURL), slog.Any("error", err))
				continue
			}
		}
		// if this fails the next run picks the row up again
		if err := s.repo.Delete(ctx, orphan); err != nil {
			s.logger.Warn("failed to delete orphan attachment", slog.String("id", orphan.ID.String()), slog.Any("error", err))
		}
	}

	if len(orphans) > 0 {
		s.logger.Info("orphan attachments cleaned", slog.Int("count", len(orphans)))
	}
	return nil
}
