package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	profileDto "anoa.com/portfoliocms/internal/modules/profile/dto"
	"anoa.com/portfoliocms/internal/modules/profile/repository"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetCurrentProfile(ctx context.Context, userID uuid.UUID) (*profileDto.ProfileResponse, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpsertProfileInput) (*profileDto.ProfileResponse, error)
	UploadImage(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*profileDto.ProfileResponse, error)
	UploadResume(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*profileDto.ProfileResponse, error)
	GetPublicProfile(ctx context.Context, username string) (*profileDto.ProfileResponse, error)
}

// VisibilityListener is told when a portfolio switches between public and
// private. The blog service uses it to keep search results public only.
type VisibilityListener interface {
	SyncOwnerIndex(ctx context.Context, owner uuid.UUID) error
}

type profileService struct {
	repo         repository.ProfileRepository
	imageStorage storage.ImageStorage
	visibility   VisibilityListener
	maxBytes     int64
	logger       *slog.Logger
}

func NewProfileService(repo repository.ProfileRepository, imageStorage storage.ImageStorage, visibility VisibilityListener, maxBytes int64, logger *slog.Logger) ProfileService {
	return &profileService{
		repo:         repo,
		imageStorage: imageStorage,
		visibility:   visibility,
		maxBytes:     maxBytes,
		logger:       logger,
	}
}

func (s *profileService) GetCurrentProfile(ctx context.Context, userID uuid.UUID) (*profileDto.ProfileResponse, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := profileDto.ToProfileResponse(profile)
	return &res, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpsertProfileInput) (*profileDto.ProfileResponse, error) {
	if input.DateOfBirth != nil && input.DateOfBirth.After(time.Now()) {
		return nil, apperror.Validation("validation failed", "dateOfBirth must be in the past")
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &entity.UserProfile{UserID: userID}
	}
	wasPublic := profile.IsPublic

	profile.FullName = strings.TrimSpace(input.FullName)
	profile.DateOfBirth = input.DateOfBirth
	profile.Status = input.Status
	profile.Headline = input.Headline
	profile.Bio = normalizeOptional(input.Bio)
	profile.Location = input.Location
	profile.IsPublic = input.IsPublic

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if wasPublic != profile.IsPublic && s.visibility != nil {
		if err := s.visibility.SyncOwnerIndex(ctx, userID); err != nil {
			s.logger.Warn("failed to resync blog index after visibility change", slog.String("user_id", userID.String()), slog.Any("error", err))
		}
	}

	res := profileDto.ToProfileResponse(profile)
	return &res, nil
}

func (s *profileService) UploadImage(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*profileDto.ProfileResponse, error) {
	return s.replaceFile(ctx, userID, file, "profiles", storage.ImageExtensions, func(p *entity.UserProfile) **string { return &p.ImageURL })
}

func (s *profileService) UploadResume(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*profileDto.ProfileResponse, error) {
	return s.replaceFile(ctx, userID, file, "resumes", storage.DocumentExtensions, func(p *entity.UserProfile) **string { return &p.ResumeURL })
}

func (s *profileService) GetPublicProfile(ctx context.Context, username string) (*profileDto.ProfileResponse, error) {
	profile, err := s.repo.FindPublicByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("portfolio not found")
		}
		return nil, err
	}
	res := profileDto.ToProfileResponse(profile)
	res.Username = username
	return &res, nil
}

// replaceFile uploads file, points the field selected by target at it and
// removes the file it replaced.
func (s *profileService) replaceFile(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile, folder string, allowed []string, target func(*entity.UserProfile) **string) (*profileDto.ProfileResponse, error) {
	if err := storage.CheckFile(file.FileName, file.Size, s.maxBytes, allowed); err != nil {
		return nil, err
	}

	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.imageStorage == nil {
		return nil, errors.New("file storage is not configured")
	}

	url, err := s.imageStorage.UploadImage(ctx, file.Reader, folder, file.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	field := target(profile)
	previous := *field
	*field = &url

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if previous != nil && *previous != "" {
		if err := s.imageStorage.DeleteImage(ctx, *previous); err != nil {
			s.logger.Warn("failed to delete replaced file", slog.String("url", *previous), slog.Any("error", err))
		}
	}

	res := profileDto.ToProfileResponse(profile)
	return &res, nil
}

func (s *profileService) load(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
