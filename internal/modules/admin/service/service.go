package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	adminDto "anoa.com/portfoliocms/internal/modules/admin/dto"
	"anoa.com/portfoliocms/internal/modules/admin/repository"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultPageSize = 20

// PostIndexRemover drops deleted posts from the search index.
type PostIndexRemover interface {
	RemovePost(ctx context.Context, id uuid.UUID) error
}

type AdminService interface {
	ListUsers(ctx context.Context, query adminDto.UserQuery) (*commonDto.PagedResult[adminDto.AdminUserResponse], error)
	GetUser(ctx context.Context, id uuid.UUID) (*adminDto.AdminUserResponse, error)
	UpdateUserRole(ctx context.Context, actor, id uuid.UUID, input adminDto.UpdateUserRoleInput) (*adminDto.AdminUserResponse, error)
	DeleteUser(ctx context.Context, actor, id uuid.UUID) error
}

type adminService struct {
	repo    repository.UserAdminRepository
	indexer PostIndexRemover
	files   storage.ImageStorage
	logger  *slog.Logger
}

func NewAdminService(repo repository.UserAdminRepository, indexer PostIndexRemover, files storage.ImageStorage, logger *slog.Logger) AdminService {
	return &adminService{
		repo:    repo,
		indexer: indexer,
		files:   files,
		logger:  logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context, query adminDto.UserQuery) (*commonDto.PagedResult[adminDto.AdminUserResponse], error) {
	page, err := query.PageQuery.Normalize(defaultPageSize)
	if err != nil {
		return nil, err
	}

	users, total, err := s.repo.FindAll(ctx, query.Search, page.Offset(), page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	res := commonDto.NewPagedResult(commonDto.MapItems(users, adminDto.ToAdminUserResponse), total, page)
	return &res, nil
}

func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*adminDto.AdminUserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	res := adminDto.ToAdminUserResponse(user)
	return &res, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, actor, id uuid.UUID, input adminDto.UpdateUserRoleInput) (*adminDto.AdminUserResponse, error) {
	// the acting admin always stays admin, so the site never loses its last one
	if actor == id {
		return nil, apperror.Conflict("you cannot change your own role")
	}

	role, err := s.repo.FindRoleByName(ctx, input.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Validation("validation failed", "role is not recognised")
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}

	if err := s.repo.UpdateRole(ctx, id, role.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.logger.Info("user role changed",
		slog.String("actor", actor.String()),
		slog.String("user_id", id.String()),
		slog.String("role", role.Name),
	)
	return s.GetUser(ctx, id)
}

func (s *adminService) DeleteUser(ctx context.Context, actor, id uuid.UUID) error {
	if actor == id {
		return apperror.Conflict("you cannot delete your own account")
	}

	purged, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	// the rows are gone already; index and file cleanup is best effort
	for _, postID := range purged.PostIDs {
		if err := s.indexer.RemovePost(ctx, postID); err != nil {
			s.logger.Warn("failed to remove post from search index", "post_id", postID, "error", err)
		}
	}
	if s.files != nil {
		for _, url := range purged.FileURLs {
			if err := s.files.DeleteImage(ctx, url); err != nil {
				s.logger.Warn("failed to delete stored file", "url", url, "error", err)
			}
		}
	}

	s.logger.Info("user deleted",
		slog.String("actor", actor.String()),
		slog.String("user_id", id.String()),
		slog.Int("posts", len(purged.PostIDs)),
		slog.Int("files", len(purged.FileURLs)),
	)
	return nil
}
