package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	blogDto "anoa.com/portfoliocms/internal/modules/blog/dto"
	"anoa.com/portfoliocms/internal/modules/blog/repository"
	search "anoa.com/portfoliocms/internal/modules/search/service"
	view "anoa.com/portfoliocms/internal/modules/view/service"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/database"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

const (
	defaultPageSize   = 10
	defaultSearchSize = 10
)

type CategoryFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPostCategory, error)
}

type PublicProfileFinder interface {
	FindPublicByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
}

type BlogService interface {
	List(ctx context.Context, owner uuid.UUID, query blogDto.BlogPostQuery) (*commonDto.PagedResult[blogDto.BlogPostResponse], error)
	Get(ctx context.Context, owner, id uuid.UUID) (*blogDto.BlogPostResponse, error)
	Create(ctx context.Context, owner uuid.UUID, req blogDto.CreateBlogPostRequest) (*blogDto.BlogPostResponse, error)
	Update(ctx context.Context, owner, id uuid.UUID, req blogDto.UpdateBlogPostRequest) (*blogDto.BlogPostResponse, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	Publish(ctx context.Context, owner, id uuid.UUID) (*blogDto.BlogPostResponse, error)
	Unpublish(ctx context.Context, owner, id uuid.UUID) (*blogDto.BlogPostResponse, error)

	ListPublished(ctx context.Context, username string, page commonDto.PageQuery) (*commonDto.PagedResult[blogDto.BlogPostResponse], error)
	GetPublished(ctx context.Context, username, slug, visitor string) (*blogDto.BlogPostResponse, error)
	Search(ctx context.Context, query blogDto.SearchQuery) (*commonDto.PagedResult[search.Hit], error)
	SyncOwnerIndex(ctx context.Context, owner uuid.UUID) error
}

type service struct {
	repo       repository.BlogPostRepository
	categories CategoryFinder
	profiles   PublicProfileFinder
	indexer    search.BlogIndexer
	views      view.ViewService
	policy     *bluemonday.Policy
	logger     *slog.Logger
	now        func() time.Time
}

func NewBlogService(
	repo repository.BlogPostRepository,
	categories CategoryFinder,
	profiles PublicProfileFinder,
	indexer search.BlogIndexer,
	views view.ViewService,
	logger *slog.Logger,
) BlogService {
	return &service{
		repo:       repo,
		categories: categories,
		profiles:   profiles,
		indexer:    indexer,
		views:      views,
		policy:     bluemonday.UGCPolicy(),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *service) List(ctx context.Context, owner uuid.UUID, query blogDto.BlogPostQuery) (*commonDto.PagedResult[blogDto.BlogPostResponse], error) {
	page, err := query.PageQuery.Normalize(defaultPageSize)
	if err != nil {
		return nil, err
	}

	filter := repository.Filter{
		Search:      query.Search,
		IsPublished: query.IsPublished,
	}
	if query.CategoryID != "" {
		categoryID, err := uuid.Parse(query.CategoryID)
		if err != nil {
			return nil, apperror.Validation("validation failed", "categoryId must be a valid UUID")
		}
		filter.CategoryID = &categoryID
	}

	posts, total, err := s.repo.FindAll(ctx, owner, filter, page.Offset(), page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	res := commonDto.NewPagedResult(commonDto.MapItems(posts, blogDto.ToBlogPostResponse), total, page)
	return &res, nil
}

func (s *service) Get(ctx context.Context, owner, id uuid.UUID) (*blogDto.BlogPostResponse, error) {
	post, err := s.load(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	res := blogDto.ToBlogPostResponse(post)
	return &res, nil
}

func (s *service) Create(ctx context.Context, owner uuid.UUID, req blogDto.CreateBlogPostRequest) (*blogDto.BlogPostResponse, error) {
	if err := s.checkCategory(ctx, owner, req.CategoryID); err != nil {
		return nil, err
	}

	post := &entity.BlogPost{}
	post.SetOwner(owner)
	s.apply(post, req.BlogPostInput)
	if req.IsPublished {
		now := s.now()
		post.IsPublished = true
		post.PublishedAt = &now
	}

	var lastErr error
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := s.generateUniqueSlug(ctx, req.Title, attempt > 0)
		if err != nil {
			return nil, err
		}
		post.ID = uuid.Must(uuid.NewV7())
		post.Slug = slug

		lastErr = s.repo.Create(ctx, post)
		if lastErr == nil {
			break
		}
		if !database.IsDuplicateKey(lastErr) {
			return nil, fmt.Errorf("failed to create blog post: %w", lastErr)
		}
		s.logger.Debug("blog slug collision, retrying", "slug", slug, "attempt", attempt+1)
	}
	if lastErr != nil {
		return nil, apperror.New(apperror.KindConflict, "could not allocate a unique slug", lastErr)
	}

	return s.reload(ctx, post)
}

func (s *service) Update(ctx context.Context, owner, id uuid.UUID, req blogDto.UpdateBlogPostRequest) (*blogDto.BlogPostResponse, error) {
	post, err := s.load(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, owner, req.CategoryID); err != nil {
		return nil, err
	}

	s.apply(post, req.BlogPostInput)
	post.Category = nil

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	return s.reload(ctx, post)
}

func (s *service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	post, err := s.load(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("blog post not found")
		}
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	if s.indexer.Enabled() {
		if err := s.indexer.RemovePost(ctx, post.ID); err != nil {
			s.logger.Warn("failed to remove blog post from index", "post_id", post.ID, "error", err)
		}
	}
	return nil
}

func (s *service) Publish(ctx context.Context, owner, id uuid.UUID) (*blogDto.BlogPostResponse, error) {
	return s.setPublished(ctx, owner, id, true)
}

func (s *service) Unpublish(ctx context.Context, owner, id uuid.UUID) (*blogDto.BlogPostResponse, error) {
	return s.setPublished(ctx, owner, id, false)
}

func (s *service) setPublished(ctx context.Context, owner, id uuid.UUID, published bool) (*blogDto.BlogPostResponse, error) {
	post, err := s.load(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if post.IsPublished == published {
		if published {
			return nil, apperror.Conflict("blog post is already published")
		}
		return nil, apperror.Conflict("blog post is not published")
	}

	post.IsPublished = published
	if published {
		now := s.now()
		post.PublishedAt = &now
	} else {
		post.PublishedAt = nil
	}
	post.Category = nil

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	return s.reload(ctx, post)
}

func (s *service) ListPublished(ctx context.Context, username string, page commonDto.PageQuery) (*commonDto.PagedResult[blogDto.BlogPostResponse], error) {
	page, err := page.Normalize(defaultPageSize)
	if err != nil {
		return nil, err
	}

	profile, err := s.publicOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	published := true
	posts, total, err := s.repo.FindAll(ctx, profile.UserID, repository.Filter{IsPublished: &published}, page.Offset(), page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list published blog posts: %w", err)
	}

	res := commonDto.NewPagedResult(commonDto.MapItems(posts, blogDto.ToBlogPostResponse), total, page)
	return &res, nil
}

func (s *service) GetPublished(ctx context.Context, username, slug, visitor string) (*blogDto.BlogPostResponse, error) {
	profile, err := s.publicOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.FindPublishedBySlug(ctx, profile.UserID, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("blog post not found")
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	if err := s.views.IncrementView(ctx, post.ID, visitor); err != nil {
		s.logger.Warn("failed to count blog view", "post_id", post.ID, "error", err)
	}

	res := blogDto.ToBlogPostResponse(post)
	return &res, nil
}

func (s *service) Search(ctx context.Context, query blogDto.SearchQuery) (*commonDto.PagedResult[search.Hit], error) {
	page, err := query.PageQuery.Normalize(defaultSearchSize)
	if err != nil {
		return nil, err
	}

	if s.indexer.Enabled() {
		hits, total, err := s.indexer.Search(ctx, query.Q, page.Offset(), page.PageSize)
		if err == nil {
			res := commonDto.NewPagedResult(hits, total, page)
			return &res, nil
		}
		s.logger.Warn("search index unavailable, falling back to database", "error", err)
	}

	posts, total, err := s.repo.SearchPublished(ctx, query.Q, page.Offset(), page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search blog posts: %w", err)
	}

	ownerIDs := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ownerIDs = append(ownerIDs, p.UserID)
	}
	usernames, err := s.repo.UsernamesByID(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog authors: %w", err)
	}

	hits := commonDto.MapItems(posts, func(p *entity.BlogPost) search.Hit {
		return search.Hit{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Summary:     p.Summary,
			Username:    usernames[p.UserID],
			PublishedAt: p.PublishedAt,
		}
	})
	res := commonDto.NewPagedResult(hits, total, page)
	return &res, nil
}

// load reports posts owned by someone else as missing.
func (s *service) load(ctx context.Context, owner, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("blog post not found")
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	if post.UserID != owner {
		return nil, apperror.NotFound("blog post not found")
	}
	return post, nil
}

// reload re-reads the row with its category and refreshes the search index.
func (s *service) reload(ctx context.Context, post *entity.BlogPost) (*blogDto.BlogPostResponse, error) {
	fresh, err := s.repo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload blog post: %w", err)
	}
	s.syncIndex(ctx, fresh)

	res := blogDto.ToBlogPostResponse(fresh)
	return &res, nil
}

func (s *service) publicOwner(ctx context.Context, username string) (*entity.UserProfile, error) {
	profile, err := s.profiles.FindPublicByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("portfolio not found")
		}
		return nil, fmt.Errorf("failed to find portfolio: %w", err)
	}
	return profile, nil
}

func (s *service) checkCategory(ctx context.Context, owner uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	category, err := s.categories.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Validation("validation failed", "categoryId does not reference one of your categories")
		}
		return fmt.Errorf("failed to check category: %w", err)
	}
	if category.UserID != owner {
		return apperror.Validation("validation failed", "categoryId does not reference one of your categories")
	}
	return nil
}

func (s *service) apply(post *entity.BlogPost, in blogDto.BlogPostInput) {
	post.Title = in.Title
	post.Summary = normalizeOptional(in.Summary)
	post.Content = s.sanitize(in.Content)
	post.CoverImageURL = normalizeOptional(in.CoverImageURL)
	post.CategoryID = in.CategoryID
}
