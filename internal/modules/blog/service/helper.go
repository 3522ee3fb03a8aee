package blog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

const (
	maxSlugAttempts = 3
	maxSlugBase     = 200
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases title and collapses everything outside [a-z0-9] into single hyphens.
func Slugify(title string) string {
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugBase {
		slug = strings.TrimRight(slug[:maxSlugBase], "-")
	}
	if slug == "" {
		return "post"
	}
	return slug
}

// generateUniqueSlug returns the plain slug when it is free, otherwise the slug
// with a short random suffix. withSuffix skips the lookup after a lost insert race.
func (s *service) generateUniqueSlug(ctx context.Context, title string, withSuffix bool) (string, error) {
	slug := Slugify(title)

	if !withSuffix {
		taken, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s", slug, suffix), nil
}

func (s *service) sanitize(content string) string {
	return s.policy.Sanitize(content)
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// syncIndex is best effort; the database stays authoritative. Only published
// posts of public portfolios stay in the index.
func (s *service) syncIndex(ctx context.Context, post *entity.BlogPost) {
	if !s.indexer.Enabled() {
		return
	}

	listed := post.IsPublished && !post.DeletedAt.Valid
	if listed {
		public, err := s.repo.OwnerIsPublic(ctx, post.UserID)
		if err != nil {
			s.logger.Warn("failed to check portfolio visibility", "user_id", post.UserID, "error", err)
			return
		}
		listed = public
	}

	var err error
	if listed {
		username := ""
		names, lookupErr := s.repo.UsernamesByID(ctx, []uuid.UUID{post.UserID})
		if lookupErr == nil {
			username = names[post.UserID]
		}
		err = s.indexer.IndexPost(ctx, post, username)
	} else {
		err = s.indexer.RemovePost(ctx, post.ID)
	}
	if err != nil {
		s.logger.Warn("failed to sync blog search index", "post_id", post.ID, "error", err)
	}
}

// SyncOwnerIndex re-evaluates every published post of owner, used after the
// owner's portfolio visibility changes.
func (s *service) SyncOwnerIndex(ctx context.Context, owner uuid.UUID) error {
	if !s.indexer.Enabled() {
		return nil
	}

	posts, err := s.repo.FindPublishedByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to load published posts: %w", err)
	}
	for _, post := range posts {
		s.syncIndex(ctx, post)
	}
	return nil
}
