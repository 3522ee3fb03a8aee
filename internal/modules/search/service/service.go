package search

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const BlogIndex = "blog_posts"

// Hit is one public search result.
type Hit struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     *string    `json:"summary,omitempty"`
	Username    string     `json:"username"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// BlogIndexer keeps published blog posts searchable. Enabled reports false
// when no search backend is configured; callers then search the database.
type BlogIndexer interface {
	Enabled() bool
	IndexPost(ctx context.Context, post *entity.BlogPost, username string) error
	RemovePost(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, offset, limit int) ([]Hit, int64, error)
}

type blogDoc struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	CategoryID  string  `json:"category_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Summary     *string `json:"summary"`
	Content     string  `json:"content"`
	PublishedAt int64   `json:"published_at"`
}

type meiliIndexer struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewMeiliIndexer configures the blog index settings and returns the indexer.
// Settings failures are logged; the index stays usable with defaults.
func NewMeiliIndexer(client meilisearch.ServiceManager, logger *slog.Logger) BlogIndexer {
	s := &meiliIndexer{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
	s.initIndex()
	return s
}

func (s *meiliIndexer) initIndex() {
	filterable := []any{"user_id", "category_id"}
	if _, err := s.client.Index(BlogIndex).UpdateFilterableAttributes(&filterable); err != nil {
		s.logger.Warn("failed to update blog filterable attributes", "error", err)
	}

	sortable := []string{"published_at"}
	if _, err := s.client.Index(BlogIndex).UpdateSortableAttributes(&sortable); err != nil {
		s.logger.Warn("failed to update blog sortable attributes", "error", err)
	}

	searchable := []string{"title", "summary", "content"}
	if _, err := s.client.Index(BlogIndex).UpdateSearchableAttributes(&searchable); err != nil {
		s.logger.Warn("failed to update blog searchable attributes", "error", err)
	}
}

func (s *meiliIndexer) Enabled() bool { return true }

func (s *meiliIndexer) IndexPost(ctx context.Context, post *entity.BlogPost, username string) error {
	if !post.IsPublished {
		return s.RemovePost(ctx, post.ID)
	}

	doc := blogDoc{
		ID:       post.ID.String(),
		UserID:   post.UserID.String(),
		Username: username,
		Title:    post.Title,
		Slug:     post.Slug,
		Summary:  post.Summary,
		Content:  PlainText(s.sanitizer, post.Content),
	}
	if post.CategoryID != nil {
		doc.CategoryID = post.CategoryID.String()
	}
	if post.PublishedAt != nil {
		doc.PublishedAt = post.PublishedAt.Unix()
	}

	task, err := s.client.Index(BlogIndex).AddDocuments([]blogDoc{doc}, strPtr("id"))
	if err != nil {
		return fmt.Errorf("failed to index blog post %s: %w", post.ID, err)
	}
	s.logger.Debug("indexed blog post", "post_id", post.ID, "task_uid", task.TaskUID)
	return nil
}

func (s *meiliIndexer) RemovePost(ctx context.Context, id uuid.UUID) error {
	if _, err := s.client.Index(BlogIndex).DeleteDocument(id.String()); err != nil {
		return fmt.Errorf("failed to remove blog post %s from index: %w", id, err)
	}
	return nil
}

func (s *meiliIndexer) Search(ctx context.Context, query string, offset, limit int) ([]Hit, int64, error) {
	raw, err := s.client.Index(BlogIndex).SearchRaw(query, &meilisearch.SearchRequest{
		Offset: int64(offset),
		Limit:  int64(limit),
		Sort:   []string{"published_at:desc"},
		AttributesToRetrieve: []string{
			"id", "username", "title", "slug", "summary", "published_at",
		},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search blog posts: %w", err)
	}

	var res struct {
		Hits               []blogDoc `json:"hits"`
		EstimatedTotalHits int64     `json:"estimatedTotalHits"`
	}
	if err := json.Unmarshal(*raw, &res); err != nil {
		return nil, 0, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, doc := range res.Hits {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			continue
		}
		hit := Hit{
			ID:       id,
			Title:    doc.Title,
			Slug:     doc.Slug,
			Summary:  doc.Summary,
			Username: doc.Username,
		}
		if doc.PublishedAt > 0 {
			t := time.Unix(doc.PublishedAt, 0).UTC()
			hit.PublishedAt = &t
		}
		hits = append(hits, hit)
	}

	return hits, res.EstimatedTotalHits, nil
}

type noopIndexer struct{}

// NewNoopIndexer is used when MEILISEARCH_HOST is not set.
func NewNoopIndexer() BlogIndexer { return noopIndexer{} }

func (noopIndexer) Enabled() bool { return false }

func (noopIndexer) IndexPost(context.Context, *entity.BlogPost, string) error { return nil }

func (noopIndexer) RemovePost(context.Context, uuid.UUID) error { return nil }

func (noopIndexer) Search(context.Context, string, int, int) ([]Hit, int64, error) {
	return nil, 0, fmt.Errorf("search index is not configured")
}

// PlainText strips markup so block boundaries don't glue words together.
func PlainText(policy *bluemonday.Policy, content string) string {
	for _, tag := range []string{"</p>", "<br>", "<br/>", "<br />", "</div>", "</li>", "</h1>", "</h2>", "</h3>"} {
		content = strings.ReplaceAll(content, tag, tag+" ")
	}
	text := html.UnescapeString(policy.Sanitize(content))
	return strings.Join(strings.Fields(text), " ")
}

func strPtr(s string) *string {
	return &s
}
