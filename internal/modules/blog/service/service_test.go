package blog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"anoa.com/portfoliocms/internal/entity"
	blogDto "anoa.com/portfoliocms/internal/modules/blog/dto"
	"anoa.com/portfoliocms/internal/modules/blog/repository"
	categoryRepo "anoa.com/portfoliocms/internal/modules/category/repository"
	profileRepo "anoa.com/portfoliocms/internal/modules/profile/repository"
	search "anoa.com/portfoliocms/internal/modules/search/service"
	view "anoa.com/portfoliocms/internal/modules/view/service"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIndexer struct {
	mu      sync.Mutex
	indexed map[uuid.UUID]string
}

func (f *fakeIndexer) Enabled() bool { return true }

func (f *fakeIndexer) IndexPost(_ context.Context, post *entity.BlogPost, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed[post.ID] = username
	return nil
}

func (f *fakeIndexer) RemovePost(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.indexed, id)
	return nil
}

func (f *fakeIndexer) Search(context.Context, string, int, int) ([]search.Hit, int64, error) {
	return nil, 0, errors.New("meilisearch is down")
}

type fixture struct {
	svc     BlogService
	db      *gorm.DB
	indexer *fakeIndexer
	owner   *entity.User
	other   *entity.User
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t, &entity.Role{}, &entity.User{}, &entity.UserProfile{}, &entity.BlogPostCategory{}, &entity.BlogPost{})

	owner := &entity.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	other := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Omit("Role", "Profile").Create(owner).Error)
	require.NoError(t, db.Omit("Role", "Profile").Create(other).Error)
	require.NoError(t, db.Create(&entity.UserProfile{UserID: owner.ID, FullName: "Ada", Status: entity.StatusEmployed, IsPublic: true}).Error)
	require.NoError(t, db.Create(&entity.UserProfile{UserID: other.ID, FullName: "Bob", Status: entity.StatusStudent}).Error)

	posts := repository.NewBlogPostRepository(db)
	indexer := &fakeIndexer{indexed: map[uuid.UUID]string{}}
	svc := NewBlogService(
		posts,
		categoryRepo.NewCategoryRepository(db),
		profileRepo.NewProfileRepository(db),
		indexer,
		view.NewViewService(nil, posts, logger.Discard()),
		logger.Discard(),
	)

	return &fixture{svc: svc, db: db, indexer: indexer, owner: owner, other: other}
}

func post(title string) blogDto.CreateBlogPostRequest {
	return blogDto.CreateBlogPostRequest{BlogPostInput: blogDto.BlogPostInput{Title: title, Content: "<p>body</p>"}}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  Go 1.24 -- what's new?  ", "go-1-24-what-s-new"},
		{"!!!", "post"},
		{"", "post"},
		{"Already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), tt.title)
	}

	long := Slugify(strings.Repeat("a", 300))
	assert.Len(t, long, maxSlugBase)
}

func TestCreateAssignsUniqueSlugs(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.owner.ID, post("Hello, World!"))
	require.NoError(t, err)
	assert.Equal(t, "hello-world", first.Slug)
	assert.False(t, first.IsPublished)
	assert.Nil(t, first.PublishedAt)

	second, err := f.svc.Create(ctx, f.other.ID, post("Hello world"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(second.Slug, "hello-world-"))
	assert.Len(t, second.Slug, len("hello-world-")+8)

	// soft-deleted posts keep their slug reserved
	require.NoError(t, f.svc.Delete(ctx, f.owner.ID, first.ID))
	third, err := f.svc.Create(ctx, f.owner.ID, post("Hello World"))
	require.NoError(t, err)
	assert.NotEqual(t, "hello-world", third.Slug)

	updated, err := f.svc.Update(ctx, f.owner.ID, third.ID, blogDto.UpdateBlogPostRequest{
		BlogPostInput: blogDto.BlogPostInput{Title: "A completely different title", Content: "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, third.Slug, updated.Slug)
	assert.Equal(t, "A completely different title", updated.Title)
}

func TestCreateSanitizesContent(t *testing.T) {
	f := setup(t)

	res, err := f.svc.Create(context.Background(), f.owner.ID, blogDto.CreateBlogPostRequest{
		BlogPostInput: blogDto.BlogPostInput{
			Title:   "XSS",
			Content: `<p onclick="steal()">hi</p><script>alert(1)</script>`,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", res.Content)
}

func TestCategoryMustBelongToOwner(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	mine := &entity.BlogPostCategory{Name: "Go"}
	mine.SetOwner(f.owner.ID)
	theirs := &entity.BlogPostCategory{Name: "Rust"}
	theirs.SetOwner(f.other.ID)
	require.NoError(t, f.db.Create(mine).Error)
	require.NoError(t, f.db.Create(theirs).Error)

	req := post("With category")
	req.CategoryID = &theirs.ID
	_, err := f.svc.Create(ctx, f.owner.ID, req)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	missing := uuid.New()
	req.CategoryID = &missing
	_, err = f.svc.Create(ctx, f.owner.ID, req)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	req.CategoryID = &mine.ID
	res, err := f.svc.Create(ctx, f.owner.ID, req)
	require.NoError(t, err)
	require.NotNil(t, res.Category)
	assert.Equal(t, "Go", res.Category.Name)
}

func TestPublishLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.owner.ID, post("Draft"))
	require.NoError(t, err)
	assert.NotContains(t, f.indexer.indexed, created.ID)

	_, err = f.svc.Unpublish(ctx, f.owner.ID, created.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	published, err := f.svc.Publish(ctx, f.owner.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	assert.NotNil(t, published.PublishedAt)
	assert.Equal(t, "ada", f.indexer.indexed[created.ID])

	_, err = f.svc.Publish(ctx, f.owner.ID, created.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = f.svc.Publish(ctx, f.other.ID, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	unpublished, err := f.svc.Unpublish(ctx, f.owner.ID, created.ID)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
	assert.Nil(t, unpublished.PublishedAt)
	assert.NotContains(t, f.indexer.indexed, created.ID)

	req := post("Straight out")
	req.IsPublished = true
	direct, err := f.svc.Create(ctx, f.owner.ID, req)
	require.NoError(t, err)
	assert.True(t, direct.IsPublished)
	assert.Contains(t, f.indexer.indexed, direct.ID)

	require.NoError(t, f.svc.Delete(ctx, f.owner.ID, direct.ID))
	assert.NotContains(t, f.indexer.indexed, direct.ID)
	assert.ErrorIs(t, f.svc.Delete(ctx, f.owner.ID, direct.ID), apperror.ErrNotFound)
}

func TestOwnerListFilters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, title := range []string{"Go generics", "Gin middleware", "Cooking pasta"} {
		_, err := f.svc.Create(ctx, f.owner.ID, post(title))
		require.NoError(t, err)
	}
	live := post("Go concurrency")
	live.IsPublished = true
	_, err := f.svc.Create(ctx, f.owner.ID, live)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.other.ID, post("Go elsewhere"))
	require.NoError(t, err)

	all, err := f.svc.List(ctx, f.owner.ID, blogDto.BlogPostQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, all.TotalCount)
	assert.Equal(t, 10, all.PageSize)
	assert.Equal(t, "Go concurrency", all.Items[0].Title)

	goPosts, err := f.svc.List(ctx, f.owner.ID, blogDto.BlogPostQuery{Search: "GO "})
	require.NoError(t, err)
	assert.EqualValues(t, 2, goPosts.TotalCount)

	published := true
	onlyLive, err := f.svc.List(ctx, f.owner.ID, blogDto.BlogPostQuery{IsPublished: &published})
	require.NoError(t, err)
	require.Len(t, onlyLive.Items, 1)
	assert.Equal(t, "Go concurrency", onlyLive.Items[0].Title)

	paged, err := f.svc.List(ctx, f.owner.ID, blogDto.BlogPostQuery{PageQuery: commonDto.PageQuery{Page: 2, PageSize: 3}})
	require.NoError(t, err)
	assert.Len(t, paged.Items, 1)
	assert.True(t, paged.HasPreviousPage)
	assert.False(t, paged.HasNextPage)

	_, err = f.svc.List(ctx, f.owner.ID, blogDto.BlogPostQuery{PageQuery: commonDto.PageQuery{PageSize: 101}})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestPublicAccess(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, f.owner.ID, post("Secret draft"))
	require.NoError(t, err)
	live := post("Public post")
	live.IsPublished = true
	published, err := f.svc.Create(ctx, f.owner.ID, live)
	require.NoError(t, err)

	_, err = f.svc.GetPublished(ctx, "ada", draft.Slug, "1.2.3.4")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	got, err := f.svc.GetPublished(ctx, "ADA", published.Slug, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	list, err := f.svc.ListPublished(ctx, "ada", commonDto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Public post", list.Items[0].Title)

	// bob's profile is private
	_, err = f.svc.ListPublished(ctx, "bob", commonDto.PageQuery{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = f.svc.ListPublished(ctx, "nobody", commonDto.PageQuery{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSearchFallsBackToDatabase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, title := range []string{"Scaling Postgres", "Postgres indexes"} {
		req := post(title)
		req.IsPublished = true
		_, err := f.svc.Create(ctx, f.owner.ID, req)
		require.NoError(t, err)
	}
	_, err := f.svc.Create(ctx, f.owner.ID, post("Postgres draft"))
	require.NoError(t, err)

	res, err := f.svc.Search(ctx, blogDto.SearchQuery{Q: "postgres"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.TotalCount)
	for _, hit := range res.Items {
		assert.Equal(t, "ada", hit.Username)
		assert.NotNil(t, hit.PublishedAt)
	}
}

func TestPrivatePortfoliosStayOutOfSearch(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	req := post("Secret plans")
	req.IsPublished = true
	hidden, err := f.svc.Create(ctx, f.other.ID, req)
	require.NoError(t, err)
	assert.NotContains(t, f.indexer.indexed, hidden.ID)

	res, err := f.svc.Search(ctx, blogDto.SearchQuery{Q: "secret"})
	require.NoError(t, err)
	assert.Zero(t, res.TotalCount)
	assert.Empty(t, res.Items)

	require.NoError(t, f.db.Model(&entity.UserProfile{}).Where("user_id = ?", f.other.ID).Update("is_public", true).Error)
	require.NoError(t, f.svc.SyncOwnerIndex(ctx, f.other.ID))
	assert.Equal(t, "bob", f.indexer.indexed[hidden.ID])

	res, err = f.svc.Search(ctx, blogDto.SearchQuery{Q: "secret"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "bob", res.Items[0].Username)

	require.NoError(t, f.db.Model(&entity.UserProfile{}).Where("user_id = ?", f.other.ID).Update("is_public", false).Error)
	require.NoError(t, f.svc.SyncOwnerIndex(ctx, f.other.ID))
	assert.NotContains(t, f.indexer.indexed, hidden.ID)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, title := range []string{"100% coverage", "1000 tests", "snake_case names", "snakeXcase"} {
		req := post(title)
		req.IsPublished = true
		_, err := f.svc.Create(ctx, f.owner.ID, req)
		require.NoError(t, err)
	}

	res, err := f.svc.Search(ctx, blogDto.SearchQuery{Q: "100%"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "100% coverage", res.Items[0].Title)

	owned, err := f.svc.List(ctx, f.owner.ID, blogDto.BlogPostQuery{Search: "snake_case"})
	require.NoError(t, err)
	require.Len(t, owned.Items, 1)
	assert.Equal(t, "snake_case names", owned.Items[0].Title)
}
