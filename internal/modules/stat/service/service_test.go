package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/stat/repository"
	userRepo "anoa.com/portfoliocms/internal/modules/user/repository"
	"anoa.com/portfoliocms/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAndSiteStats(t *testing.T) {
	db := testutil.NewDB(t,
		&entity.Role{}, &entity.User{}, &entity.UserProfile{},
		&entity.Skill{}, &entity.Education{}, &entity.WorkExperience{}, &entity.Project{},
		&entity.Certification{}, &entity.Review{}, &entity.SocialLink{},
		&entity.ExtraCurricularActivity{}, &entity.ProblemSolving{},
		&entity.BlogPostCategory{}, &entity.BlogPost{}, &entity.ContactMessage{},
	)
	ctx := context.Background()

	owner := &entity.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	other := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Omit("Role", "Profile").Create(owner).Error)
	require.NoError(t, db.Omit("Role", "Profile").Create(other).Error)
	require.NoError(t, db.Create(&entity.UserProfile{UserID: owner.ID, FullName: "Ada", Status: entity.StatusEmployed, IsPublic: true}).Error)

	require.NoError(t, db.Create(&entity.Skill{Base: entity.Base{UserID: owner.ID}, Name: "Go", Proficiency: entity.ProficiencyExpert}).Error)
	require.NoError(t, db.Create(&entity.Skill{Base: entity.Base{UserID: other.ID}, Name: "Rust", Proficiency: entity.ProficiencyBeginner}).Error)

	now := time.Now()
	posts := []*entity.BlogPost{
		{Base: entity.Base{UserID: owner.ID}, Title: "Popular", Slug: "popular", Content: "x", IsPublished: true, PublishedAt: &now, ViewCount: 40},
		{Base: entity.Base{UserID: owner.ID}, Title: "Quiet", Slug: "quiet", Content: "x", IsPublished: true, PublishedAt: &now, ViewCount: 2},
		{Base: entity.Base{UserID: owner.ID}, Title: "Draft", Slug: "draft", Content: "x"},
	}
	for _, p := range posts {
		require.NoError(t, db.Omit("Category").Create(p).Error)
	}

	read := &entity.ContactMessage{Base: entity.Base{UserID: owner.ID}, SenderName: "Sam", SenderEmail: "sam@example.com", Subject: "Hi", Description: "hello there", IsRead: true}
	unread := &entity.ContactMessage{Base: entity.Base{UserID: owner.ID}, SenderName: "Kim", SenderEmail: "kim@example.com", Subject: "Hey", Description: "hello again"}
	require.NoError(t, db.Create(read).Error)
	require.NoError(t, db.Create(unread).Error)

	svc := NewStatService(repository.NewStatRepository(db), userRepo.NewUserRepository(db))

	dash, err := svc.GetDashboard(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dash.Sections.Skills)
	assert.Zero(t, dash.Sections.Projects)
	assert.Equal(t, int64(3), dash.Blog.Total)
	assert.Equal(t, int64(2), dash.Blog.Published)
	assert.Equal(t, int64(1), dash.Blog.Drafts)
	assert.Equal(t, int64(42), dash.Blog.TotalViews)
	assert.Equal(t, int64(2), dash.Messages.Total)
	assert.Equal(t, int64(1), dash.Messages.Unread)
	require.Len(t, dash.TopPosts, 2)
	assert.Equal(t, "popular", dash.TopPosts[0].Slug)

	empty, err := svc.GetDashboard(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty.TopPosts)
	assert.Zero(t, empty.Blog.TotalViews)

	site, err := svc.GetSiteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), site.TotalUsers)
	assert.Equal(t, int64(1), site.PublicPortfolios)
	assert.Equal(t, int64(2), site.PublishedPosts)
	assert.Equal(t, int64(2), site.ContactMessages)
}
