package service

import (
	"context"
	"fmt"

	"anoa.com/portfoliocms/internal/entity"
	statDto "anoa.com/portfoliocms/internal/modules/stat/dto"
	"anoa.com/portfoliocms/internal/modules/stat/repository"
	"anoa.com/portfoliocms/pkg/dto"
	"github.com/google/uuid"
)

const topPostLimit = 5

// UserCounter is satisfied by the user repository.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type StatService interface {
	GetDashboard(ctx context.Context, owner uuid.UUID) (*statDto.DashboardResponse, error)
	GetSiteStats(ctx context.Context) (*statDto.SiteStatsResponse, error)
}

type statService struct {
	repo  repository.StatRepository
	users UserCounter
}

func NewStatService(repo repository.StatRepository, users UserCounter) StatService {
	return &statService{
		repo:  repo,
		users: users,
	}
}

type ownedCount struct {
	model any
	dest  *int64
	where string
	args  []any
}

func (s *statService) GetDashboard(ctx context.Context, owner uuid.UUID) (*statDto.DashboardResponse, error) {
	res := &statDto.DashboardResponse{}

	counts := []ownedCount{
		{model: &entity.Skill{}, dest: &res.Sections.Skills},
		{model: &entity.Education{}, dest: &res.Sections.Educations},
		{model: &entity.WorkExperience{}, dest: &res.Sections.WorkExperiences},
		{model: &entity.Project{}, dest: &res.Sections.Projects},
		{model: &entity.Certification{}, dest: &res.Sections.Certifications},
		{model: &entity.Review{}, dest: &res.Sections.Reviews},
		{model: &entity.SocialLink{}, dest: &res.Sections.SocialLinks},
		{model: &entity.ExtraCurricularActivity{}, dest: &res.Sections.Activities},
		{model: &entity.ProblemSolving{}, dest: &res.Sections.ProblemSolving},
		{model: &entity.BlogPost{}, dest: &res.Blog.Total},
		{model: &entity.BlogPost{}, dest: &res.Blog.Published, where: "is_published = ?", args: []any{true}},
		{model: &entity.ContactMessage{}, dest: &res.Messages.Total},
		{model: &entity.ContactMessage{}, dest: &res.Messages.Unread, where: "is_read = ?", args: []any{false}},
	}

	for _, c := range counts {
		n, err := s.repo.CountOwned(ctx, c.model, owner, c.where, c.args...)
		if err != nil {
			return nil, fmt.Errorf("failed to count %T: %w", c.model, err)
		}
		*c.dest = n
	}
	res.Blog.Drafts = res.Blog.Total - res.Blog.Published

	views, err := s.repo.SumViews(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to sum blog views: %w", err)
	}
	res.Blog.TotalViews = views

	posts, err := s.repo.TopPosts(ctx, owner, topPostLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top posts: %w", err)
	}
	res.TopPosts = dto.MapItems(posts, func(p entity.BlogPost) statDto.TopPost {
		return statDto.TopPost{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			ViewCount:   p.ViewCount,
			PublishedAt: p.PublishedAt,
		}
	})

	return res, nil
}

func (s *statService) GetSiteStats(ctx context.Context) (*statDto.SiteStatsResponse, error) {
	res := &statDto.SiteStatsResponse{}

	var err error
	if res.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if res.PublicPortfolios, err = s.repo.CountAll(ctx, &entity.UserProfile{}, "is_public = ?", true); err != nil {
		return nil, fmt.Errorf("failed to count public portfolios: %w", err)
	}
	if res.PublishedPosts, err = s.repo.CountAll(ctx, &entity.BlogPost{}, "is_published = ?", true); err != nil {
		return nil, fmt.Errorf("failed to count published posts: %w", err)
	}
	if res.ContactMessages, err = s.repo.CountAll(ctx, &entity.ContactMessage{}, ""); err != nil {
		return nil, fmt.Errorf("failed to count contact messages: %w", err)
	}

	return res, nil
}
