package portfolio

import (
	"context"
	"fmt"

	activityDto "anoa.com/portfoliocms/internal/modules/activity/dto"
	certificationDto "anoa.com/portfoliocms/internal/modules/certification/dto"
	educationDto "anoa.com/portfoliocms/internal/modules/education/dto"
	experienceDto "anoa.com/portfoliocms/internal/modules/experience/dto"
	portfolioDto "anoa.com/portfoliocms/internal/modules/portfolio/dto"
	problemSolvingDto "anoa.com/portfoliocms/internal/modules/problemsolving/dto"
	profileDto "anoa.com/portfoliocms/internal/modules/profile/dto"
	projectDto "anoa.com/portfoliocms/internal/modules/project/dto"
	reviewDto "anoa.com/portfoliocms/internal/modules/review/dto"
	skillDto "anoa.com/portfoliocms/internal/modules/skill/dto"
	socialLinkDto "anoa.com/portfoliocms/internal/modules/sociallink/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ProfileGetter interface {
	GetPublicProfile(ctx context.Context, username string) (*profileDto.ProfileResponse, error)
}

// Lister is the read side of an owner-scoped resource service.
type Lister[T any] interface {
	List(ctx context.Context, owner uuid.UUID) ([]T, error)
}

type Sections struct {
	Skills          Lister[skillDto.SkillResponse]
	Educations      Lister[educationDto.EducationResponse]
	WorkExperiences Lister[experienceDto.WorkExperienceResponse]
	Projects        Lister[projectDto.ProjectResponse]
	Certifications  Lister[certificationDto.CertificationResponse]
	Reviews         Lister[reviewDto.ReviewResponse]
	SocialLinks     Lister[socialLinkDto.SocialLinkResponse]
	Activities      Lister[activityDto.ActivityResponse]
	ProblemSolving  Lister[problemSolvingDto.ProblemSolvingResponse]
}

type PortfolioService interface {
	GetPortfolio(ctx context.Context, username string) (*portfolioDto.PortfolioResponse, error)
}

type portfolioService struct {
	profiles ProfileGetter
	sections Sections
}

func NewPortfolioService(profiles ProfileGetter, sections Sections) PortfolioService {
	return &portfolioService{
		profiles: profiles,
		sections: sections,
	}
}

func (s *portfolioService) GetPortfolio(ctx context.Context, username string) (*portfolioDto.PortfolioResponse, error) {
	profile, err := s.profiles.GetPublicProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	res := &portfolioDto.PortfolioResponse{Profile: *profile}
	owner := profile.UserID

	g, gctx := errgroup.WithContext(ctx)
	collect(g, gctx, "skills", s.sections.Skills, owner, &res.Skills)
	collect(g, gctx, "educations", s.sections.Educations, owner, &res.Educations)
	collect(g, gctx, "work experiences", s.sections.WorkExperiences, owner, &res.WorkExperiences)
	collect(g, gctx, "projects", s.sections.Projects, owner, &res.Projects)
	collect(g, gctx, "certifications", s.sections.Certifications, owner, &res.Certifications)
	collect(g, gctx, "reviews", s.sections.Reviews, owner, &res.Reviews)
	collect(g, gctx, "social links", s.sections.SocialLinks, owner, &res.SocialLinks)
	collect(g, gctx, "activities", s.sections.Activities, owner, &res.Activities)
	collect(g, gctx, "problem solving profiles", s.sections.ProblemSolving, owner, &res.ProblemSolving)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// collect loads one section into dst; a nil source leaves an empty list.
func collect[T any](g *errgroup.Group, ctx context.Context, name string, src Lister[T], owner uuid.UUID, dst *[]T) {
	if src == nil {
		*dst = []T{}
		return
	}
	g.Go(func() error {
		items, err := src.List(ctx, owner)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	})
}
