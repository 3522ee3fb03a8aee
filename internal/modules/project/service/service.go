package service

import (
	"context"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/project/dto"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
)

type ProjectService = crud.Service[dto.ProjectInput, dto.ProjectResponse]

func NewProjectService(repo crudRepo.Repository[entity.Project]) ProjectService {
	return crud.New(repo, crud.Schema[entity.Project, dto.ProjectInput, dto.ProjectResponse]{
		Resource: "project",
		Validate: validateProject,
		Apply: func(p *entity.Project, in dto.ProjectInput) {
			p.Title = in.Title
			p.Description = in.Description
			p.Technologies = normalizeTechnologies(in.Technologies)
			links := make([]entity.ProjectLink, 0, len(in.Links))
			for _, l := range in.Links {
				links = append(links, entity.ProjectLink{Label: l.Label, URL: l.URL})
			}
			p.Links = links
			p.ImageURL = in.ImageURL
			p.IsFeatured = in.IsFeatured
		},
		ToResponse: dto.ToProjectResponse,
	})
}

func validateProject(_ context.Context, _ uuid.UUID, _ *entity.Project, in dto.ProjectInput) error {
	seen := make(map[string]struct{}, len(in.Links))
	for _, l := range in.Links {
		key := strings.ToLower(l.Label)
		if _, dup := seen[key]; dup {
			return apperror.Validation("validation failed", "links must have distinct labels")
		}
		seen[key] = struct{}{}
	}
	return nil
}

// normalizeTechnologies trims entries and drops case-insensitive duplicates,
// keeping the first spelling.
func normalizeTechnologies(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
