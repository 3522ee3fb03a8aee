package service

import (
	"context"
	"testing"

	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	"anoa.com/portfoliocms/internal/modules/project/dto"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTechnologies(t *testing.T) {
	got := normalizeTechnologies([]string{" Go", "go", "", "PostgreSQL", "Redis ", "postgresql"})
	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, got)
}

func TestProjectRoundTrip(t *testing.T) {
	db := testutil.NewDB(t, &entity.Project{})
	svc := NewProjectService(crudRepo.New[entity.Project](db))
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, dto.ProjectInput{
		Title:        "portfolio-cms",
		Description:  "headless CMS for my site",
		Technologies: []string{"Go", "go", "Gin"},
		Links:        []dto.ProjectLinkInput{{Label: "source", URL: "https://example.com/src"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Gin"}, created.Technologies)

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "https://example.com/src", list[0].Links[0].URL)

	others, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestProjectDuplicateLinkLabels(t *testing.T) {
	err := validateProject(context.Background(), uuid.New(), nil, dto.ProjectInput{
		Links: []dto.ProjectLinkInput{
			{Label: "Demo", URL: "https://a.example.com"},
			{Label: "demo", URL: "https://b.example.com"},
		},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
