package repository

import (
	"context"
	"testing"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepositoryOwnerListAndSoftDelete(t *testing.T) {
	db := testutil.NewDB(t, &entity.Skill{})
	repo := New[entity.Skill](db)
	ctx := context.Background()

	owner, other := uuid.New(), uuid.New()
	first := &entity.Skill{Base: entity.Base{UserID: owner}, Name: "Go", Proficiency: entity.ProficiencyExpert}
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(2 * time.Millisecond)
	second := &entity.Skill{Base: entity.Base{UserID: owner}, Name: "SQL", Proficiency: entity.ProficiencyAdvanced}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &entity.Skill{Base: entity.Base{UserID: other}, Name: "Rust", Proficiency: entity.ProficiencyBeginner}))

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Go", items[0].Name)
	assert.Equal(t, "SQL", items[1].Name)

	require.NoError(t, repo.Delete(ctx, first))

	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	items, err = repo.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.ErrorIs(t, repo.Delete(ctx, first), gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateKeepsCreatedAt(t *testing.T) {
	db := testutil.NewDB(t, &entity.Project{})
	repo := New[entity.Project](db)
	ctx := context.Background()

	p := &entity.Project{
		Base:         entity.Base{UserID: uuid.New()},
		Title:        "cms",
		Description:  "portfolio backend",
		Technologies: []string{"go", "postgres"},
		Links:        []entity.ProjectLink{{Label: "repo", URL: "https://example.com/cms"}},
	}
	require.NoError(t, repo.Create(ctx, p))

	stored, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	createdAt := stored.CreatedAt

	stored.Title = "cms v2"
	stored.Technologies = []string{"go"}
	require.NoError(t, repo.Update(ctx, stored))

	reloaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "cms v2", reloaded.Title)
	assert.Equal(t, []string{"go"}, []string(reloaded.Technologies))
	assert.Equal(t, "repo", reloaded.Links[0].Label)
	assert.True(t, createdAt.Equal(reloaded.CreatedAt))
}
