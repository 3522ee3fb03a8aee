package portfolio

import (
	"context"
	"errors"
	"testing"

	"anoa.com/portfoliocms/internal/entity"
	profileDto "anoa.com/portfoliocms/internal/modules/profile/dto"
	skillDto "anoa.com/portfoliocms/internal/modules/skill/dto"
	socialLinkDto "anoa.com/portfoliocms/internal/modules/sociallink/dto"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profiles map[string]profileDto.ProfileResponse

func (p profiles) GetPublicProfile(_ context.Context, username string) (*profileDto.ProfileResponse, error) {
	res, ok := p[username]
	if !ok {
		return nil, apperror.NotFound("portfolio not found")
	}
	return &res, nil
}

type listFunc[T any] func(ctx context.Context, owner uuid.UUID) ([]T, error)

func (f listFunc[T]) List(ctx context.Context, owner uuid.UUID) ([]T, error) { return f(ctx, owner) }

func TestGetPortfolio(t *testing.T) {
	owner := uuid.New()
	var seen uuid.UUID

	svc := NewPortfolioService(
		profiles{"ada": {UserID: owner, Username: "ada", FullName: "Ada", IsPublic: true}},
		Sections{
			Skills: listFunc[skillDto.SkillResponse](func(_ context.Context, id uuid.UUID) ([]skillDto.SkillResponse, error) {
				seen = id
				return []skillDto.SkillResponse{{Name: "Go", Proficiency: entity.ProficiencyExpert}}, nil
			}),
			SocialLinks: listFunc[socialLinkDto.SocialLinkResponse](func(context.Context, uuid.UUID) ([]socialLinkDto.SocialLinkResponse, error) {
				return nil, nil
			}),
		},
	)

	res, err := svc.GetPortfolio(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, owner, seen)
	assert.Equal(t, "Ada", res.Profile.FullName)
	require.Len(t, res.Skills, 1)
	assert.Equal(t, "Go", res.Skills[0].Name)
	assert.NotNil(t, res.SocialLinks)
	assert.NotNil(t, res.Projects)
	assert.Empty(t, res.Projects)

	_, err = svc.GetPortfolio(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPortfolioSectionFailure(t *testing.T) {
	svc := NewPortfolioService(
		profiles{"ada": {UserID: uuid.New()}},
		Sections{
			Skills: listFunc[skillDto.SkillResponse](func(context.Context, uuid.UUID) ([]skillDto.SkillResponse, error) {
				return nil, errors.New("connection reset")
			}),
		},
	)

	_, err := svc.GetPortfolio(context.Background(), "ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load skills")
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}
