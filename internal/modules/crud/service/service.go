package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/portfoliocms/internal/modules/crud/repository"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is satisfied by a pointer to any entity embedding entity.Base.
type Record[E any] interface {
	*E
	GetID() uuid.UUID
	SetID(uuid.UUID)
	OwnerID() uuid.UUID
	SetOwner(uuid.UUID)
}

// Schema describes one owner-scoped resource: how its input is checked,
// copied onto the entity and rendered back.
type Schema[E, In, Out any] struct {
	// Resource is the singular name used in messages, e.g. "skill".
	Resource string
	// Validate runs business rules beyond the binding tags. current is nil on
	// create. Optional.
	Validate func(ctx context.Context, owner uuid.UUID, current *E, in In) error
	// Apply replaces every mutable field of e with in. It must not touch
	// identity, owner or timestamps.
	Apply      func(e *E, in In)
	ToResponse func(e *E) Out
}

type Service[In, Out any] interface {
	List(ctx context.Context, owner uuid.UUID) ([]Out, error)
	GetByID(ctx context.Context, owner, id uuid.UUID) (Out, error)
	Create(ctx context.Context, owner uuid.UUID, in In) (Out, error)
	Update(ctx context.Context, owner, id uuid.UUID, in In) (Out, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

type service[E any, P Record[E], In, Out any] struct {
	repo   repository.Repository[E]
	schema Schema[E, In, Out]
}

func New[E any, P Record[E], In, Out any](repo repository.Repository[E], schema Schema[E, In, Out]) Service[In, Out] {
	return &service[E, P, In, Out]{repo: repo, schema: schema}
}

func (s *service[E, P, In, Out]) List(ctx context.Context, owner uuid.UUID) ([]Out, error) {
	items, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.schema.Resource, err)
	}

	out := make([]Out, 0, len(items))
	for i := range items {
		out = append(out, s.schema.ToResponse(&items[i]))
	}
	return out, nil
}

func (s *service[E, P, In, Out]) GetByID(ctx context.Context, owner, id uuid.UUID) (Out, error) {
	e, err := s.load(ctx, owner, id)
	if err != nil {
		var zero Out
		return zero, err
	}
	return s.schema.ToResponse(e), nil
}

func (s *service[E, P, In, Out]) Create(ctx context.Context, owner uuid.UUID, in In) (Out, error) {
	var zero Out
	if err := s.validate(ctx, owner, nil, in); err != nil {
		return zero, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return zero, fmt.Errorf("failed to generate id: %w", err)
	}

	e := new(E)
	s.schema.Apply(e, in)
	P(e).SetID(id)
	P(e).SetOwner(owner)

	if err := s.repo.Create(ctx, e); err != nil {
		return zero, s.writeError("create", err)
	}
	return s.schema.ToResponse(e), nil
}

func (s *service[E, P, In, Out]) Update(ctx context.Context, owner, id uuid.UUID, in In) (Out, error) {
	var zero Out
	e, err := s.load(ctx, owner, id)
	if err != nil {
		return zero, err
	}
	if err := s.validate(ctx, owner, e, in); err != nil {
		return zero, err
	}

	s.schema.Apply(e, in)

	if err := s.repo.Update(ctx, e); err != nil {
		return zero, s.writeError("update", err)
	}
	return s.schema.ToResponse(e), nil
}

func (s *service[E, P, In, Out]) Delete(ctx context.Context, owner, id uuid.UUID) error {
	e, err := s.load(ctx, owner, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.notFound()
		}
		return fmt.Errorf("failed to delete %s: %w", s.schema.Resource, err)
	}
	return nil
}

// load returns the row only when it belongs to owner. A row owned by someone
// else is reported exactly like a missing one.
func (s *service[E, P, In, Out]) load(ctx context.Context, owner, id uuid.UUID) (*E, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		return nil, fmt.Errorf("failed to load %s: %w", s.schema.Resource, err)
	}
	if P(e).OwnerID() != owner {
		return nil, s.notFound()
	}
	return e, nil
}

func (s *service[E, P, In, Out]) validate(ctx context.Context, owner uuid.UUID, current *E, in In) error {
	if s.schema.Validate == nil {
		return nil
	}
	return s.schema.Validate(ctx, owner, current, in)
}

func (s *service[E, P, In, Out]) notFound() error {
	return apperror.NotFound(fmt.Sprintf("%s not found", s.schema.Resource))
}

func (s *service[E, P, In, Out]) writeError(op string, err error) error {
	if database.IsDuplicateKey(err) {
		return apperror.Conflict(fmt.Sprintf("%s already exists", s.schema.Resource))
	}
	return fmt.Errorf("failed to %s %s: %w", op, s.schema.Resource, err)
}
