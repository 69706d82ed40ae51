package usecase

import (
	"context"
	"time"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type crudUsecase[E any, C domain.Creator[E], U domain.Patcher[E]] struct {
	repo     domain.Repository[E]
	validate *validator.Validate
	now      func() time.Time
}

func NewCrudUsecase[E any, C domain.Creator[E], U domain.Patcher[E]](repo domain.Repository[E], validate *validator.Validate) domain.CrudUsecase[E, C, U] {
	return newCrudUsecase[E, C, U](repo, validate)
}

func newCrudUsecase[E any, C domain.Creator[E], U domain.Patcher[E]](repo domain.Repository[E], validate *validator.Validate) *crudUsecase[E, C, U] {
	return &crudUsecase[E, C, U]{
		repo:     repo,
		validate: validate,
		now:      storeNow,
	}
}

// storeNow matches the microsecond precision of timestamptz so a created
// record compares equal to the one read back.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (u *crudUsecase[E, C, U]) Get(ctx context.Context, id uuid.UUID) (*E, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *crudUsecase[E, C, U]) List(ctx context.Context, skip, limit int) ([]E, error) {
	if skip < 0 {
		return nil, apperror.BadRequest("skip must not be negative")
	}
	if limit < 0 {
		return nil, apperror.BadRequest("limit must not be negative")
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}
	return u.repo.Fetch(ctx, skip, limit)
}

func (u *crudUsecase[E, C, U]) Count(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}

func (u *crudUsecase[E, C, U]) Create(ctx context.Context, in C) (*E, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	e := in.NewEntity(uuid.New(), u.now())
	if err := u.repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (u *crudUsecase[E, C, U]) Update(ctx context.Context, id uuid.UUID, in U) (*E, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	now := u.now()
	return u.repo.Update(ctx, id, func(e *E) error {
		in.Apply(e, now)
		return nil
	})
}

func (u *crudUsecase[E, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}
