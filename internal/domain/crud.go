package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Creator builds a new entity from a validated create payload.
type Creator[E any] interface {
	NewEntity(id uuid.UUID, now time.Time) E
}

// Patcher applies the fields present in a validated update payload.
type Patcher[E any] interface {
	Apply(e *E, now time.Time)
}

// Repository is the single-table store contract shared by every entity.
type Repository[E any] interface {
	Create(ctx context.Context, e *E) error
	GetByID(ctx context.Context, id uuid.UUID) (*E, error)
	Fetch(ctx context.Context, offset, limit int) ([]E, error)
	Count(ctx context.Context) (int64, error)
	// Update loads the row, lets mutate change it and writes it back inside
	// one transaction.
	Update(ctx context.Context, id uuid.UUID, mutate func(e *E) error) (*E, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CrudUsecase[E any, C any, U any] interface {
	Get(ctx context.Context, id uuid.UUID) (*E, error)
	List(ctx context.Context, skip, limit int) ([]E, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, in C) (*E, error)
	Update(ctx context.Context, id uuid.UUID, in U) (*E, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
