package usecase_test

import (
	"context"
	"sync"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memRepo is an in-memory domain.Repository keeping insertion order.
type memRepo[E any] struct {
	mu    sync.Mutex
	label string
	id    func(e *E) uuid.UUID
	rows  []E
}

func newMemRepo[E any](label string, id func(e *E) uuid.UUID) *memRepo[E] {
	return &memRepo[E]{label: label, id: id}
}

func (r *memRepo[E]) find(id uuid.UUID) int {
	for i := range r.rows {
		if r.id(&r.rows[i]) == id {
			return i
		}
	}
	return -1
}

func (r *memRepo[E]) Create(ctx context.Context, e *E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(r.id(e)) >= 0 {
		return apperror.Conflict(r.label + " already exists")
	}
	r.rows = append(r.rows, *e)
	return nil
}

func (r *memRepo[E]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return nil, apperror.NotFound(r.label + " not found")
	}
	e := r.rows[i]
	return &e, nil
}

func (r *memRepo[E]) Fetch(ctx context.Context, offset, limit int) ([]E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.rows) {
		return []E{}, nil
	}
	end := min(offset+limit, len(r.rows))
	return append([]E(nil), r.rows[offset:end]...), nil
}

func (r *memRepo[E]) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memRepo[E]) Update(ctx context.Context, id uuid.UUID, mutate func(e *E) error) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return nil, apperror.NotFound(r.label + " not found")
	}
	e := r.rows[i]
	if err := mutate(&e); err != nil {
		return nil, err
	}
	r.rows[i] = e
	return &e, nil
}

func (r *memRepo[E]) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return apperror.NotFound(r.label + " not found")
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Fetch(ctx context.Context, offset, limit int) ([]domain.User, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Update applies mutate to a copy of the user the expectation returns.
func (m *MockUserRepo) Update(ctx context.Context, id uuid.UUID, mutate func(*domain.User) error) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	u := *args.Get(0).(*domain.User)
	if err := mutate(&u); err != nil {
		return nil, err
	}
	return &u, args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}
