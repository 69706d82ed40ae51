package postgres

import (
	"context"

	"cv-manager-backend/internal/domain"
)

type userRepo struct {
	*crudRepo[domain.User]
}

func NewUserRepository(db DB) domain.UserRepository {
	return &userRepo{crudRepo: newCrudRepo(db, table[domain.User]{
		name:     "users",
		label:    "User",
		conflict: "The user with this email already exists in the system",
		columns:  []string{"id", "email", "is_active", "is_superuser", "full_name", "hashed_password"},
		orderBy:  "id",
		fields: func(e *domain.User) []any {
			return []any{&e.ID, &e.Email, &e.IsActive, &e.IsSuperuser, &e.FullName, &e.HashedPassword}
		},
	})}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, r.db, r.selectSQL+" WHERE email = $1", email)
}
