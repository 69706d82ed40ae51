package domain

import (
	"context"
	"time"

	"cv-manager-backend/pkg/validation"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	FullName       *string   `json:"full_name"`
	HashedPassword string    `json:"-"`
}

// UserCreate is the administrative create shape. Password is hashed by the
// use case before the user reaches the store.
type UserCreate struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=40"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	FullName    *string `json:"full_name" validate:"omitempty,max=255"`
}

func (in UserCreate) NewEntity(id uuid.UUID, _ time.Time) User {
	u := User{
		ID:       id,
		Email:    in.Email,
		IsActive: true,
		FullName: in.FullName,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		u.IsSuperuser = *in.IsSuperuser
	}
	return u
}

// UserRegister is the public sign-up shape.
type UserRegister struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=40"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
}

type UserUpdate struct {
	Email       Optional[string] `json:"email" validate:"omitempty,email,max=255" swaggertype:"string"`
	Password    Optional[string] `json:"password" validate:"omitempty,max=40" swaggertype:"string"`
	IsActive    Optional[bool]   `json:"is_active" swaggertype:"boolean"`
	IsSuperuser Optional[bool]   `json:"is_superuser" swaggertype:"boolean"`
	FullName    Nullable[string] `json:"full_name" validate:"omitempty,max=255" swaggertype:"string"`
}

// Apply leaves the password alone; hashing happens in the use case.
func (in UserUpdate) Apply(u *User, _ time.Time) {
	in.Email.ApplyTo(&u.Email)
	in.IsActive.ApplyTo(&u.IsActive)
	in.IsSuperuser.ApplyTo(&u.IsSuperuser)
	in.FullName.ApplyTo(&u.FullName)
}

func (in UserUpdate) Validate() []validation.FieldError {
	if in.Password.Set && len(in.Password.Value) < 8 {
		return []validation.FieldError{{Field: "password", Message: "must be at least 8 characters"}}
	}
	return nil
}

type UserUpdateMe struct {
	FullName Nullable[string] `json:"full_name" validate:"omitempty,max=255" swaggertype:"string"`
	Email    Optional[string] `json:"email" validate:"omitempty,email,max=255" swaggertype:"string"`
}

func (in UserUpdateMe) Apply(u *User, _ time.Time) {
	in.FullName.ApplyTo(&u.FullName)
	in.Email.ApplyTo(&u.Email)
}

type UpdatePassword struct {
	CurrentPassword string `json:"current_password" validate:"required,min=8,max=40"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=40"`
}

type LoginRequest struct {
	Email    string `json:"username" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserRepository interface {
	Repository[User]
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type UserUsecase interface {
	CrudUsecase[User, UserCreate, UserUpdate]
	Register(ctx context.Context, in UserRegister) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	UpdateMe(ctx context.Context, id uuid.UUID, in UserUpdateMe) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, in UpdatePassword) error
	// EnsureSuperuser creates the bootstrap superuser if the email is unknown.
	EnsureSuperuser(ctx context.Context, email, password string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginRequest) (*Token, error)
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*User, error)
}
