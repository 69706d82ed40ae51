package usecase

import (
	"context"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/auth"
	"cv-manager-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgEmailTaken = "The user with this email already exists in the system"

type userUsecase struct {
	*crudUsecase[domain.User, domain.UserCreate, domain.UserUpdate]
	users domain.UserRepository
}

func NewUserUsecase(users domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		crudUsecase: newCrudUsecase[domain.User, domain.UserCreate, domain.UserUpdate](users, validate),
		users:       users,
	}
}

func (u *userUsecase) Create(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	if err := u.ensureEmailFree(ctx, in.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := in.NewEntity(uuid.New(), u.now())
	user.HashedPassword = hash
	if err := u.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userUsecase) Register(ctx context.Context, in domain.UserRegister) (*domain.User, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	return u.Create(ctx, domain.UserCreate{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
	})
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, in domain.UserUpdate) (*domain.User, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	if in.Email.Set {
		if err := u.ensureEmailFree(ctx, in.Email.Value, id); err != nil {
			return nil, err
		}
	}

	var hash string
	if in.Password.Set {
		var err error
		if hash, err = auth.HashPassword(in.Password.Value); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	now := u.now()
	return u.users.Update(ctx, id, func(user *domain.User) error {
		in.Apply(user, now)
		if hash != "" {
			user.HashedPassword = hash
		}
		return nil
	})
}

func (u *userUsecase) UpdateMe(ctx context.Context, id uuid.UUID, in domain.UserUpdateMe) (*domain.User, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	if in.Email.Set {
		if err := u.ensureEmailFree(ctx, in.Email.Value, id); err != nil {
			return nil, err
		}
	}

	now := u.now()
	return u.users.Update(ctx, id, func(user *domain.User) error {
		in.Apply(user, now)
		return nil
	})
}

func (u *userUsecase) UpdatePassword(ctx context.Context, id uuid.UUID, in domain.UpdatePassword) error {
	if err := validateInput(u.validate, in); err != nil {
		return err
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return apperror.Internal(err)
	}

	_, err = u.users.Update(ctx, id, func(user *domain.User) error {
		if !auth.VerifyPassword(user.HashedPassword, in.CurrentPassword) {
			return apperror.BadRequest("Incorrect password")
		}
		if in.CurrentPassword == in.NewPassword {
			return apperror.BadRequest("New password cannot be the same as the current one")
		}
		user.HashedPassword = hash
		return nil
	})
	return err
}

// Authenticate returns the same error for an unknown email and a wrong
// password.
func (u *userUsecase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.BadRequest("Incorrect email or password")
		}
		return nil, err
	}
	if !auth.VerifyPassword(user.HashedPassword, password) {
		return nil, apperror.BadRequest("Incorrect email or password")
	}
	if !user.IsActive {
		return nil, apperror.BadRequest("Inactive user")
	}
	return user, nil
}

func (u *userUsecase) EnsureSuperuser(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := u.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !apperror.IsNotFound(err) {
		return err
	}

	active, super := true, true
	user, err := u.Create(ctx, domain.UserCreate{
		Email:       email,
		Password:    password,
		IsActive:    &active,
		IsSuperuser: &super,
	})
	if err != nil {
		return err
	}
	logger.Log.Info("superuser created", "user_id", user.ID, "email", user.Email)
	return nil
}

// ensureEmailFree fails with a conflict when email belongs to a user other
// than self.
func (u *userUsecase) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return apperror.Conflict(msgEmailTaken)
	}
	return nil
}
