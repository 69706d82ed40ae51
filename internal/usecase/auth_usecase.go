package usecase

import (
	"context"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uuid.UUID, email string) (string, error)
}

type authUsecase struct {
	users    domain.UserUsecase
	tokens   TokenIssuer
	validate *validator.Validate
}

func NewAuthUsecase(users domain.UserUsecase, tokens TokenIssuer, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		validate: validate,
	}
}

func (u *authUsecase) Login(ctx context.Context, in domain.LoginRequest) (*domain.Token, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	user, err := u.users.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.Token{AccessToken: token, TokenType: "bearer"}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := u.users.Get(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.BadRequest("Inactive user")
	}
	return user, nil
}
