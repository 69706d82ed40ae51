package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/internal/usecase"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{ID: uuid.New(), Email: email, IsActive: true, HashedPassword: hash}
}

func TestUserUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hash the password", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())

		repo.On("GetByEmail", ctx, "new@example.com").Return(nil, apperror.NotFound("User not found"))
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEqual(t, "supersecret", u.HashedPassword)
			assert.True(t, auth.VerifyPassword(u.HashedPassword, "supersecret"))
		})

		user, err := uc.Create(ctx, domain.UserCreate{Email: "new@example.com", Password: "supersecret"})
		require.NoError(t, err)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsSuperuser)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())

		repo.On("GetByEmail", ctx, "taken@example.com").Return(storedUser(t, "taken@example.com", "password1"), nil)

		_, err := uc.Create(ctx, domain.UserCreate{Email: "taken@example.com", Password: "supersecret"})
		assert.True(t, apperror.HasCode(err, http.StatusConflict))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a short password before the store", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())

		_, err := uc.Create(ctx, domain.UserCreate{Email: "new@example.com", Password: "short"})
		assert.Equal(t, []string{"password"}, fields(validationDetails(t, err)))
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestUserUsecase_Update(t *testing.T) {
	ctx := context.Background()
	existing := storedUser(t, "me@example.com", "password1")

	t.Run("Should re-hash a new password", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
		repo.On("Update", ctx, existing.ID).Return(existing, nil)

		got, err := uc.Update(ctx, existing.ID, domain.UserUpdate{Password: domain.Some("password2")})
		require.NoError(t, err)
		assert.True(t, auth.VerifyPassword(got.HashedPassword, "password2"))
		assert.Equal(t, existing.Email, got.Email)
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())

		_, err := uc.Update(ctx, existing.ID, domain.UserUpdate{Password: domain.Some("short")})
		assert.Equal(t, []string{"password"}, fields(validationDetails(t, err)))
	})

	t.Run("Should reject an email owned by someone else", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
		other := storedUser(t, "other@example.com", "password1")
		repo.On("GetByEmail", ctx, "other@example.com").Return(other, nil)

		_, err := uc.UpdateMe(ctx, existing.ID, domain.UserUpdateMe{Email: domain.Some("other@example.com")})
		assert.True(t, apperror.HasCode(err, http.StatusConflict))
	})

	t.Run("Should allow keeping the own email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
		repo.On("GetByEmail", ctx, existing.Email).Return(existing, nil)
		repo.On("Update", ctx, existing.ID).Return(existing, nil)

		got, err := uc.UpdateMe(ctx, existing.ID, domain.UserUpdateMe{
			Email:    domain.Some(existing.Email),
			FullName: domain.NullableOf("Me Myself"),
		})
		require.NoError(t, err)
		require.NotNil(t, got.FullName)
		assert.Equal(t, "Me Myself", *got.FullName)
	})
}

func TestUserUsecase_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	existing := storedUser(t, "me@example.com", "password1")

	tests := []struct {
		name    string
		in      domain.UpdatePassword
		wantErr string
	}{
		{"wrong current password", domain.UpdatePassword{CurrentPassword: "password0", NewPassword: "password2"}, "Incorrect password"},
		{"same password", domain.UpdatePassword{CurrentPassword: "password1", NewPassword: "password1"}, "New password cannot be the same as the current one"},
		{"ok", domain.UpdatePassword{CurrentPassword: "password1", NewPassword: "password2"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepo)
			uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
			repo.On("Update", ctx, existing.ID).Return(existing, nil)

			err := uc.UpdatePassword(ctx, existing.ID, tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUserUsecase_Authenticate(t *testing.T) {
	ctx := context.Background()
	active := storedUser(t, "me@example.com", "password1")
	inactive := storedUser(t, "off@example.com", "password1")
	inactive.IsActive = false

	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
	repo.On("GetByEmail", ctx, "me@example.com").Return(active, nil)
	repo.On("GetByEmail", ctx, "off@example.com").Return(inactive, nil)
	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperror.NotFound("User not found"))

	got, err := uc.Authenticate(ctx, "me@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)

	_, err = uc.Authenticate(ctx, "me@example.com", "wrong-password")
	assert.EqualError(t, err, "Incorrect email or password")

	_, err = uc.Authenticate(ctx, "ghost@example.com", "password1")
	assert.EqualError(t, err, "Incorrect email or password")

	_, err = uc.Authenticate(ctx, "off@example.com", "password1")
	assert.EqualError(t, err, "Inactive user")
}

func TestUserUsecase_EnsureSuperuser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing superuser", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
		repo.On("GetByEmail", ctx, "admin@example.com").Return(nil, apperror.NotFound("User not found"))
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.IsSuperuser && u.IsActive && u.Email == "admin@example.com"
		})).Return(nil)

		require.NoError(t, uc.EnsureSuperuser(ctx, "admin@example.com", "changethis"))
		repo.AssertExpectations(t)
	})

	t.Run("leaves an existing account alone", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())
		repo.On("GetByEmail", ctx, "admin@example.com").Return(storedUser(t, "admin@example.com", "changethis"), nil)

		require.NoError(t, uc.EnsureSuperuser(ctx, "admin@example.com", "changethis"))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("no email configured", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, usecase.NewValidator())

		require.NoError(t, uc.EnsureSuperuser(ctx, "", ""))
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "me@example.com", "password1")

	repo := new(MockUserRepo)
	tokens := new(MockTokenIssuer)
	users := usecase.NewUserUsecase(repo, usecase.NewValidator())
	uc := usecase.NewAuthUsecase(users, tokens, usecase.NewValidator())

	repo.On("GetByEmail", ctx, "me@example.com").Return(user, nil)
	tokens.On("Generate", user.ID, user.Email).Return("signed.jwt", nil)

	token, err := uc.Login(ctx, domain.LoginRequest{Email: "me@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, &domain.Token{AccessToken: "signed.jwt", TokenType: "bearer"}, token)

	_, err = uc.Login(ctx, domain.LoginRequest{Email: "me@example.com", Password: "nope-nope"})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	tokens.AssertNumberOfCalls(t, "Generate", 1)
}

func TestAuthUsecase_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	active := storedUser(t, "me@example.com", "password1")
	inactive := storedUser(t, "off@example.com", "password1")
	inactive.IsActive = false
	missing := uuid.New()

	repo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(usecase.NewUserUsecase(repo, usecase.NewValidator()), new(MockTokenIssuer), usecase.NewValidator())
	repo.On("GetByID", ctx, active.ID).Return(active, nil)
	repo.On("GetByID", ctx, inactive.ID).Return(inactive, nil)
	repo.On("GetByID", ctx, missing).Return(nil, apperror.NotFound("User not found"))

	got, err := uc.GetCurrentUser(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.Email, got.Email)

	_, err = uc.GetCurrentUser(ctx, inactive.ID)
	assert.EqualError(t, err, "Inactive user")

	_, err = uc.GetCurrentUser(ctx, missing)
	assert.True(t, apperror.HasCode(err, http.StatusUnauthorized))
}
