package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/internal/usecase"
	"cv-manager-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func seededContacts(t *testing.T) (*memRepo[domain.Contact], domain.Contact) {
	t.Helper()
	repo := newMemRepo("Contact", func(e *domain.Contact) uuid.UUID { return e.ID })
	c := domain.Contact{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", CVID: uuid.New()}
	require.NoError(t, repo.Create(context.Background(), &c))
	return repo, c
}

func TestContactUsecase_UploadPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("storage not configured", func(t *testing.T) {
		repo, c := seededContacts(t)
		uc := usecase.NewContactUsecase(repo, nil, usecase.NewValidator())

		_, err := uc.UploadPhoto(ctx, c.ID, pngBytes(t, 10, 10))
		assert.True(t, apperror.HasCode(err, http.StatusServiceUnavailable))
	})

	t.Run("unknown contact", func(t *testing.T) {
		repo, _ := seededContacts(t)
		store := new(MockObjectStore)
		uc := usecase.NewContactUsecase(repo, store, usecase.NewValidator())

		_, err := uc.UploadPhoto(ctx, uuid.New(), pngBytes(t, 10, 10))
		assert.True(t, apperror.IsNotFound(err))
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not an image", func(t *testing.T) {
		repo, c := seededContacts(t)
		store := new(MockObjectStore)
		uc := usecase.NewContactUsecase(repo, store, usecase.NewValidator())

		_, err := uc.UploadPhoto(ctx, c.ID, []byte("%PDF-1.7 not a photo"))
		assert.Equal(t, []string{"file"}, fields(validationDetails(t, err)))
	})

	t.Run("stores a jpeg and sets the photo url", func(t *testing.T) {
		repo, c := seededContacts(t)
		store := new(MockObjectStore)
		uc := usecase.NewContactUsecase(repo, store, usecase.NewValidator())

		store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "contacts/"+c.ID.String()+"/") && strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.Anything).Return("https://cdn.example.com/photo.jpg", nil)

		got, err := uc.UploadPhoto(ctx, c.ID, pngBytes(t, 40, 20))
		require.NoError(t, err)
		require.NotNil(t, got.Photo)
		assert.Equal(t, "https://cdn.example.com/photo.jpg", *got.Photo)
		assert.Equal(t, "Ada", got.FirstName)
		store.AssertExpectations(t)
	})

	t.Run("upload failure", func(t *testing.T) {
		repo, c := seededContacts(t)
		store := new(MockObjectStore)
		uc := usecase.NewContactUsecase(repo, store, usecase.NewValidator())
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

		_, err := uc.UploadPhoto(ctx, c.ID, pngBytes(t, 10, 10))
		assert.True(t, apperror.HasCode(err, http.StatusInternalServerError))

		stored, _ := repo.GetByID(ctx, c.ID)
		assert.Nil(t, stored.Photo)
	})
}

func TestContactUsecase_UploadPhotoRemovesOrphans(t *testing.T) {
	ctx := context.Background()

	t.Run("url too long for the column", func(t *testing.T) {
		repo, c := seededContacts(t)
		store := new(MockObjectStore)
		uc := usecase.NewContactUsecase(repo, store, usecase.NewValidator())

		var key string
		store.On("Put", ctx, mock.Anything, "image/jpeg", mock.Anything).
			Run(func(args mock.Arguments) { key = args.String(1) }).
			Return("https://cdn.example.com/"+strings.Repeat("a", 300), nil)
		store.On("Delete", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.UploadPhoto(ctx, c.ID, pngBytes(t, 10, 10))
		assert.True(t, apperror.HasCode(err, http.StatusInternalServerError))
		store.AssertCalled(t, "Delete", mock.Anything, key)

		stored, _ := repo.GetByID(ctx, c.ID)
		assert.Nil(t, stored.Photo)
	})

	t.Run("contact deleted during upload", func(t *testing.T) {
		repo, c := seededContacts(t)
		store := new(MockObjectStore)
		uc := usecase.NewContactUsecase(repo, store, usecase.NewValidator())

		var key string
		store.On("Put", ctx, mock.Anything, "image/jpeg", mock.Anything).
			Run(func(args mock.Arguments) {
				key = args.String(1)
				require.NoError(t, repo.Delete(ctx, c.ID))
			}).
			Return("https://cdn.example.com/photo.jpg", nil)
		store.On("Delete", mock.Anything, mock.Anything).Return(errors.New("bucket gone"))

		_, err := uc.UploadPhoto(ctx, c.ID, pngBytes(t, 10, 10))
		assert.True(t, apperror.IsNotFound(err))
		store.AssertCalled(t, "Delete", mock.Anything, key)
	})
}

func TestHealthUsecase_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("all ok", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(stubPinger{}, func(context.Context) error { return nil })
		status, healthy := uc.Check(ctx)
		assert.True(t, healthy)
		assert.Equal(t, map[string]string{"status": "ok", "database": "ok", "redis": "ok"}, status)
	})

	t.Run("redis down degrades", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(stubPinger{}, func(context.Context) error { return errors.New("timeout") })
		status, healthy := uc.Check(ctx)
		assert.True(t, healthy)
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "unavailable", status["redis"])
	})

	t.Run("database down", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(stubPinger{err: errors.New("refused")}, nil)
		status, healthy := uc.Check(ctx)
		assert.False(t, healthy)
		assert.Equal(t, "unavailable", status["status"])
		assert.Equal(t, "disabled", status["redis"])
	})
}
