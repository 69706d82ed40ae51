package usecase

import (
	"context"
	"fmt"
	"net/http"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/imaging"
	"cv-manager-backend/pkg/logger"
	"cv-manager-backend/pkg/storage"
	"cv-manager-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	photoMaxDimension = 1200
	photoQuality      = 80
)

type contactUsecase struct {
	*crudUsecase[domain.Contact, domain.ContactCreate, domain.ContactUpdate]
	photos storage.ObjectStore
}

// NewContactUsecase wires photo uploads to photos; a nil store disables them.
func NewContactUsecase(repo domain.Repository[domain.Contact], photos storage.ObjectStore, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		crudUsecase: newCrudUsecase[domain.Contact, domain.ContactCreate, domain.ContactUpdate](repo, validate),
		photos:      photos,
	}
}

func (u *contactUsecase) UploadPhoto(ctx context.Context, id uuid.UUID, data []byte) (*domain.Contact, error) {
	if u.photos == nil {
		return nil, apperror.ServiceUnavailable("Photo storage is not configured")
	}
	if _, err := u.Get(ctx, id); err != nil {
		return nil, err
	}

	if _, err := imaging.Detect(data); err != nil {
		return nil, photoError("must be a JPEG, PNG, GIF or WebP image")
	}

	compressed, err := imaging.Compress(data, photoMaxDimension, photoQuality)
	if err != nil {
		return nil, photoError("could not be decoded as an image")
	}
	logger.Log.Debug("contact photo compressed", "contact_id", id, "original_bytes", len(data), "bytes", len(compressed))

	key := fmt.Sprintf("contacts/%s/%s.jpg", id, uuid.New())
	url, err := u.photos.Put(ctx, key, "image/jpeg", compressed)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	contact, err := u.Update(ctx, id, domain.ContactUpdate{Photo: domain.NullableOf(url)})
	if err != nil {
		// The row was not updated, so nothing references the object
		if delErr := u.photos.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			logger.Log.Error("failed to remove orphaned contact photo", "contact_id", id, "key", key, "error", delErr)
		}
		if apperror.HasCode(err, http.StatusUnprocessableEntity) {
			// The stored URL itself was rejected, which is a storage misconfiguration
			return nil, apperror.Internal(err)
		}
		return nil, err
	}
	return contact, nil
}

func photoError(message string) error {
	return apperror.Validation("Validation failed", []validation.FieldError{{Field: "file", Message: message}})
}
