package usecase

import (
	"context"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type itemUsecase struct {
	*crudUsecase[domain.Item, domain.ItemCreate, domain.ItemUpdate]
}

func NewItemUsecase(repo domain.Repository[domain.Item], validate *validator.Validate) domain.CrudUsecase[domain.Item, domain.ItemCreate, domain.ItemUpdate] {
	return &itemUsecase{
		crudUsecase: newCrudUsecase[domain.Item, domain.ItemCreate, domain.ItemUpdate](repo, validate),
	}
}

// Create stamps the authenticated caller as owner.
func (u *itemUsecase) Create(ctx context.Context, in domain.ItemCreate) (*domain.Item, error) {
	ownerID, ok := ctx.Value(domain.KeyUserID).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	in.OwnerID = ownerID
	return u.crudUsecase.Create(ctx, in)
}
