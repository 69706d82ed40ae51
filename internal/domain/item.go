package domain

import (
	"time"

	"cv-manager-backend/pkg/validation"

	"github.com/google/uuid"
)

// Item is owned by a user and removed together with its owner.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

// ItemCreate never takes the owner from the payload; the use case stamps the
// authenticated caller onto it.
type ItemCreate struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	OwnerID     uuid.UUID `json:"-"`
}

func (in ItemCreate) NewEntity(id uuid.UUID, _ time.Time) Item {
	return Item{ID: id, Title: in.Title, Description: in.Description, OwnerID: in.OwnerID}
}

type ItemUpdate struct {
	Title       Optional[string] `json:"title" validate:"omitempty,max=255" swaggertype:"string"`
	Description Nullable[string] `json:"description" validate:"omitempty,max=255" swaggertype:"string"`
}

func (in ItemUpdate) Apply(i *Item, _ time.Time) {
	in.Title.ApplyTo(&i.Title)
	in.Description.ApplyTo(&i.Description)
}

func (in ItemUpdate) Validate() []validation.FieldError {
	if in.Title.Set && in.Title.Value == "" {
		return []validation.FieldError{{Field: "title", Message: "must be at least 1 character"}}
	}
	return nil
}
