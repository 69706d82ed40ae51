package domain

import (
	"time"

	"github.com/google/uuid"
)

// CV is the root document. Jobs, schools and the contact reference it.
type CV struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Recipient string    `json:"recipient"`
	CreatedAt time.Time `json:"created_at"`
	EditedAt  time.Time `json:"edited_at"`
}

type CVCreate struct {
	Name      string `json:"name" validate:"required,max=255"`
	Recipient string `json:"recipient" validate:"required,max=255"`
}

func (in CVCreate) NewEntity(id uuid.UUID, now time.Time) CV {
	return CV{
		ID:        id,
		Name:      in.Name,
		Recipient: in.Recipient,
		CreatedAt: now,
		EditedAt:  now,
	}
}

type CVUpdate struct {
	Name      Optional[string] `json:"name" validate:"omitempty,max=255" swaggertype:"string"`
	Recipient Optional[string] `json:"recipient" validate:"omitempty,max=255" swaggertype:"string"`
}

// Apply refreshes EditedAt on every update, even an empty one.
func (in CVUpdate) Apply(cv *CV, now time.Time) {
	in.Name.ApplyTo(&cv.Name)
	in.Recipient.ApplyTo(&cv.Recipient)
	cv.EditedAt = now
}
