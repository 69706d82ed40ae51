package domain

import (
	"time"

	"github.com/google/uuid"
)

type Knowledge struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Rating      int       `json:"rating"`
}

type KnowledgeCreate struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Rating      *int    `json:"rating" validate:"required"`
}

func (in KnowledgeCreate) NewEntity(id uuid.UUID, _ time.Time) Knowledge {
	k := Knowledge{ID: id, Name: in.Name, Description: in.Description}
	if in.Rating != nil {
		k.Rating = *in.Rating
	}
	return k
}

type KnowledgeUpdate struct {
	Name        Optional[string] `json:"name" validate:"omitempty,max=255" swaggertype:"string"`
	Description Nullable[string] `json:"description" validate:"omitempty,max=255" swaggertype:"string"`
	Rating      Optional[int]    `json:"rating" swaggertype:"integer"`
}

func (in KnowledgeUpdate) Apply(k *Knowledge, _ time.Time) {
	in.Name.ApplyTo(&k.Name)
	in.Description.ApplyTo(&k.Description)
	in.Rating.ApplyTo(&k.Rating)
}
