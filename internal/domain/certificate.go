package domain

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
}

type CertificateCreate struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Date        Date    `json:"date" validate:"required" swaggertype:"string" format:"date-time"`
}

func (in CertificateCreate) NewEntity(id uuid.UUID, _ time.Time) Certificate {
	return Certificate{ID: id, Name: in.Name, Description: in.Description, Date: in.Date.Time}
}

type CertificateUpdate struct {
	Name        Optional[string] `json:"name" validate:"omitempty,max=255" swaggertype:"string"`
	Description Nullable[string] `json:"description" validate:"omitempty,max=255" swaggertype:"string"`
	Date        Optional[Date]   `json:"date" swaggertype:"string" format:"date-time"`
}

func (in CertificateUpdate) Apply(c *Certificate, _ time.Time) {
	in.Name.ApplyTo(&c.Name)
	in.Description.ApplyTo(&c.Description)
	if in.Date.Set {
		c.Date = in.Date.Value.Time
	}
}
