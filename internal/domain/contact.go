package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Contact holds the personal details printed on a CV. Each CV has at most one.
type Contact struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Address       string    `json:"address"`
	ZipCode       string    `json:"zip_code"`
	Location      string    `json:"location"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Birthdate     time.Time `json:"birthdate"`
	Photo         *string   `json:"photo"`
	MaritalStatus *string   `json:"marital_status"`
	CVID          uuid.UUID `json:"cv_id"`
}

type ContactCreate struct {
	FirstName     string    `json:"first_name" validate:"required,max=255"`
	LastName      string    `json:"last_name" validate:"required,max=255"`
	Address       string    `json:"address" validate:"required,max=255"`
	ZipCode       string    `json:"zip_code" validate:"required,max=20"`
	Location      string    `json:"location" validate:"required,max=255"`
	Phone         string    `json:"phone" validate:"required,max=20"`
	Email         string    `json:"email" validate:"required,email,max=255"`
	Birthdate     Date      `json:"birthdate" validate:"required" swaggertype:"string" format:"date"`
	Photo         *string   `json:"photo" validate:"omitempty,max=255"`
	MaritalStatus *string   `json:"marital_status" validate:"omitempty,max=255"`
	CVID          uuid.UUID `json:"cv_id" validate:"required"`
}

func (in ContactCreate) NewEntity(id uuid.UUID, _ time.Time) Contact {
	return Contact{
		ID:            id,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Address:       in.Address,
		ZipCode:       in.ZipCode,
		Location:      in.Location,
		Phone:         in.Phone,
		Email:         in.Email,
		Birthdate:     in.Birthdate.Time,
		Photo:         in.Photo,
		MaritalStatus: in.MaritalStatus,
		CVID:          in.CVID,
	}
}

type ContactUpdate struct {
	FirstName     Optional[string] `json:"first_name" validate:"omitempty,max=255" swaggertype:"string"`
	LastName      Optional[string] `json:"last_name" validate:"omitempty,max=255" swaggertype:"string"`
	Address       Optional[string] `json:"address" validate:"omitempty,max=255" swaggertype:"string"`
	ZipCode       Optional[string] `json:"zip_code" validate:"omitempty,max=20" swaggertype:"string"`
	Location      Optional[string] `json:"location" validate:"omitempty,max=255" swaggertype:"string"`
	Phone         Optional[string] `json:"phone" validate:"omitempty,max=20" swaggertype:"string"`
	Email         Optional[string] `json:"email" validate:"omitempty,email,max=255" swaggertype:"string"`
	Birthdate     Optional[Date]   `json:"birthdate" swaggertype:"string" format:"date"`
	Photo         Nullable[string] `json:"photo" validate:"omitempty,max=255" swaggertype:"string"`
	MaritalStatus Nullable[string] `json:"marital_status" validate:"omitempty,max=255" swaggertype:"string"`
}

func (in ContactUpdate) Apply(c *Contact, _ time.Time) {
	in.FirstName.ApplyTo(&c.FirstName)
	in.LastName.ApplyTo(&c.LastName)
	in.Address.ApplyTo(&c.Address)
	in.ZipCode.ApplyTo(&c.ZipCode)
	in.Location.ApplyTo(&c.Location)
	in.Phone.ApplyTo(&c.Phone)
	in.Email.ApplyTo(&c.Email)
	if in.Birthdate.Set {
		c.Birthdate = in.Birthdate.Value.Time
	}
	in.Photo.ApplyTo(&c.Photo)
	in.MaritalStatus.ApplyTo(&c.MaritalStatus)
}

type ContactUsecase interface {
	CrudUsecase[Contact, ContactCreate, ContactUpdate]
	// UploadPhoto stores an image and points the contact's photo at it.
	UploadPhoto(ctx context.Context, id uuid.UUID, data []byte) (*Contact, error)
}
