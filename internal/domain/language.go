package domain

import (
	"time"

	"github.com/google/uuid"
)

type Language struct {
	ID       uuid.UUID `json:"id"`
	Language string    `json:"language"`
	Level    string    `json:"level"`
}

type LanguageCreate struct {
	Language string `json:"language" validate:"required,max=255"`
	Level    string `json:"level" validate:"required,max=255"`
}

func (in LanguageCreate) NewEntity(id uuid.UUID, _ time.Time) Language {
	return Language{ID: id, Language: in.Language, Level: in.Level}
}

type LanguageUpdate struct {
	Language Optional[string] `json:"language" validate:"omitempty,max=255" swaggertype:"string"`
	Level    Optional[string] `json:"level" validate:"omitempty,max=255" swaggertype:"string"`
}

func (in LanguageUpdate) Apply(l *Language, _ time.Time) {
	in.Language.ApplyTo(&l.Language)
	in.Level.ApplyTo(&l.Level)
}
