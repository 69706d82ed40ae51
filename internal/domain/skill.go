package domain

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Rating int       `json:"rating"`
	TaskID uuid.UUID `json:"task_id"`
}

type SkillCreate struct {
	Name   string    `json:"name" validate:"required,max=255"`
	Rating *int      `json:"rating" validate:"required"`
	TaskID uuid.UUID `json:"task_id" validate:"required"`
}

func (in SkillCreate) NewEntity(id uuid.UUID, _ time.Time) Skill {
	s := Skill{ID: id, Name: in.Name, TaskID: in.TaskID}
	if in.Rating != nil {
		s.Rating = *in.Rating
	}
	return s
}

type SkillUpdate struct {
	Name   Optional[string] `json:"name" validate:"omitempty,max=255" swaggertype:"string"`
	Rating Optional[int]    `json:"rating" swaggertype:"integer"`
}

func (in SkillUpdate) Apply(s *Skill, _ time.Time) {
	in.Name.ApplyTo(&s.Name)
	in.Rating.ApplyTo(&s.Rating)
}
