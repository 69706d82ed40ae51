package domain

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Duration    int       `json:"duration"`
	JobID       uuid.UUID `json:"job_id"`
}

type TaskCreate struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	Duration    *int      `json:"duration" validate:"required"`
	JobID       uuid.UUID `json:"job_id" validate:"required"`
}

func (in TaskCreate) NewEntity(id uuid.UUID, _ time.Time) Task {
	t := Task{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		JobID:       in.JobID,
	}
	if in.Duration != nil {
		t.Duration = *in.Duration
	}
	return t
}

type TaskUpdate struct {
	Name        Optional[string] `json:"name" validate:"omitempty,max=255" swaggertype:"string"`
	Description Nullable[string] `json:"description" validate:"omitempty,max=255" swaggertype:"string"`
	Duration    Optional[int]    `json:"duration" swaggertype:"integer"`
}

func (in TaskUpdate) Apply(t *Task, _ time.Time) {
	in.Name.ApplyTo(&t.Name)
	in.Description.ApplyTo(&t.Description)
	in.Duration.ApplyTo(&t.Duration)
}
