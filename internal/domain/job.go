package domain

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID       uuid.UUID  `json:"id"`
	Position string     `json:"position"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end"`
	CVID     uuid.UUID  `json:"cv_id"`
}

type JobCreate struct {
	Position string    `json:"position" validate:"required,max=255"`
	Company  string    `json:"company" validate:"required,max=255"`
	Location string    `json:"location" validate:"required,max=255"`
	Start    Date      `json:"start" validate:"required" swaggertype:"string" format:"date-time"`
	End      *Date     `json:"end" swaggertype:"string" format:"date-time"`
	CVID     uuid.UUID `json:"cv_id" validate:"required"`
}

func (in JobCreate) NewEntity(id uuid.UUID, _ time.Time) Job {
	return Job{
		ID:       id,
		Position: in.Position,
		Company:  in.Company,
		Location: in.Location,
		Start:    in.Start.Time,
		End:      datePtr(in.End),
		CVID:     in.CVID,
	}
}

type JobUpdate struct {
	Position Optional[string] `json:"position" validate:"omitempty,max=255" swaggertype:"string"`
	Company  Optional[string] `json:"company" validate:"omitempty,max=255" swaggertype:"string"`
	Location Optional[string] `json:"location" validate:"omitempty,max=255" swaggertype:"string"`
	Start    Optional[Date]   `json:"start" swaggertype:"string" format:"date-time"`
	End      Nullable[Date]   `json:"end" swaggertype:"string" format:"date-time"`
}

func (in JobUpdate) Apply(j *Job, _ time.Time) {
	in.Position.ApplyTo(&j.Position)
	in.Company.ApplyTo(&j.Company)
	in.Location.ApplyTo(&j.Location)
	if in.Start.Set {
		j.Start = in.Start.Value.Time
	}
	if in.End.Set {
		j.End = datePtr(in.End.Value)
	}
}
