package domain

import (
	"time"

	"github.com/google/uuid"
)

type School struct {
	ID       uuid.UUID  `json:"id"`
	School   string     `json:"school"`
	Subject  string     `json:"subject"`
	Degree   string     `json:"degree"`
	Location string     `json:"location"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end"`
	CVID     uuid.UUID  `json:"cv_id"`
}

type SchoolCreate struct {
	School   string    `json:"school" validate:"required,max=255"`
	Subject  string    `json:"subject" validate:"required,max=255"`
	Degree   string    `json:"degree" validate:"required,max=255"`
	Location string    `json:"location" validate:"required,max=255"`
	Start    Date      `json:"start" validate:"required" swaggertype:"string" format:"date-time"`
	End      *Date     `json:"end" swaggertype:"string" format:"date-time"`
	CVID     uuid.UUID `json:"cv_id" validate:"required"`
}

func (in SchoolCreate) NewEntity(id uuid.UUID, _ time.Time) School {
	return School{
		ID:       id,
		School:   in.School,
		Subject:  in.Subject,
		Degree:   in.Degree,
		Location: in.Location,
		Start:    in.Start.Time,
		End:      datePtr(in.End),
		CVID:     in.CVID,
	}
}

type SchoolUpdate struct {
	School   Optional[string] `json:"school" validate:"omitempty,max=255" swaggertype:"string"`
	Subject  Optional[string] `json:"subject" validate:"omitempty,max=255" swaggertype:"string"`
	Degree   Optional[string] `json:"degree" validate:"omitempty,max=255" swaggertype:"string"`
	Location Optional[string] `json:"location" validate:"omitempty,max=255" swaggertype:"string"`
	Start    Optional[Date]   `json:"start" swaggertype:"string" format:"date-time"`
	End      Nullable[Date]   `json:"end" swaggertype:"string" format:"date-time"`
}

func (in SchoolUpdate) Apply(s *School, _ time.Time) {
	in.School.ApplyTo(&s.School)
	in.Subject.ApplyTo(&s.Subject)
	in.Degree.ApplyTo(&s.Degree)
	in.Location.ApplyTo(&s.Location)
	if in.Start.Set {
		s.Start = in.Start.Value.Time
	}
	if in.End.Set {
		s.End = datePtr(in.End.Value)
	}
}
