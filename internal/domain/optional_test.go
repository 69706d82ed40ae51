package domain

import (
	"encoding/json"
	"testing"
	"time"

	"cv-manager-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_NullNamesTheField(t *testing.T) {
	var in CVUpdate
	err := json.Unmarshal([]byte(`{"recipient":"X","name":null}`), &in)
	require.Error(t, err)

	assert.Equal(t, []validation.FieldError{{Field: "name", Message: "field cannot be null"}}, validation.FormatBindingError(err))
}

func TestOptional_WrongTypeNamesTheField(t *testing.T) {
	var in TaskUpdate
	err := json.Unmarshal([]byte(`{"duration":"long"}`), &in)
	require.Error(t, err)

	assert.Equal(t, []validation.FieldError{{Field: "duration", Message: "must be of type number"}}, validation.FormatBindingError(err))
}

func TestDate_InvalidNamesTheField(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		into  any
	}{
		{"create", `{"start":"01/02/2020"}`, "start", &JobCreate{}},
		{"optional update", `{"start":"yesterday"}`, "start", &JobUpdate{}},
		{"nullable update", `{"end":"2020-13-45"}`, "end", &SchoolUpdate{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.into)
			require.Error(t, err)

			assert.Equal(t, []validation.FieldError{{Field: tt.field, Message: "invalid date, expected YYYY-MM-DD or RFC 3339"}}, validation.FormatBindingError(err))
		})
	}
}

func TestDate_Formats(t *testing.T) {
	var in JobCreate
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2020-01-02","end":"2021-06-30T08:00:00Z"}`), &in))

	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), in.Start.Time)
	require.NotNil(t, in.End)
	assert.Equal(t, time.Date(2021, 6, 30, 8, 0, 0, 0, time.UTC), in.End.Time)
}

func TestNullable_NullClears(t *testing.T) {
	var in JobUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"end":null}`), &in))

	end := time.Now()
	job := Job{End: &end}
	in.Apply(&job, time.Now())
	assert.Nil(t, job.End)
}
