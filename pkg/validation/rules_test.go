package validation

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInspectionDate(t *testing.T) {
	d, err := ParseInspectionDate("2030-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseInspectionDate("2030-01-02T10:30:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, 7, d.UTC().Hour())

	_, err = ParseInspectionDate("02.01.2030")
	assert.Error(t, err)
}

func TestCustomValidator(t *testing.T) {
	type body struct {
		Date      string      `validate:"required,inspection_date"`
		Direction string      `validate:"sort_direction"`
		Comment   null.String `validate:"omitempty,max=5"`
	}
	v := New()

	assert.NoError(t, v.Validate(body{Date: "2030-01-02", Direction: "DESC"}))
	assert.NoError(t, v.Validate(body{Date: "2030-01-02"}))
	assert.Error(t, v.Validate(body{Date: "tomorrow"}))
	assert.Error(t, v.Validate(body{Date: "2030-01-02", Direction: "up"}))
	assert.Error(t, v.Validate(body{Date: "2030-01-02", Comment: null.StringFrom("too long")}))
	assert.NoError(t, v.Validate(body{Date: "2030-01-02", Comment: null.String{}}))
}

func TestCustomValidatorNullInt64(t *testing.T) {
	type patch struct {
		InspectorID null.Int64 `validate:"omitempty,gte=0"`
	}
	v := New()

	assert.NoError(t, v.Validate(patch{}))
	assert.NoError(t, v.Validate(patch{InspectorID: null.Int64From(0)}))
	assert.NoError(t, v.Validate(patch{InspectorID: null.Int64From(4)}))
	assert.Error(t, v.Validate(patch{InspectorID: null.Int64From(-1)}))
}
