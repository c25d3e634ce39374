package validator

import (
	"testing"

	domainerrors "trajmatch/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lng float64 `validate:"gte=-180,lte=180"`
}

type body struct {
	Name   string  `validate:"required"`
	Points []point `validate:"dive"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&body{Name: "a", Points: []point{{Lat: 1, Lng: 2}}}))

	err := v.Validate(&body{Points: []point{{Lat: 1}, {Lat: 91}}})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "name failed required")
	assert.Contains(t, appErr.Details(), "points[1].lat failed lte")
}
