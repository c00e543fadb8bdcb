package dyespheres

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightValidation(t *testing.T) {
	_, err := NewLight(Vector3{})
	require.Error(t, err, "zero direction")
	_, err = NewLight(Vector3{math.NaN(), 0, 1})
	require.Error(t, err, "NaN direction")
	_, err = NewLight(Vector3{math.Inf(-1), 0, 1})
	require.Error(t, err, "infinite direction")

	l, err := NewLight(Vector3{0, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, Vector3{0, 0, 1}, l.Direction)
}

func TestDefaultLight(t *testing.T) {
	d := DefaultLight().Direction
	assert.InDelta(t, 1.0, d.Len(), 1e-12)
	assert.InDelta(t, -0.468292905790847, d.X, 1e-15)
	assert.InDelta(t, -0.468292905790847, d.Y, 1e-15)
	assert.InDelta(t, 0.7492686492653552, d.Z, 1e-15)
	assert.Equal(t, d, DefaultParams().Light.Direction)
}
