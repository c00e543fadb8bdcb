package dyespheres

import (
	"errors"
	"math"
)

// Light is a directional light. Direction points from the surface towards
// the light and is always unit length.
type Light struct {
	Direction Vector3
}

// NewLight normalizes dir. Returns an error if dir is zero or not finite.
func NewLight(dir Vector3) (Light, error) {
	if !isFinite(dir.X) || !isFinite(dir.Y) || !isFinite(dir.Z) {
		return Light{}, errors.New("light direction must be finite")
	}
	n := dir.Norm()
	if n.Len() == 0 {
		return Light{}, errors.New("light direction must be non-zero")
	}
	return Light{Direction: n}, nil
}

// DefaultLight is the fixed top-left-front light used for every icon.
func DefaultLight() Light {
	l, err := NewLight(Vector3{LightX, LightY, LightZ})
	if err != nil {
		panic(err)
	}
	return l
}

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
