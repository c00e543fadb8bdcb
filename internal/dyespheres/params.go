package dyespheres

import "fmt"

// Params groups everything the shading kernel depends on besides the base
// color. The zero value is not usable; start from DefaultParams.
type Params struct {
	Size    int     // canvas side in pixels
	Radius  float64 // sphere radius in pixels
	CenterX float64
	CenterY float64
	Light   Light

	Ambient       float64 // intensity floor
	DiffuseWeight float64 // share of full intensity contributed by N·L
	Shininess     float64 // Phong exponent
	SpecularScale float64 // peak highlight as a fraction of 255
}

// DefaultParams returns the 128px icon geometry and the fixed light.
func DefaultParams() Params {
	return Params{
		Size:          ImageSize,
		Radius:        Radius,
		CenterX:       Center,
		CenterY:       Center,
		Light:         DefaultLight(),
		Ambient:       Ambient,
		DiffuseWeight: DiffuseWeight,
		Shininess:     Shininess,
		SpecularScale: SpecularScale,
	}
}

// WithGeometry returns a copy of p with a different canvas and sphere.
func (p Params) WithGeometry(size int, radius, center float64) Params {
	p.Size = size
	p.Radius = radius
	p.CenterX = center
	p.CenterY = center
	return p
}

// Validate reports parameters the kernel cannot render.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("size must be > 0, got %d", p.Size)
	}
	if !(p.Radius > 0) || !isFinite(p.Radius) {
		return fmt.Errorf("radius must be > 0, got %g", p.Radius)
	}
	if !isFinite(p.CenterX) || !isFinite(p.CenterY) {
		return fmt.Errorf("center must be finite, got (%g, %g)", p.CenterX, p.CenterY)
	}
	if l := p.Light.Direction.Len(); l < 1-1e-9 || l > 1+1e-9 {
		return fmt.Errorf("light direction must be unit length, got length %g", l)
	}
	if p.Ambient < 0 || p.DiffuseWeight < 0 || p.SpecularScale < 0 || p.Shininess < 0 {
		return fmt.Errorf("lighting coefficients must be >= 0, got %+v", p)
	}
	return nil
}
