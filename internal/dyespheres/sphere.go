package dyespheres

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"
)

// RenderSphere shades a sphere of base color c on a transparent square
// canvas. Rows are shaded concurrently; every goroutine owns its own rows so
// the buffer needs no locking. p is assumed to pass Validate.
func RenderSphere(c Color, p Params) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))

	workers := runtime.NumCPU()
	if workers > p.Size {
		workers = p.Size
	}
	workers = imax(workers, 1)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			for y := wid; y < p.Size; y += workers {
				shadeRow(img, c, p, y)
			}
		}()
	}
	wg.Wait()
	return img
}

func shadeRow(img *image.NRGBA, c Color, p Params, y int) {
	row := y * img.Stride
	for x := 0; x < p.Size; x++ {
		px := ShadePixel(c, p, x, y)
		o := row + x*4
		img.Pix[o+0] = px.R
		img.Pix[o+1] = px.G
		img.Pix[o+2] = px.B
		img.Pix[o+3] = px.A
	}
}

// ShadePixel returns the color of pixel (x, y). Pixels off the sphere are
// fully transparent black.
func ShadePixel(c Color, p Params, x, y int) color.NRGBA {
	dx := float64(x) - p.CenterX
	dy := float64(y) - p.CenterY
	distSq := dx*dx + dy*dy
	r2 := p.Radius * p.Radius
	if distSq > r2 {
		return color.NRGBA{}
	}

	// Orthographic view: the visible hemisphere faces +Z.
	z := math.Sqrt(r2 - distSq)
	N := Vector3{dx / p.Radius, dy / p.Radius, z / p.Radius}
	L := p.Light.Direction

	diffuse := math.Max(0, N.Dot(L))

	// Phong with the viewer on the Z axis: R·V is just the Z component of
	// the reflected light.
	specular := 0.0
	if diffuse > 0 {
		if rz := L.Reflect(N).Z; rz > 0 {
			specular = math.Pow(rz, p.Shininess)
		}
	}

	intensity := p.Ambient + diffuse*p.DiffuseWeight
	highlight := specular * 255 * p.SpecularScale

	alpha := uint8(255)
	if edge := p.Radius - math.Sqrt(distSq); edge < 1.0 {
		alpha = clampByte(255 * edge)
	}

	return color.NRGBA{
		R: clampByte(float64(c.R)*intensity + highlight),
		G: clampByte(float64(c.G)*intensity + highlight),
		B: clampByte(float64(c.B)*intensity + highlight),
		A: alpha,
	}
}
