package dyespheres

import (
	"math"
	"testing"
)

func TestVector3Basics(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{-2, 0.5, 4}
	if got := a.Add(b); got != (Vector3{-1, 2.5, 7}) {
		t.Fatalf("Add: %+v", got)
	}
	if got := a.Sub(b); got != (Vector3{3, 1.5, -1}) {
		t.Fatalf("Sub: %+v", got)
	}
	if got := a.Mul(2); got != (Vector3{2, 4, 6}) {
		t.Fatalf("Mul: %+v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Fatalf("Dot: %g", got)
	}
}

func TestVector3Norm(t *testing.T) {
	n := Vector3{3, 4, 12}.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Norm not unit: %.15g", n.Len())
	}
	if z := (Vector3{}).Norm(); z != (Vector3{}) {
		t.Fatalf("zero Norm changed: %+v", z)
	}
}

func TestVector3Reflect(t *testing.T) {
	n := Vector3{0, 0, 1}
	r := Vector3{1, 0, 1}.Norm().Reflect(n)
	want := Vector3{-1, 0, 1}.Norm()
	if r.Sub(want).Len() > 1e-12 {
		t.Fatalf("Reflect: got %+v want %+v", r, want)
	}
	// light straight along the normal comes back unchanged
	if r := n.Reflect(n); r != n {
		t.Fatalf("Reflect along normal: %+v", r)
	}
}
