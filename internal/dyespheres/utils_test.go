package dyespheres

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(math.Inf(1)) || isFinite(math.NaN()) {
		t.Fatal("isFinite failed")
	}
}

func TestIMax(t *testing.T) {
	if imax(3, 5) != 5 || imax(5, 3) != 5 {
		t.Fatal("imax failed")
	}
}

func TestClampByte(t *testing.T) {
	cases := map[float64]uint8{
		-3.7:   0,
		0:      0,
		15.9:   15,
		76.5:   76,
		254.99: 254,
		255:    255,
		309.1:  255,
	}
	for in, want := range cases {
		if got := clampByte(in); got != want {
			t.Fatalf("clampByte(%g) = %d, want %d", in, got, want)
		}
	}
}
