package texutil

import (
	"errors"
	"math"
	"testing"
)

var flatNormal = RGBA(0.5, 0.5, 1, 1)

func TestNormalFlat(t *testing.T) {
	for _, opts := range []NormalOptions{
		DefaultNormalOptions(),
		{Intensity: 4},
		{Intensity: 1, InvertHeight: true},
	} {
		img := newFilled(t, 8, 8, RGBA(0.3, 0.3, 0.3, 0.2), WithMipmaps())
		if _, err := Normal(img, opts); err != nil {
			t.Fatal(err)
		}
		assertUniform(t, img, flatNormal, eps)
	}
}

func TestNormalSlope(t *testing.T) {
	// Height rises left to right; the middle pixel sees left=0, right=1.
	s := float32(0.5 + 0.5/math.Sqrt2)
	tests := []struct {
		name string
		opts NormalOptions
		want Color
	}{
		{"plain", NormalOptions{Intensity: 1}, RGBA(0.5, s, s, 1)},
		{"swap", NormalOptions{Intensity: 1, SwapRG: true}, RGBA(s, 0.5, s, 1)},
		{"inverted", NormalOptions{Intensity: 1, InvertHeight: true}, RGBA(0.5, 1-s, s, 1)},
		{"zero intensity", NormalOptions{}, flatNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := fromPixels(t, 3, 1, []Color{RGB(0, 0, 0), RGB(0.5, 0.5, 0.5), RGB(1, 1, 1)})
			if _, err := Normal(img, tt.opts); err != nil {
				t.Fatal(err)
			}
			if got := img.PixelAt(1, 0); !colorApproxEqual(got, tt.want, 1e-5) {
				t.Errorf("middle = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalWrapsAtEdges(t *testing.T) {
	// With wrapping, the left and right neighbors of a 2-wide image are the
	// same pixel, as are the up and down neighbors.
	img := fromPixels(t, 2, 2, []Color{White, Black, Black, White})
	if _, err := Normal(img, NormalOptions{Intensity: 1}); err != nil {
		t.Fatal(err)
	}
	assertUniform(t, img, flatNormal, eps)
}

func TestNormalUnitLength(t *testing.T) {
	img, err := PerlinNoise(32, 32, DefaultNoiseOptions())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Normal(img, NormalOptions{Intensity: 3}); err != nil {
		t.Fatal(err)
	}
	for i, c := range img.Pixels() {
		x, y, z := 2*c.R-1, 2*c.G-1, 2*c.B-1
		if l := x*x + y*y + z*z; absf(l-1) > 1e-4 || z <= 0 {
			t.Fatalf("pixel %d decodes to (%v, %v, %v), |n|^2 = %v", i, x, y, z, l)
		}
	}
}

func TestNormalHugeIntensity(t *testing.T) {
	img := fromPixels(t, 3, 1, []Color{Black, White, Black})
	if _, err := Normal(img, NormalOptions{Intensity: 3e38}); err != nil {
		t.Fatal(err)
	}
	for i, c := range img.Pixels() {
		x, y, z := 2*c.R-1, 2*c.G-1, 2*c.B-1
		if l := x*x + y*y + z*z; absf(l-1) > 1e-4 || z < 0 {
			t.Errorf("pixel %d decodes to (%v, %v, %v), |n|^2 = %v", i, x, y, z, l)
		}
	}
	// Steepest slope: the normal lies in the surface plane.
	if got := img.PixelAt(0, 0); !colorApproxEqual(got, RGBA(0.5, 1, 0.5, 1), 1e-5) {
		t.Errorf("left edge = %+v, want (0.5, 1, 0.5, 1)", got)
	}
}

func TestNormalErrors(t *testing.T) {
	if _, err := Normal(nil, DefaultNormalOptions()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("nil image error = %v", err)
	}
	_, err := Normal(newFilled(t, 2, 2, Gray), NormalOptions{Intensity: float32(math.Inf(-1))})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("infinite intensity error = %v", err)
	}
}
