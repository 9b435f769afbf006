package texutil

import "testing"

// Test helper functions shared across texutil tests.

const eps = 1e-5

// newFilled creates a w x h image filled with c.
func newFilled(t *testing.T, w, h int, c Color, opts ...ImageOption) *Image {
	t.Helper()
	img, err := SolidColor(w, h, c, opts...)
	if err != nil {
		t.Fatalf("SolidColor(%d, %d): %v", w, h, err)
	}
	return img
}

// fromPixels creates an image from pix or fails the test.
func fromPixels(t *testing.T, w, h int, pix []Color, opts ...ImageOption) *Image {
	t.Helper()
	img, err := FromPixels(w, h, pix, opts...)
	if err != nil {
		t.Fatalf("FromPixels(%d, %d): %v", w, h, err)
	}
	return img
}

// colorApproxEqual compares two colors with tolerance.
func colorApproxEqual(a, b Color, tolerance float32) bool {
	return absf(a.R-b.R) <= tolerance &&
		absf(a.G-b.G) <= tolerance &&
		absf(a.B-b.B) <= tolerance &&
		absf(a.A-b.A) <= tolerance
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// assertPixels fails the test for every level 0 pixel that differs from want.
func assertPixels(t *testing.T, img *Image, want []Color, tolerance float32) {
	t.Helper()
	got := img.Pixels()
	if len(got) != len(want) {
		t.Fatalf("pixel count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !colorApproxEqual(got[i], want[i], tolerance) {
			t.Errorf("pixel (%d, %d) = %+v, want %+v", i%img.Width(), i/img.Width(), got[i], want[i])
		}
	}
}

// assertUniform fails the test unless every pixel of every level equals want.
func assertUniform(t *testing.T, img *Image, want Color, tolerance float32) {
	t.Helper()
	for li := 0; li < img.NumLevels(); li++ {
		for i, c := range img.Level(li).Pix {
			if !colorApproxEqual(c, want, tolerance) {
				t.Fatalf("level %d pixel %d = %+v, want %+v", li, i, c, want)
			}
		}
	}
}
