package texutil

import (
	"errors"
	"testing"
)

// labeled returns a w x h image whose pixel (x, y) has R=x, G=y.
func labeled(t *testing.T, w, h int, opts ...ImageOption) *Image {
	t.Helper()
	pix := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = RGBA(float32(x), float32(y), 0, 1)
		}
	}
	return fromPixels(t, w, h, pix, opts...)
}

func TestScaleBilinearIdentity(t *testing.T) {
	img := labeled(t, 5, 3)
	want := append([]Color(nil), img.Pixels()...)

	out, err := Scale(img, 5, 3, ScaleBilinear)
	if err != nil {
		t.Fatal(err)
	}
	assertPixels(t, out, want, 0)
}

func TestScaleBilinearCorners(t *testing.T) {
	img := labeled(t, 4, 4)
	out, err := Scale(img, 7, 7, ScaleBilinear)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want Color
	}{
		{0, 0, RGBA(0, 0, 0, 1)},
		{6, 0, RGBA(3, 0, 0, 1)},
		{6, 6, RGBA(3, 3, 0, 1)},
		{1, 1, RGBA(0.5, 0.5, 0, 1)},
		{3, 5, RGBA(1.5, 2.5, 0, 1)},
	}
	for _, tt := range tests {
		if got := out.PixelAt(tt.x, tt.y); !colorApproxEqual(got, tt.want, eps) {
			t.Errorf("PixelAt(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScaleBilinearToOnePixel(t *testing.T) {
	out, err := Scale(labeled(t, 4, 4), 1, 1, ScaleBilinear)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.PixelAt(0, 0); got != RGBA(0, 0, 0, 1) {
		t.Errorf("1x1 = %+v, want source (0, 0)", got)
	}
}

func TestScalePointCheckerboard(t *testing.T) {
	// Each 2x2 block has a distinct value at its top-left corner.
	w, h := 4, 4
	pix := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				pix[y*w+x] = White
			} else {
				pix[y*w+x] = Black
			}
		}
	}
	pix[0] = Red
	pix[2] = Green
	pix[8] = Blue
	pix[10] = Gray
	img := fromPixels(t, w, h, pix)

	out, err := Scale(img, 2, 2, ScalePoint)
	if err != nil {
		t.Fatal(err)
	}
	assertPixels(t, out, []Color{Red, Green, Blue, Gray}, 0)
}

func TestScalePointUpsample(t *testing.T) {
	img := fromPixels(t, 2, 1, []Color{Red, Blue})
	out, err := Scale(img, 4, 1, ScalePoint)
	if err != nil {
		t.Fatal(err)
	}
	// Source columns round(x/2) half to even: 0, 0, 1, 2 -> clamped to 1.
	assertPixels(t, out, []Color{Red, Red, Blue, Blue}, 0)
}

func TestScaleKeepsSourceAndProperties(t *testing.T) {
	img := newFilled(t, 8, 8, Red, WithMipmaps(), WithProperties(Properties{Name: "grass", Wrap: WrapClamp}))
	out, err := Scale(img, 3, 5, ScaleBilinear)
	if err != nil {
		t.Fatal(err)
	}
	if out == img {
		t.Fatal("Scale returned its input")
	}
	if img.Width() != 8 || img.Height() != 8 {
		t.Error("Scale modified the source")
	}
	if out.Width() != 3 || out.Height() != 5 {
		t.Errorf("size = %dx%d, want 3x5", out.Width(), out.Height())
	}
	if out.Properties() != img.Properties() {
		t.Errorf("properties = %+v, want %+v", out.Properties(), img.Properties())
	}
	if !out.HasMipmaps() {
		t.Error("mip chain dropped")
	}
	assertUniform(t, out, Red, eps)
}

func TestScaleErrors(t *testing.T) {
	img := newFilled(t, 2, 2, Red)
	tests := []struct {
		name string
		img  *Image
		w, h int
		mode ScaleMode
		want error
	}{
		{"zero width", img, 0, 2, ScaleBilinear, ErrInvalidDimension},
		{"negative height", img, 2, -1, ScalePoint, ErrInvalidDimension},
		{"nil image", nil, 2, 2, ScaleBilinear, ErrInvalidParameter},
		{"bad mode", img, 2, 2, ScaleMode(42), ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Scale(tt.img, tt.w, tt.h, tt.mode); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScaleLarge(t *testing.T) {
	// Enough rows to run on several workers.
	img := labeled(t, 64, 128)
	out, err := Scale(img, 64, 128, ScaleBilinear)
	if err != nil {
		t.Fatal(err)
	}
	assertPixels(t, out, img.Pixels(), 0)
}
