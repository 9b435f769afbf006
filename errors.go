package texutil

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Errors returned by transforms. They are wrapped with context, so match
// them with errors.Is.
var (
	// ErrInvalidDimension is returned when a width or height is less than 1.
	ErrInvalidDimension = errors.New("texutil: invalid dimension")

	// ErrDimensionMismatch is returned when two images that must have the
	// same pixel count do not.
	ErrDimensionMismatch = errors.New("texutil: dimension mismatch")

	// ErrInvalidParameter is returned for parameters a transform cannot use,
	// such as a zero blend factor for a dividing blend mode or a non-finite value.
	ErrInvalidParameter = errors.New("texutil: invalid parameter")

	// ErrOutOfBounds is returned when a placement does not fit the destination.
	ErrOutOfBounds = errors.New("texutil: out of bounds")
)

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

func checkImage(name string, img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: %s image is nil", ErrInvalidParameter, name)
	}
	if len(img.levels) == 0 {
		return fmt.Errorf("%w: %s image has no levels", ErrInvalidParameter, name)
	}
	return nil
}

// checkFinite rejects NaN and infinities so they never reach pixel data.
func checkFinite(name string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func checkSamePixelCount(dst, src *Image) error {
	d, s := dst.Level(0), src.Level(0)
	if len(d.Pix) != len(s.Pix) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, d.Width, d.Height, s.Width, s.Height)
	}
	return nil
}

func (c Color) finite() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
