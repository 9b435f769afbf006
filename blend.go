package texutil

import (
	"fmt"
)

// BlendMode selects the per-channel formula used by Blend.
type BlendMode uint8

const (
	// BlendMultiply: dst = dst * src * factor.
	BlendMultiply BlendMode = iota
	// BlendScreen: dst = (1 - (1-src)*(1-dst)) / factor.
	BlendScreen
	// BlendOverlay: dst < 0.5 ? 2*src*dst/factor : 1 - 2*(1-src)*(1-dst)/factor.
	BlendOverlay
	// BlendOpacity: dst = (1-factor)*dst + factor*src.
	BlendOpacity
)

// String returns the name of the mode.
func (m BlendMode) String() string {
	switch m {
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendOpacity:
		return "opacity"
	default:
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
}

// Blend combines src into dst channel by channel and returns dst.
// Only r, g and b change; alpha is kept. Both images must have the same
// level 0 pixel count.
//
// Multiply, Screen and Overlay reject a zero factor. A factor that makes
// any result overflow to infinity is rejected before dst is written. Screen and Overlay
// divide by the factor, so values below 1 brighten rather than weaken
// the effect.
func Blend(dst, src *Image, mode BlendMode, factor float32) (*Image, error) {
	if err := checkImage("destination", dst); err != nil {
		return nil, err
	}
	if err := checkImage("blend", src); err != nil {
		return nil, err
	}
	if err := checkFinite("blend factor", factor); err != nil {
		return nil, err
	}
	if err := checkSamePixelCount(dst, src); err != nil {
		return nil, err
	}

	var fn func(d, s float32) float32
	switch mode {
	case BlendMultiply:
		fn = func(d, s float32) float32 { return d * s * factor }
	case BlendScreen:
		fn = func(d, s float32) float32 { return (1 - (1-s)*(1-d)) / factor }
	case BlendOverlay:
		fn = func(d, s float32) float32 {
			if d < 0.5 {
				return 2 * s * d / factor
			}
			return 1 - 2*(1-s)*(1-d)/factor
		}
	case BlendOpacity:
		fn = func(d, s float32) float32 { return (1-factor)*d + factor*s }
	default:
		return nil, fmt.Errorf("%w: blend mode %v", ErrInvalidParameter, mode)
	}
	if mode != BlendOpacity && factor == 0 {
		return nil, fmt.Errorf("%w: %v blend factor must not be zero", ErrInvalidParameter, mode)
	}

	d, s := dst.Pixels(), src.Pixels()
	out := make([]Color, len(d))
	for i := range d {
		c := Color{R: fn(d[i].R, s[i].R), G: fn(d[i].G, s[i].G), B: fn(d[i].B, s[i].B), A: d[i].A}
		if !c.finite() {
			return nil, fmt.Errorf("%w: %v blend factor %v overflows at pixel %d", ErrInvalidParameter, mode, factor, i)
		}
		out[i] = c
	}
	copy(d, out)

	dst.GenerateMipmaps()
	logOp("blend", dst, "mode", mode, "factor", factor)
	return dst, nil
}
