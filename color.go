package texutil

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
)

// Color is a linear RGBA color with float32 components.
// Components are conventionally in [0, 1] but are never clamped implicitly.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from all four components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
	Gray  = RGB(0.5, 0.5, 0.5)
	Clear = RGBA(0, 0, 0, 0)
)

// Luma weights (ITU-R BT.601), the same weighting the host engine uses
// for its grayscale value.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Gray returns the perceptual luma of the color.
func (c Color) Gray() float32 {
	return lumaR*c.R + lumaG*c.G + lumaB*c.B
}

// Lerp interpolates between c and other without clamping t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// StdColor converts c to a 16-bit non-premultiplied color, clamping to [0, 1].
func (c Color) StdColor() color.NRGBA64 {
	return color.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(c.A),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.StdColor().RGBA()
}

// FromStdColor converts any color.Color to a non-premultiplied Color.
func FromStdColor(c color.Color) Color {
	n, ok := c.(color.NRGBA64)
	if !ok {
		n = color.NRGBA64Model.Convert(c).(color.NRGBA64)
	}
	return Color{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

func to16(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}

// Hex creates a color from a hex string, like ParseHex, but returns
// opaque black instead of an error for input ParseHex rejects.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without
// a leading '#'. Other lengths and non-hex digits return an error wrapping
// ErrInvalidParameter.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var digits [8]uint32
	for i := 0; i < len(s) && i < len(digits); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: bad hex digit %q in color %q", ErrInvalidParameter, s[i], hex)
		}
		digits[i] = d
	}

	var r, g, b, a uint32
	switch len(s) {
	case 3:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, 255
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b, a = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], 255
	case 8:
		r, g, b, a = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], digits[6]<<4|digits[7]
	default:
		return Color{}, fmt.Errorf("%w: hex color %q must have 3, 4, 6 or 8 digits", ErrInvalidParameter, hex)
	}

	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

// HSV returns hue, saturation and value, each in [0, 1].
func (c Color) HSV() (h, s, v float32) {
	switch {
	case c.B > c.G && c.B > c.R:
		return hsvFromDominant(4, c.B, c.R, c.G)
	case c.G > c.R:
		return hsvFromDominant(2, c.G, c.B, c.R)
	default:
		return hsvFromDominant(0, c.R, c.G, c.B)
	}
}

// hsvFromDominant computes HSV given the dominant channel and the two
// others in hue order. offset selects the hue sextant pair (0, 2 or 4).
func hsvFromDominant(offset, dominant, c1, c2 float32) (h, s, v float32) {
	v = dominant
	if v == 0 {
		return 0, 0, 0
	}
	small := math32.Min(c1, c2)
	diff := v - small
	if diff != 0 {
		s = diff / v
		h = offset + (c1-c2)/diff
	} else {
		h = offset + (c1 - c2)
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h, s, v
}

// HSVToRGB converts hue, saturation and value to an opaque color.
// Hue wraps into [0, 1); saturation and value are clamped to [0, 1].
func HSVToRGB(h, s, v float32) Color {
	h = wrap01(h)
	s = clampf(s, 0, 1)
	v = clampf(v, 0, 1)

	if s == 0 {
		return RGB(v, v, v)
	}
	if v == 0 {
		return Black
	}

	hd := h * 6
	sector := math32.Floor(hd)
	f := hd - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) {
	case 0:
		return RGB(v, t, p)
	case 1:
		return RGB(q, v, p)
	case 2:
		return RGB(p, v, t)
	case 3:
		return RGB(p, q, v)
	case 4:
		return RGB(t, p, v)
	default:
		return RGB(v, p, q)
	}
}

func wrap01(x float32) float32 {
	x = math32.Mod(x, 1)
	if x < 0 {
		x++
	}
	if x >= 1 {
		x = 0
	}
	return x
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
