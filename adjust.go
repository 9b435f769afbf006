package texutil

import (
	"fmt"
)

// Color adjustments run on every mip level with identical parameters.
// "Clamped to [-1, 1]" bounds overflow; it does not saturate to [0, 1].

// Grayscale sets r, g and b to the luma of each pixel. Alpha is kept
// rather than reset to 1.
func Grayscale(img *Image) *Image {
	if img == nil {
		return nil
	}
	img.eachLevel(func(c Color) Color {
		v := clampf(c.Gray(), -1, 1)
		return Color{R: v, G: v, B: v, A: c.A}
	})
	logOp("grayscale", img)
	return img
}

// InvertOptions selects which channels Invert flips.
type InvertOptions struct {
	// Alpha inverts alpha together with the color channels.
	Alpha bool
	// AlphaOnly inverts alpha and leaves color alone. It takes
	// precedence over Alpha.
	AlphaOnly bool
}

// Invert replaces channels with 1-c according to opts.
func Invert(img *Image, opts InvertOptions) *Image {
	if img == nil {
		return nil
	}
	color := !opts.AlphaOnly
	alpha := opts.Alpha || opts.AlphaOnly
	img.eachLevel(func(c Color) Color {
		if color {
			c.R = 1 - c.R
			c.G = 1 - c.G
			c.B = 1 - c.B
		}
		if alpha {
			c.A = 1 - c.A
		}
		return c
	})
	logOp("invert", img, "alpha", opts.Alpha, "alpha_only", opts.AlphaOnly)
	return img
}

// AlphaToRGB copies alpha into r, g and b, visualising the alpha channel.
func AlphaToRGB(img *Image) *Image {
	if img == nil {
		return nil
	}
	img.eachLevel(func(c Color) Color {
		return Color{R: c.A, G: c.A, B: c.A, A: c.A}
	})
	logOp("alpha_to_rgb", img)
	return img
}

// Brightness adds delta to r, g and b, clamped to [-1, 1]. Fully
// transparent pixels are skipped.
func Brightness(img *Image, delta float32) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if err := checkFinite("brightness", delta); err != nil {
		return nil, err
	}
	img.eachLevel(func(c Color) Color {
		if c.A == 0 {
			return c
		}
		c.R = clampf(c.R+delta, -1, 1)
		c.G = clampf(c.G+delta, -1, 1)
		c.B = clampf(c.B+delta, -1, 1)
		return c
	})
	logOp("brightness", img, "delta", delta)
	return img, nil
}

// Contrast raises the strictly dominant channel of each pixel by delta.
// When no channel strictly dominates, every channel moves away from 0.5
// by delta: values <= 0.5 increase and values > 0.5 decrease. Results are
// clamped to [-1, 1].
func Contrast(img *Image, delta float32) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if err := checkFinite("contrast", delta); err != nil {
		return nil, err
	}
	push := func(v float32) float32 {
		if v <= 0.5 {
			return v + delta
		}
		return v - delta
	}
	img.eachLevel(func(c Color) Color {
		switch {
		case c.R > c.G && c.R > c.B:
			c.R += delta
		case c.G > c.R && c.G > c.B:
			c.G += delta
		case c.B > c.R && c.B > c.G:
			c.B += delta
		default:
			c.R, c.G, c.B = push(c.R), push(c.G), push(c.B)
		}
		c.R = clampf(c.R, -1, 1)
		c.G = clampf(c.G, -1, 1)
		c.B = clampf(c.B, -1, 1)
		return c
	})
	logOp("contrast", img, "delta", delta)
	return img, nil
}

// MinMax raises values below lo to lo and lowers values above hi to hi,
// for the selected channels only. Applying it twice equals applying it once.
func MinMax(img *Image, lo, hi float32, channels ChannelMask) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if err := checkFinite("min", lo); err != nil {
		return nil, err
	}
	if err := checkFinite("max", hi); err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: min %v greater than max %v", ErrInvalidParameter, lo, hi)
	}

	bound := func(v float32) float32 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	r, g, b, a := channels.Has(ChannelRed), channels.Has(ChannelGreen), channels.Has(ChannelBlue), channels.Has(ChannelAlpha)
	img.eachLevel(func(c Color) Color {
		if r {
			c.R = bound(c.R)
		}
		if g {
			c.G = bound(c.G)
		}
		if b {
			c.B = bound(c.B)
		}
		if a {
			c.A = bound(c.A)
		}
		return c
	})
	logOp("minmax", img, "min", lo, "max", hi, "channels", channels)
	return img, nil
}
