package texutil

import (
	"fmt"
)

// ColorReplaceOptions configures ColorReplace.
type ColorReplaceOptions struct {
	// Select is the color to match.
	Select Color
	// New supplies the replacement value for each matched channel.
	New Color
	// RangeMin and RangeMax widen the match window around Select.
	// A channel matches when Select+RangeMin < v < Select+RangeMax.
	RangeMin, RangeMax float32
	// Channels selects which channels are tested and replaced.
	Channels ChannelMask
}

// DefaultColorReplaceOptions matches and replaces r, g and b.
func DefaultColorReplaceOptions(sel, repl Color) ColorReplaceOptions {
	return ColorReplaceOptions{Select: sel, New: repl, Channels: ChannelRGB}
}

// ColorReplace replaces each selected channel whose value lies strictly
// inside the window around the select color. Channels are matched
// independently of each other.
func ColorReplace(img *Image, opts ColorReplaceOptions) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if err := checkFinite("range min", opts.RangeMin); err != nil {
		return nil, err
	}
	if err := checkFinite("range max", opts.RangeMax); err != nil {
		return nil, err
	}
	if opts.RangeMin > opts.RangeMax {
		return nil, fmt.Errorf("%w: range min %v greater than range max %v",
			ErrInvalidParameter, opts.RangeMin, opts.RangeMax)
	}

	sel, repl := opts.Select, opts.New
	lo, hi := opts.RangeMin, opts.RangeMax
	match := func(v, s float32) bool {
		return v > s+lo && v < s+hi
	}
	ch := opts.Channels

	img.eachLevel(func(c Color) Color {
		if ch.Has(ChannelRed) && match(c.R, sel.R) {
			c.R = repl.R
		}
		if ch.Has(ChannelGreen) && match(c.G, sel.G) {
			c.G = repl.G
		}
		if ch.Has(ChannelBlue) && match(c.B, sel.B) {
			c.B = repl.B
		}
		if ch.Has(ChannelAlpha) && match(c.A, sel.A) {
			c.A = repl.A
		}
		return c
	})
	logOp("color_replace", img, "range_min", lo, "range_max", hi, "channels", ch)
	return img, nil
}

// HSVBand is the tolerance window of one HSV component.
type HSVBand struct {
	Enabled  bool
	Min, Max float32
}

// HSVReplaceOptions configures ColorReplaceHSV.
type HSVReplaceOptions struct {
	Select Color
	New    Color

	Hue        HSVBand
	Saturation HSVBand
	Value      HSVBand
}

// ColorReplaceHSV remaps pixels toward New in HSV space.
//
// For each enabled band, with s the select component and v the pixel
// component: when v <= s+Min the pixel becomes New with that component
// offset by v-(s+Min); when v >= s+Max it becomes New offset by
// (s+Max)-v. Bands are evaluated hue, saturation, value; a later match
// overrides an earlier one. Pixel alpha is kept.
func ColorReplaceHSV(img *Image, opts HSVReplaceOptions) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	bands := []struct {
		name string
		band HSVBand
	}{
		{"hue", opts.Hue},
		{"saturation", opts.Saturation},
		{"value", opts.Value},
	}
	for _, b := range bands {
		if err := checkFinite(b.name+" min", b.band.Min); err != nil {
			return nil, err
		}
		if err := checkFinite(b.name+" max", b.band.Max); err != nil {
			return nil, err
		}
		if b.band.Min > b.band.Max {
			return nil, fmt.Errorf("%w: %s min %v greater than max %v",
				ErrInvalidParameter, b.name, b.band.Min, b.band.Max)
		}
	}

	nh, ns, nv := opts.New.HSV()
	sh, ss, sv := opts.Select.HSV()

	// offset returns the signed distance past the band edge, or ok=false
	// when v lies strictly inside the band.
	offset := func(v, sel float32, b HSVBand) (float32, bool) {
		if v <= sel+b.Min {
			return v - (sel + b.Min), true
		}
		if v >= sel+b.Max {
			return (sel + b.Max) - v, true
		}
		return 0, false
	}

	img.eachLevel(func(c Color) Color {
		h, s, v := c.HSV()
		out := c
		if opts.Hue.Enabled {
			if d, ok := offset(h, sh, opts.Hue); ok {
				out = HSVToRGB(nh+d, ns, nv)
			}
		}
		if opts.Saturation.Enabled {
			if d, ok := offset(s, ss, opts.Saturation); ok {
				out = HSVToRGB(nh, ns+d, nv)
			}
		}
		if opts.Value.Enabled {
			if d, ok := offset(v, sv, opts.Value); ok {
				out = HSVToRGB(nh, ns, nv+d)
			}
		}
		out.A = c.A
		return out
	})
	logOp("color_replace_hsv", img,
		"hue", opts.Hue.Enabled, "saturation", opts.Saturation.Enabled, "value", opts.Value.Enabled)
	return img, nil
}
