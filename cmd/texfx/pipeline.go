package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	texutil "github.com/maxartz15/MA-Utils"
	"github.com/maxartz15/MA-Utils/texio"
)

var errSyntax = errors.New("texfx: bad step")

var (
	stepRegex = regexp2.MustCompile(`^\s*(?<name>[A-Za-z][\w]*)\s*(?:\((?<args>.*)\))?\s*$`, regexp2.Singleline)
	argRegex  = regexp2.MustCompile(`(?<key>[A-Za-z][\w]*)\s*=\s*(?:"(?<quoted>(?:[^"\\]|\\.)*)"|(?<bare>[^,\s"]+))`, 0)
	unquote   = strings.NewReplacer(`\"`, `"`, `\\`, `\`)
)

// step is one parsed pipeline stage, e.g. blur(radius=4, iterations=2).
type step struct {
	Name string
	Args map[string]string
}

func (s step) String() string {
	return s.Name
}

// parseStep parses name or name(key=value, ...). Values may be bare or
// double-quoted with backslash escapes. Keys are case-insensitive.
func parseStep(s string) (step, error) {
	m, err := stepRegex.FindStringMatch(s)
	if err != nil {
		return step{}, fmt.Errorf("%w %q: %w", errSyntax, s, err)
	}
	if m == nil {
		return step{}, fmt.Errorf("%w %q", errSyntax, s)
	}
	st := step{
		Name: strings.ToLower(m.GroupByName("name").String()),
		Args: map[string]string{},
	}

	// regexp2 reports positions in runes.
	args := m.GroupByName("args").String()
	runes := []rune(args)
	pos := 0
	am, err := argRegex.FindStringMatch(args)
	for ; am != nil && err == nil; am, err = argRegex.FindNextMatch(am) {
		if gap := string(runes[pos:am.Index]); strings.Trim(gap, ", \t") != "" {
			return step{}, fmt.Errorf("%w %q: unexpected %q", errSyntax, s, gap)
		}
		key := strings.ToLower(am.GroupByName("key").String())
		if _, dup := st.Args[key]; dup {
			return step{}, fmt.Errorf("%w %q: duplicate argument %q", errSyntax, s, key)
		}
		if q := am.GroupByName("quoted"); len(q.Captures) > 0 {
			st.Args[key] = unquote.Replace(q.String())
		} else {
			st.Args[key] = am.GroupByName("bare").String()
		}
		pos = am.Index + am.Length
	}
	if err != nil {
		return step{}, fmt.Errorf("%w %q: %w", errSyntax, s, err)
	}
	if rest := string(runes[pos:]); strings.Trim(rest, ", \t") != "" {
		return step{}, fmt.Errorf("%w %q: unexpected %q", errSyntax, s, rest)
	}
	return st, nil
}

// argReader reads typed arguments of a step, keeping the first error.
type argReader struct {
	st   step
	used map[string]bool
	err  error
}

func newArgReader(st step) *argReader {
	return &argReader{st: st, used: map[string]bool{}}
}

func (r *argReader) raw(key string) (string, bool) {
	r.used[key] = true
	v, ok := r.st.Args[key]
	return v, ok
}

func (r *argReader) fail(key, v string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: argument %s=%q: %w", r.st.Name, key, v, err)
	}
}

func (r *argReader) float(key string, def float32) float32 {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return float32(f)
}

func (r *argReader) integer(key string, def int) int {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *argReader) boolean(key string, def bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}

func (r *argReader) text(key, def string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return def
}

func (r *argReader) has(key string) bool {
	_, ok := r.st.Args[key]
	return ok
}

func (r *argReader) color(key string, def texutil.Color) texutil.Color {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	c, err := texutil.ParseHex(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return c
}

func (r *argReader) channels(key string, def texutil.ChannelMask) texutil.ChannelMask {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	m, err := texutil.ParseChannelMask(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return m
}

// done reports the first parse error or an argument the step does not take.
func (r *argReader) done() error {
	if r.err != nil {
		return r.err
	}
	for key := range r.st.Args {
		if !r.used[key] {
			return fmt.Errorf("%s: unknown argument %q", r.st.Name, key)
		}
	}
	return nil
}

// runner applies pipeline steps to an image.
type runner struct {
	ctx  context.Context
	opts []texutil.ImageOption
}

func (p *runner) load(path string) (*texutil.Image, error) {
	return texutil.Load(p.ctx, texio.FileProvider{Path: path, Options: p.opts})
}

// apply runs st on img and returns the resulting image, which may be a new
// one. Generators ignore img; every other step requires it.
func (p *runner) apply(img *texutil.Image, st step) (*texutil.Image, error) {
	a := newArgReader(st)

	switch st.Name {
	case "solid":
		w, h := a.integer("w", 256), a.integer("h", 256)
		c := a.color("color", texutil.White)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.SolidColor(w, h, c, p.opts...)
	case "noise":
		w, h := a.integer("w", 256), a.integer("h", 256)
		n := texutil.DefaultNoiseOptions()
		n.Scale = a.float("scale", n.Scale)
		n.OffsetX = a.float("x", 0)
		n.OffsetY = a.float("y", 0)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.PerlinNoise(w, h, n, p.opts...)
	}

	if img == nil {
		return nil, fmt.Errorf("%s: no input image; pass -in or start with a generator", st.Name)
	}

	switch st.Name {
	case "grayscale":
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Grayscale(img), nil
	case "invert":
		o := texutil.InvertOptions{Alpha: a.boolean("alpha", false), AlphaOnly: a.boolean("alphaonly", false)}
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Invert(img, o), nil
	case "alphatorgb":
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.AlphaToRGB(img), nil
	case "brightness":
		d := a.float("delta", 0)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Brightness(img, d)
	case "contrast":
		d := a.float("delta", 0)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Contrast(img, d)
	case "minmax":
		lo, hi := a.float("min", 0), a.float("max", 1)
		ch := a.channels("channels", texutil.ChannelRGB)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.MinMax(img, lo, hi, ch)
	case "replace":
		o := texutil.DefaultColorReplaceOptions(a.color("select", texutil.Black), a.color("new", texutil.White))
		o.RangeMin = a.float("min", -0.01)
		o.RangeMax = a.float("max", 0.01)
		o.Channels = a.channels("channels", o.Channels)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.ColorReplace(img, o)
	case "hsvreplace":
		o := texutil.HSVReplaceOptions{
			Select:     a.color("select", texutil.Black),
			New:        a.color("new", texutil.White),
			Hue:        a.band("h"),
			Saturation: a.band("s"),
			Value:      a.band("v"),
		}
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.ColorReplaceHSV(img, o)
	case "scale":
		w, h := a.integer("w", img.Width()), a.integer("h", img.Height())
		mode := texutil.ScaleBilinear
		switch m := a.text("mode", "bilinear"); m {
		case "bilinear":
		case "point":
			mode = texutil.ScalePoint
		default:
			a.fail("mode", m, texutil.ErrInvalidParameter)
		}
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Scale(img, w, h, mode)
	case "tile":
		n := a.integer("count", 2)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Tile(img, n)
	case "blur":
		radius, it := a.integer("radius", 2), a.integer("iterations", 1)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.BoxBlur(img, radius, it)
	case "normal":
		o := texutil.DefaultNormalOptions()
		o.Intensity = a.float("intensity", o.Intensity)
		o.InvertHeight = a.boolean("invert", o.InvertHeight)
		o.SwapRG = a.boolean("swap", o.SwapRG)
		if err := a.done(); err != nil {
			return nil, err
		}
		return texutil.Normal(img, o)
	case "blend":
		mode, err := parseBlendMode(a.text("mode", "multiply"))
		if err != nil {
			a.fail("mode", st.Args["mode"], err)
		}
		factor := a.float("factor", 1)
		other, err := p.other(a)
		if err != nil {
			return nil, err
		}
		return texutil.Blend(img, other, mode, factor)
	case "mask":
		gray := a.boolean("gray", false)
		other, err := p.other(a)
		if err != nil {
			return nil, err
		}
		return texutil.Mask(img, other, gray)
	case "combine":
		x, y, flip := a.integer("x", 0), a.integer("y", 0), a.boolean("flip", false)
		other, err := p.other(a)
		if err != nil {
			return nil, err
		}
		return texutil.Combine(img, other, x, y, flip)
	case "name":
		props := img.Properties()
		props.Name = a.text("value", props.Name)
		if err := a.done(); err != nil {
			return nil, err
		}
		img.SetProperties(props)
		return img, nil
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", errSyntax, st.Name)
	}
}

// other loads the file= argument of a two-image step.
func (p *runner) other(a *argReader) (*texutil.Image, error) {
	path, ok := a.raw("file")
	if err := a.done(); err != nil {
		return nil, err
	}
	if !ok || path == "" {
		return nil, fmt.Errorf("%s: missing file argument", a.st.Name)
	}
	return p.load(path)
}

// band reads <prefix>min and <prefix>max; the band is enabled when
// either is present.
func (r *argReader) band(prefix string) texutil.HSVBand {
	minKey, maxKey := prefix+"min", prefix+"max"
	b := texutil.HSVBand{Enabled: r.has(minKey) || r.has(maxKey)}
	b.Min = r.float(minKey, 0)
	b.Max = r.float(maxKey, 0)
	return b
}

func parseBlendMode(s string) (texutil.BlendMode, error) {
	for _, m := range []texutil.BlendMode{
		texutil.BlendMultiply, texutil.BlendScreen, texutil.BlendOverlay, texutil.BlendOpacity,
	} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: blend mode %q", texutil.ErrInvalidParameter, s)
}
