package texutil

import (
	"fmt"
	"image"
	"image/color"
)

// Level is one mip level: a dense row-major grid of pixels.
// len(Pix) is always Width*Height.
type Level struct {
	Width  int
	Height int
	Pix    []Color
}

func newLevel(width, height int) Level {
	return Level{Width: width, Height: height, Pix: make([]Color, width*height)}
}

// Index returns the offset of pixel (x, y) in Pix.
func (l *Level) Index(x, y int) int {
	return y*l.Width + x
}

// At returns the pixel at (x, y), or Clear outside the level.
func (l *Level) At(x, y int) Color {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return Clear
	}
	return l.Pix[y*l.Width+x]
}

// Set writes the pixel at (x, y). Writes outside the level are ignored.
func (l *Level) Set(x, y int, c Color) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	l.Pix[y*l.Width+x] = c
}

// Image is an RGBA float image with optional mip levels.
// Level 0 is full resolution; level k is ceil(W/2^k) x ceil(H/2^k).
//
// Image is not safe for concurrent mutation. Transforms never keep a
// reference to an Image after they return.
type Image struct {
	levels []Level
	props  Properties
}

// NewImage allocates a zeroed (transparent black) image.
func NewImage(width, height int, opts ...ImageOption) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	o := applyImageOptions(opts)
	return newImage(width, height, o.mipmaps, o.props), nil
}

func newImage(width, height int, mipmaps bool, props Properties) *Image {
	img := &Image{props: props}
	img.levels = append(img.levels, newLevel(width, height))
	if mipmaps {
		w, h := width, height
		for w > 1 || h > 1 {
			w, h = halve(w), halve(h)
			img.levels = append(img.levels, newLevel(w, h))
		}
	}
	return img
}

// FromPixels creates an image whose level 0 is a copy of pix.
// With WithMipmaps the remaining levels are generated from it.
func FromPixels(width, height int, pix []Color, opts ...ImageOption) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrDimensionMismatch, len(pix), width, height)
	}
	o := applyImageOptions(opts)
	img := newImage(width, height, o.mipmaps, o.props)
	copy(img.levels[0].Pix, pix)
	img.GenerateMipmaps()
	return img, nil
}

func halve(n int) int {
	return (n + 1) / 2
}

// Width returns the width of level 0, or 0 for an image without levels.
func (img *Image) Width() int {
	if len(img.levels) == 0 {
		return 0
	}
	return img.levels[0].Width
}

// Height returns the height of level 0, or 0 for an image without levels.
func (img *Image) Height() int {
	if len(img.levels) == 0 {
		return 0
	}
	return img.levels[0].Height
}

// NumLevels returns the number of mip levels, at least 1.
func (img *Image) NumLevels() int {
	return len(img.levels)
}

// HasMipmaps reports whether the image carries levels beyond level 0.
func (img *Image) HasMipmaps() bool {
	return len(img.levels) > 1
}

// Level returns mip level n, or nil if n is out of range.
// The returned Level aliases the image storage.
func (img *Image) Level(n int) *Level {
	if n < 0 || n >= len(img.levels) {
		return nil
	}
	return &img.levels[n]
}

// Pixels returns the level 0 pixels. The slice aliases the image storage.
func (img *Image) Pixels() []Color {
	if len(img.levels) == 0 {
		return nil
	}
	return img.levels[0].Pix
}

// PixelAt returns the level 0 pixel at (x, y), or Clear outside the image.
func (img *Image) PixelAt(x, y int) Color {
	if len(img.levels) == 0 {
		return Clear
	}
	return img.levels[0].At(x, y)
}

// SetPixel writes a level 0 pixel. Writes outside the image are ignored.
func (img *Image) SetPixel(x, y int, c Color) {
	if len(img.levels) > 0 {
		img.levels[0].Set(x, y, c)
	}
}

// Properties returns the host metadata of the image.
func (img *Image) Properties() Properties {
	return img.props
}

// SetProperties replaces the host metadata of the image.
func (img *Image) SetProperties(p Properties) {
	img.props = p
}

// Clone returns a deep copy of the image, all levels included.
func (img *Image) Clone() *Image {
	c := &Image{
		levels: make([]Level, len(img.levels)),
		props:  img.props,
	}
	for i, l := range img.levels {
		c.levels[i] = Level{Width: l.Width, Height: l.Height, Pix: make([]Color, len(l.Pix))}
		copy(c.levels[i].Pix, l.Pix)
	}
	return c
}

// GenerateMipmaps rebuilds levels 1..n from level 0 with a 2x2 box filter.
// Odd edges reuse the last row or column. It is a no-op without mip levels.
func (img *Image) GenerateMipmaps() {
	for i := 1; i < len(img.levels); i++ {
		downsample(&img.levels[i-1], &img.levels[i])
	}
}

func downsample(src, dst *Level) {
	for dy := 0; dy < dst.Height; dy++ {
		sy0 := min(dy*2, src.Height-1)
		sy1 := min(dy*2+1, src.Height-1)
		for dx := 0; dx < dst.Width; dx++ {
			sx0 := min(dx*2, src.Width-1)
			sx1 := min(dx*2+1, src.Width-1)

			c0 := src.Pix[sy0*src.Width+sx0]
			c1 := src.Pix[sy0*src.Width+sx1]
			c2 := src.Pix[sy1*src.Width+sx0]
			c3 := src.Pix[sy1*src.Width+sx1]

			dst.Pix[dy*dst.Width+dx] = Color{
				R: (c0.R + c1.R + c2.R + c3.R) / 4,
				G: (c0.G + c1.G + c2.G + c3.G) / 4,
				B: (c0.B + c1.B + c2.B + c3.B) / 4,
				A: (c0.A + c1.A + c2.A + c3.A) / 4,
			}
		}
	}
}

// eachLevel applies fn to every pixel of every level.
func (img *Image) eachLevel(fn func(c Color) Color) {
	for li := range img.levels {
		pix := img.levels[li].Pix
		for i, c := range pix {
			pix[i] = fn(c)
		}
	}
}

// At implements image.Image over level 0.
func (img *Image) At(x, y int) color.Color {
	return img.PixelAt(x, y)
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	return color.NRGBA64Model
}
