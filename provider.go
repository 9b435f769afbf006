package texutil

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ReadableImageProvider supplies a CPU-readable Image. Hosts implement it
// to convert GPU-resident, compressed or file-backed sources before any
// transform runs.
type ReadableImageProvider interface {
	ReadableImage(ctx context.Context) (*Image, error)
}

// StdImageProvider adapts an image.Image.
type StdImageProvider struct {
	Image   image.Image
	Options []ImageOption
}

// ReadableImage converts the wrapped image.
func (p StdImageProvider) ReadableImage(ctx context.Context) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Image == nil {
		return nil, fmt.Errorf("%w: std image is nil", ErrInvalidParameter)
	}
	return FromStdImage(p.Image, p.Options...)
}

// Load obtains an image from p and checks its invariants before it is
// handed to transforms.
func Load(ctx context.Context, p ReadableImageProvider) (*Image, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: provider is nil", ErrInvalidParameter)
	}
	img, err := p.ReadableImage(ctx)
	if err != nil {
		return nil, fmt.Errorf("texutil: load: %w", err)
	}
	if err := Validate(img); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate checks that every level is non-empty, dense and follows the
// mip size rule.
func Validate(img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: provided image is nil", ErrInvalidParameter)
	}
	if len(img.levels) == 0 {
		return fmt.Errorf("%w: image has no levels", ErrInvalidDimension)
	}
	for i, l := range img.levels {
		if err := checkDimensions(l.Width, l.Height); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
		if len(l.Pix) != l.Width*l.Height {
			return fmt.Errorf("%w: level %d has %d pixels for %dx%d",
				ErrDimensionMismatch, i, len(l.Pix), l.Width, l.Height)
		}
		if i > 0 {
			prev := img.levels[i-1]
			if l.Width != halve(prev.Width) || l.Height != halve(prev.Height) {
				return fmt.Errorf("%w: level %d is %dx%d after %dx%d",
					ErrDimensionMismatch, i, l.Width, l.Height, prev.Width, prev.Height)
			}
		}
	}
	return nil
}

// FromStdImage converts any image.Image into a new Image. Premultiplied
// sources are converted to straight alpha.
func FromStdImage(src image.Image, opts ...ImageOption) (*Image, error) {
	b := src.Bounds()
	if err := checkDimensions(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	n, ok := src.(*image.NRGBA64)
	if !ok || n.Rect.Min != (image.Point{}) {
		n = image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(n, n.Bounds(), src, b.Min, draw.Src)
	}

	o := applyImageOptions(opts)
	img := newImage(b.Dx(), b.Dy(), o.mipmaps, o.props)
	l := img.Level(0)
	for y := 0; y < l.Height; y++ {
		row := n.Pix[y*n.Stride:]
		for x := 0; x < l.Width; x++ {
			p := row[x*8 : x*8+8]
			l.Pix[y*l.Width+x] = Color{
				R: float32(uint16(p[0])<<8|uint16(p[1])) / 0xffff,
				G: float32(uint16(p[2])<<8|uint16(p[3])) / 0xffff,
				B: float32(uint16(p[4])<<8|uint16(p[5])) / 0xffff,
				A: float32(uint16(p[6])<<8|uint16(p[7])) / 0xffff,
			}
		}
	}
	img.GenerateMipmaps()
	return img, nil
}

// ToStdImage converts level 0 to a 16-bit straight-alpha image, clamping
// each channel to [0, 1].
func (img *Image) ToStdImage() *image.NRGBA64 {
	out := image.NewNRGBA64(img.Bounds())
	l := img.Level(0)
	if l == nil {
		return out
	}
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			out.SetNRGBA64(x, y, l.Pix[y*l.Width+x].StdColor())
		}
	}
	return out
}
