package texutil

import (
	"fmt"
)

// Combine pastes src onto dst with its top-left corner at (offsetX, offsetY)
// and returns dst. Pixels are overwritten, alpha included; there is no
// blending.
//
// With flipY the source rows are written bottom-up: source row y lands on
// destination row dst.Height()-1-offsetY-y. This converts between a
// top-left and a bottom-left image origin.
//
// The source must fit inside dst at the offset; otherwise Combine returns
// ErrOutOfBounds and dst is left untouched.
func Combine(dst, src *Image, offsetX, offsetY int, flipY bool) (*Image, error) {
	if err := checkImage("destination", dst); err != nil {
		return nil, err
	}
	if err := checkImage("source", src); err != nil {
		return nil, err
	}

	d, s := dst.Level(0), src.Level(0)
	if offsetX < 0 || offsetY < 0 || offsetX+s.Width > d.Width || offsetY+s.Height > d.Height {
		return nil, fmt.Errorf("%w: %dx%d at (%d, %d) in %dx%d",
			ErrOutOfBounds, s.Width, s.Height, offsetX, offsetY, d.Width, d.Height)
	}

	for y := 0; y < s.Height; y++ {
		dy := offsetY + y
		if flipY {
			dy = d.Height - 1 - offsetY - y
		}
		copy(d.Pix[dy*d.Width+offsetX:dy*d.Width+offsetX+s.Width], s.Pix[y*s.Width:(y+1)*s.Width])
	}

	dst.GenerateMipmaps()
	logOp("combine", dst, "offset_x", offsetX, "offset_y", offsetY, "flip_y", flipY)
	return dst, nil
}

// Mask replaces the alpha of dst with the alpha of mask, or with the luma
// of mask when grayscaleAlpha is set. Color channels are untouched and
// dst is marked AlphaIsTransparency. Both images must have the same
// level 0 pixel count.
func Mask(dst, mask *Image, grayscaleAlpha bool) (*Image, error) {
	if err := checkImage("destination", dst); err != nil {
		return nil, err
	}
	if err := checkImage("mask", mask); err != nil {
		return nil, err
	}
	if err := checkSamePixelCount(dst, mask); err != nil {
		return nil, err
	}

	d, m := dst.Pixels(), mask.Pixels()
	for i := range d {
		if grayscaleAlpha {
			d[i].A = m[i].Gray()
		} else {
			d[i].A = m[i].A
		}
	}

	dst.props.AlphaIsTransparency = true
	dst.GenerateMipmaps()
	logOp("mask", dst, "grayscale_alpha", grayscaleAlpha)
	return dst, nil
}

// Tile shrinks level 0 by count with point sampling and repeats the
// shrunken copy count x count times across the image, in place.
// Columns and rows left over when the size is not divisible by count
// continue the repetition. count == 1 leaves the image unchanged.
func Tile(img *Image, count int) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: tile count %d", ErrInvalidParameter, count)
	}
	if count == 1 {
		return img, nil
	}

	l := img.Level(0)
	small := newLevel(max(1, l.Width/count), max(1, l.Height/count))
	scalePoint(l, &small)

	for y := 0; y < l.Height; y++ {
		srow := small.Pix[(y%small.Height)*small.Width : (y%small.Height+1)*small.Width]
		for x := 0; x < l.Width; x++ {
			l.Pix[y*l.Width+x] = srow[x%small.Width]
		}
	}

	img.GenerateMipmaps()
	logOp("tile", img, "count", count)
	return img, nil
}
