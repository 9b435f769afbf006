package texutil

import (
	"fmt"
	"math"

	"github.com/maxartz15/MA-Utils/internal/parallel"
)

// ScaleMode selects the resampling filter used by Scale.
type ScaleMode uint8

const (
	// ScaleBilinear interpolates the four surrounding source pixels.
	ScaleBilinear ScaleMode = iota
	// ScalePoint picks the nearest source pixel.
	ScalePoint
)

// String returns the name of the mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleBilinear:
		return "bilinear"
	case ScalePoint:
		return "point"
	default:
		return fmt.Sprintf("ScaleMode(%d)", uint8(m))
	}
}

// Scale resamples level 0 of img to width x height and returns a new image.
// The result carries img's properties and a regenerated mip chain if img
// had one. img is not modified.
//
// Bilinear sampling aligns the corner pixels: destination column x reads
// source coordinate x*(srcW-1)/(width-1), so scaling to the same size is
// the identity and the last column maps to the last column. A destination
// dimension of 1 reads index 0.
//
// Point sampling reads source row round(y*srcH/height) and column
// round(x*srcW/width), rounding half to even, clamped to the source.
func Scale(img *Image, width, height int, mode ScaleMode) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	out := newImage(width, height, img.HasMipmaps(), img.props)
	src := img.Level(0)
	dst := out.Level(0)

	switch mode {
	case ScaleBilinear:
		scaleBilinear(src, dst)
	case ScalePoint:
		scalePoint(src, dst)
	default:
		return nil, fmt.Errorf("%w: scale mode %v", ErrInvalidParameter, mode)
	}

	out.GenerateMipmaps()
	logOp("scale", img, "to_width", width, "to_height", height, "mode", mode)
	return out, nil
}

// cornerRatio maps destination indices onto [0, src-1].
func cornerRatio(src, dst int) float64 {
	if dst <= 1 {
		return 0
	}
	return float64(src-1) / float64(dst-1)
}

func scaleBilinear(src, dst *Level) {
	rx := cornerRatio(src.Width, dst.Width)
	ry := cornerRatio(src.Height, dst.Height)
	sw, sh := src.Width, src.Height

	parallel.Rows(dst.Height, func(y int) {
		fy := float64(y) * ry
		y0 := min(int(fy), sh-1)
		y1 := min(y0+1, sh-1)
		ty := float32(fy - float64(y0))
		row0 := src.Pix[y0*sw : (y0+1)*sw]
		row1 := src.Pix[y1*sw : (y1+1)*sw]
		out := dst.Pix[y*dst.Width : (y+1)*dst.Width]

		for x := range out {
			fx := float64(x) * rx
			x0 := min(int(fx), sw-1)
			x1 := min(x0+1, sw-1)
			tx := float32(fx - float64(x0))

			top := row0[x0].Lerp(row0[x1], tx)
			bottom := row1[x0].Lerp(row1[x1], tx)
			out[x] = top.Lerp(bottom, ty)
		}
	})
}

func scalePoint(src, dst *Level) {
	rx := float64(src.Width) / float64(dst.Width)
	ry := float64(src.Height) / float64(dst.Height)
	sw, sh := src.Width, src.Height

	parallel.Rows(dst.Height, func(y int) {
		offset := nearest(ry*float64(y), sh) * sw
		out := dst.Pix[y*dst.Width : (y+1)*dst.Width]
		for x := range out {
			out[x] = src.Pix[offset+nearest(rx*float64(x), sw)]
		}
	})
}

// nearest rounds v half to even and clamps it to [0, n-1].
func nearest(v float64, n int) int {
	i := int(math.RoundToEven(v))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
