package texutil

import (
	"fmt"

	"github.com/maxartz15/MA-Utils/internal/parallel"
)

// BoxBlur averages r, g and b over a square window centred on each pixel,
// iterations times, in place on level 0. The window spans
// [-radius/2, radius/2] with integer division, so its side is
// 2*(radius/2)+1; radius 0 and 1 leave the image unchanged. Samples past
// the edge repeat the edge pixel. Alpha is kept.
//
// Every iteration reads a frozen copy of the previous result, so the
// output does not depend on the order pixels are visited in.
func BoxBlur(img *Image, radius, iterations int) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: blur radius %d", ErrInvalidParameter, radius)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: blur iterations %d", ErrInvalidParameter, iterations)
	}

	half := radius / 2
	if half == 0 || iterations == 0 {
		return img, nil
	}

	l := img.Level(0)
	w, h := l.Width, l.Height
	src := make([]Color, len(l.Pix))
	side := 2*half + 1
	inv := 1 / float32(side*side)

	for it := 0; it < iterations; it++ {
		copy(src, l.Pix)
		parallel.Rows(h, func(y int) {
			for x := 0; x < w; x++ {
				var r, g, b float32
				for ry := -half; ry <= half; ry++ {
					row := clampInt(y+ry, 0, h-1) * w
					for rx := -half; rx <= half; rx++ {
						c := src[row+clampInt(x+rx, 0, w-1)]
						r += c.R
						g += c.G
						b += c.B
					}
				}
				i := y*w + x
				l.Pix[i] = Color{R: r * inv, G: g * inv, B: b * inv, A: src[i].A}
			}
		})
	}

	img.GenerateMipmaps()
	logOp("box_blur", img, "radius", radius, "iterations", iterations)
	return img, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
