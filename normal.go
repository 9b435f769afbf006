package texutil

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/maxartz15/MA-Utils/internal/parallel"
)

// NormalOptions configures Normal.
type NormalOptions struct {
	// Intensity scales the height differences. Larger values give
	// steeper normals.
	Intensity float32
	// InvertHeight converts the source to grayscale and inverts it first,
	// for height maps where dark means high.
	InvertHeight bool
	// SwapRG exchanges the red and green channels of the result to match
	// the tangent-space convention of the host engine.
	SwapRG bool
}

// DefaultNormalOptions returns intensity 1 with the red/green swap enabled.
func DefaultNormalOptions() NormalOptions {
	return NormalOptions{Intensity: 1, SwapRG: true}
}

var halfOne = mgl64.Vec3{1, 1, 1}

// Normal converts a height map in level 0 to a tangent-space normal map,
// in place. Heights are the luma of each pixel; edges wrap around, so the
// result tiles seamlessly. Each normal n is stored as (n+1)/2 in r, g, b
// with alpha 1. A flat input yields (0.5, 0.5, 1).
func Normal(img *Image, opts NormalOptions) (*Image, error) {
	if err := checkImage("source", img); err != nil {
		return nil, err
	}
	if err := checkFinite("intensity", opts.Intensity); err != nil {
		return nil, err
	}

	if opts.InvertHeight {
		Invert(Grayscale(img), InvertOptions{})
	}

	l := img.Level(0)
	w, h := l.Width, l.Height
	heights := make([]float64, len(l.Pix))
	for i, c := range l.Pix {
		heights[i] = float64(c.Gray())
	}

	// Vectors are built in float64 so large intensities cannot overflow
	// the normalization.
	k := float64(opts.Intensity)
	parallel.Rows(h, func(y int) {
		up := wrapIndex(y-1, h)
		down := wrapIndex(y+1, h)
		for x := 0; x < w; x++ {
			left := wrapIndex(x-1, w)
			right := wrapIndex(x+1, w)

			vx := mgl64.Vec3{0, 1, (heights[y*w+left] - heights[y*w+right]) * k}
			vy := mgl64.Vec3{1, 0, (heights[up*w+x] - heights[down*w+x]) * k}
			n := vy.Cross(vx).Normalize()
			e := n.Add(halfOne).Mul(0.5)

			c := Color{R: float32(e.X()), G: float32(e.Y()), B: float32(e.Z()), A: 1}
			if opts.SwapRG {
				c.R, c.G = c.G, c.R
			}
			l.Pix[y*w+x] = c
		}
	})

	img.GenerateMipmaps()
	logOp("normal", img, "intensity", k, "invert_height", opts.InvertHeight, "swap_rg", opts.SwapRG)
	return img, nil
}

// wrapIndex maps i into [0, n) toroidally for i in [-1, n].
func wrapIndex(i, n int) int {
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}
