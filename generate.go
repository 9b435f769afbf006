package texutil

import (
	"github.com/maxartz15/MA-Utils/internal/noise"
)

// SolidColor returns a new width x height image filled with c.
func SolidColor(width, height int, c Color, opts ...ImageOption) (*Image, error) {
	img, err := NewImage(width, height, opts...)
	if err != nil {
		return nil, err
	}
	for li := range img.levels {
		pix := img.levels[li].Pix
		for i := range pix {
			pix[i] = c
		}
	}
	logOp("solid_color", img)
	return img, nil
}

// NoiseOptions configures PerlinNoise.
type NoiseOptions struct {
	// Scale is the number of noise cells across the image.
	Scale float32
	// OffsetX and OffsetY shift the sampled region of the noise field.
	OffsetX, OffsetY float32
}

// DefaultNoiseOptions returns a scale of 10 at the origin.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{Scale: 10}
}

// PerlinNoise returns a new width x height grayscale image of Perlin noise.
// Pixel (x, y) samples the noise at
// (OffsetX + x/width*Scale, OffsetY + y/height*Scale) and stores
// (n, n, n, 1) with n in [0, 1]. The output is deterministic.
func PerlinNoise(width, height int, n NoiseOptions, opts ...ImageOption) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		name string
		v    float32
	}{{"noise scale", n.Scale}, {"noise offset x", n.OffsetX}, {"noise offset y", n.OffsetY}} {
		if err := checkFinite(p.name, p.v); err != nil {
			return nil, err
		}
	}

	img, err := NewImage(width, height, opts...)
	if err != nil {
		return nil, err
	}
	l := img.Level(0)
	fw, fh := float32(width), float32(height)
	for y := 0; y < height; y++ {
		yc := n.OffsetY + float32(y)/fh*n.Scale
		for x := 0; x < width; x++ {
			xc := n.OffsetX + float32(x)/fw*n.Scale
			v := noise.Perlin2Unit(xc, yc)
			l.Pix[y*width+x] = Color{R: v, G: v, B: v, A: 1}
		}
	}

	img.GenerateMipmaps()
	logOp("perlin_noise", img, "scale", n.Scale, "offset_x", n.OffsetX, "offset_y", n.OffsetY)
	return img, nil
}
