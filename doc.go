// Package texutil transforms RGBA float images on the CPU.
//
// # Overview
//
// texutil is the pixel-math half of a texture toolbox: resampling,
// compositing, color adjustment, normal-map generation, blurring and
// procedural generation over an in-memory [Image]. Loading pixels from
// the host (GPU textures, files, asset databases) happens outside, behind
// [ReadableImageProvider]; see the texio sub-package for a file-backed one.
//
// # Quick Start
//
//	img, err := texutil.Load(ctx, texio.FileProvider{Path: "height.png"})
//	if err != nil {
//		return err
//	}
//
//	// Height map to normal map, then soften it.
//	if _, err := texutil.Normal(img, texutil.DefaultNormalOptions()); err != nil {
//		return err
//	}
//	if _, err := texutil.BoxBlur(img, 3, 1); err != nil {
//		return err
//	}
//
//	_, err = texio.Save(ctx, img, "out", "normal")
//
// # Images
//
// An [Image] holds level 0 at full resolution and, with [WithMipmaps],
// levels down to 1x1, each ceil-halved. Pixels are four float32 values and
// are never clamped implicitly.
//
// Per-pixel color adjustments ([Grayscale], [Invert], [AlphaToRGB],
// [Brightness], [Contrast], [MinMax], [ColorReplace], [ColorReplaceHSV])
// run on every level. Spatial and compositing transforms ([Combine],
// [Blend], [Mask], [Tile], [Normal], [BoxBlur]) run on level 0 and rebuild
// the other levels with [Image.GenerateMipmaps]. [Scale] and the
// generators ([SolidColor], [PerlinNoise]) return new images.
//
// Transforms mutate and return their input unless documented otherwise.
// None keeps a reference to an image after returning.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel; x grows right and y grows down.
// [Combine] with flipY converts to a bottom-left origin.
//
// # Errors
//
// Fallible transforms return errors wrapping [ErrInvalidDimension],
// [ErrDimensionMismatch], [ErrInvalidParameter] or [ErrOutOfBounds].
// Parameters that would put NaN or infinity into pixels are rejected.
//
// # Logging
//
// texutil is silent by default. [SetLogger] installs a [log/slog] logger;
// every transform then emits one debug record.
package texutil
