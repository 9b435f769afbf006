// Package texio reads and writes texutil images as files.
//
// It is the host side of texutil: decoding files into CPU-readable images
// and writing results back, with an optional notifier for asset databases
// that must be told about new files.
package texio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	texutil "github.com/maxartz15/MA-Utils"
)

// Errors returned by texio.
var (
	// ErrUnsupportedFormat is returned for formats texio cannot encode.
	ErrUnsupportedFormat = errors.New("texio: unsupported format")

	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("texio: empty data")

	// ErrInvalidName is returned for empty names or names containing a path.
	ErrInvalidName = errors.New("texio: invalid name")
)

// Format is an encodable file format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
)

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat maps a name or extension ("png", ".jpg", "TIFF") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP stream.
func Decode(r io.Reader, opts ...texutil.ImageOption) (*texutil.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texio: decode: %w", err)
	}
	return texutil.FromStdImage(src, opts...)
}

// DecodeBytes decodes an in-memory file.
func DecodeBytes(data []byte, opts ...texutil.ImageOption) (*texutil.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// Encode writes level 0 of img to w. PNG and TIFF keep 16 bits per
// channel; JPEG and BMP are 8-bit.
func Encode(w io.Writer, img *texutil.Image, format Format) error {
	if err := texutil.Validate(img); err != nil {
		return fmt.Errorf("texio: encode: %w", err)
	}
	std := img.ToStdImage()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, std)
	case FormatJPEG:
		err = jpeg.Encode(w, std, &jpeg.Options{Quality: 95})
	case FormatBMP:
		err = bmp.Encode(w, toNRGBA(std))
	case FormatTIFF:
		err = tiff.Encode(w, std, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("texio: encode %v: %w", format, err)
	}
	return nil
}

func toNRGBA(src *image.NRGBA64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.NRGBA64At(x, y))
		}
	}
	return dst
}

// FileProvider loads an image file on demand. It implements
// texutil.ReadableImageProvider.
type FileProvider struct {
	Path    string
	Options []texutil.ImageOption
}

// ReadableImage opens and decodes the file. The image name property is
// set to the file name without extension.
func (p FileProvider) ReadableImage(ctx context.Context) (*texutil.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Clean(p.Path))
	if err != nil {
		return nil, fmt.Errorf("texio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f, p.Options...)
	if err != nil {
		return nil, err
	}
	props := img.Properties()
	if props.Name == "" {
		base := filepath.Base(p.Path)
		props.Name = strings.TrimSuffix(base, filepath.Ext(base))
		img.SetProperties(props)
	}
	return img, nil
}

// decodeConfig reports the size of an encoded image without decoding pixels.
func decodeConfig(r io.Reader) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("texio: decode config: %w", err)
	}
	return cfg, nil
}

// Size returns the dimensions of an image file without decoding it.
func Size(path string) (width, height int, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, 0, fmt.Errorf("texio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := decodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
