package texio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	texutil "github.com/maxartz15/MA-Utils"
)

// Notifier is told about every file Save writes, so an asset database
// can pick it up. A failing notifier does not fail the save.
type Notifier interface {
	Refresh(ctx context.Context, path string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, path string) error

// Refresh calls f.
func (f NotifierFunc) Refresh(ctx context.Context, path string) error {
	return f(ctx, path)
}

// SaveOption configures Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	format   Format
	notifier Notifier
	dirPerm  os.FileMode
}

func defaultSaveOptions() saveOptions {
	return saveOptions{format: FormatPNG, dirPerm: 0o755}
}

// WithFormat selects the file format. The default is PNG.
func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) {
		o.format = f
	}
}

// WithNotifier sets the collaborator told about the written file.
func WithNotifier(n Notifier) SaveOption {
	return func(o *saveOptions) {
		o.notifier = n
	}
}

// WithDirPerm sets the permission used when creating dir.
func WithDirPerm(perm os.FileMode) SaveOption {
	return func(o *saveOptions) {
		o.dirPerm = perm
	}
}

// Save writes img to dir/name<ext>, creating dir if needed, and returns
// the path written. name must be a bare file name without extension.
func Save(ctx context.Context, img *texutil.Image, dir, name string, opts ...SaveOption) (string, error) {
	o := defaultSaveOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if img == nil {
		return "", fmt.Errorf("texio: save: %w", texutil.ErrInvalidParameter)
	}
	if name == "" || name == "." || name == ".." ||
		name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	ext := o.format.Ext()
	if ext == "" {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, o.format)
	}

	if err := os.MkdirAll(dir, o.dirPerm); err != nil {
		return "", fmt.Errorf("texio: create directory: %w", err)
	}

	path := filepath.Join(dir, name+ext)
	if err := writeFile(path, img, o.format); err != nil {
		return "", err
	}

	texutil.Logger().Info("texio: saved image",
		"path", path, "format", o.format, "width", img.Width(), "height", img.Height())

	if o.notifier != nil {
		if err := o.notifier.Refresh(ctx, path); err != nil {
			texutil.Logger().Warn("texio: refresh notifier failed", "path", path, "err", err)
		}
	}
	return path, nil
}

func writeFile(path string, img *texutil.Image, format Format) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("texio: create file: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("texio: close file: %w", err)
	}
	return nil
}
