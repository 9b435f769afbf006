// Command texfx runs a pipeline of texutil transforms over an image file.
//
// Usage:
//
//	texfx -in height.png -op 'normal(intensity=2)' -op 'blur(radius=2)' -out normal.png
//	texfx -op 'noise(w=512, h=512, scale=8)' -op 'contrast(delta=0.1)' -out noise.tiff
//
// Steps run in order. Generators (solid, noise) replace the current image;
// blend, mask and combine read a second image from their file argument.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	texutil "github.com/maxartz15/MA-Utils"
	"github.com/maxartz15/MA-Utils/internal/parallel"
	"github.com/maxartz15/MA-Utils/texio"
)

// stepList collects repeated -op flags.
type stepList []step

func (l *stepList) String() string {
	names := make([]string, len(*l))
	for i, s := range *l {
		names[i] = s.Name
	}
	return strings.Join(names, ",")
}

func (l *stepList) Set(v string) error {
	s, err := parseStep(v)
	if err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		texutil.Logger().Error("texfx failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("texfx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		steps   stepList
		in      = fs.String("in", "", "input image file")
		out     = fs.String("out", "", "output image file")
		format  = fs.String("format", "", "output format (png, jpeg, bmp, tiff); default from -out extension")
		mipmaps = fs.Bool("mipmaps", false, "carry a mip chain through the pipeline")
		workers = fs.Int("workers", 0, "maximum row workers (0 = GOMAXPROCS)")
		verbose = fs.Bool("v", false, "log every transform")
	)
	fs.Var(&steps, "op", "pipeline step `name(key=value, ...)`; repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	texutil.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	if *workers > 0 {
		parallel.SetMaxWorkers(*workers)
	}

	if *out == "" {
		return errors.New("texfx: -out is required")
	}
	if *in == "" && len(steps) == 0 {
		return errors.New("texfx: nothing to do; pass -in or -op")
	}

	var opts []texutil.ImageOption
	if *mipmaps {
		opts = append(opts, texutil.WithMipmaps())
	}
	r := &runner{ctx: ctx, opts: opts}

	var img *texutil.Image
	if *in != "" {
		var err error
		if img, err = r.load(*in); err != nil {
			return err
		}
	}
	for i, st := range steps {
		next, err := r.apply(img, st)
		if err != nil {
			return fmt.Errorf("texfx: step %d: %w", i+1, err)
		}
		img = next
	}
	if img == nil {
		return errors.New("texfx: pipeline produced no image")
	}

	dir, base := filepath.Split(*out)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	fmtName := *format
	if fmtName == "" {
		fmtName = ext
	}
	if fmtName == "" {
		fmtName = "png"
	}
	f, err := texio.ParseFormat(fmtName)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = "."
	}

	printer := texio.NotifierFunc(func(_ context.Context, path string) error {
		_, err := fmt.Fprintln(stdout, path)
		return err
	})
	_, err = texio.Save(ctx, img, dir, name, texio.WithFormat(f), texio.WithNotifier(printer))
	return err
}
