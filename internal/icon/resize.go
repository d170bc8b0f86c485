package icon

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"

	imageloader "github.com/jmylchreest/touchicon/internal/image"
)

// ResizerOptions configures a Resizer.
type ResizerOptions struct {
	// Size is the output edge length. Zero means DefaultSize.
	Size int

	// Loader reads the source image. Nil means a SmartLoader, which also
	// accepts HTTPS URLs.
	Loader imageloader.Loader

	Logger hclog.Logger
}

// Resizer resamples an existing logo to a square icon.
type Resizer struct {
	size   int
	loader imageloader.Loader
	logger hclog.Logger
}

// ResizeResult describes a written icon.
type ResizeResult struct {
	Path     string
	Original image.Point
	Resized  image.Point
}

// NewResizer validates opts and returns a Resizer.
func NewResizer(opts ResizerOptions) (*Resizer, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	loader := opts.Loader
	if loader == nil {
		loader = imageloader.NewSmartLoader()
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Resizer{size: size, loader: loader, logger: logger}, nil
}

// Resample scales src to exactly size x size with the Lanczos filter,
// ignoring its aspect ratio.
func Resample(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

// Resize loads source, resamples it and writes an optimised PNG to output.
// On any failure it returns a nil result and nothing is written.
func (r *Resizer) Resize(ctx context.Context, source, output string) (*ResizeResult, error) {
	if !imageloader.IsURL(source) && !imageloader.IsImageFile(source) {
		r.logger.Warn("source extension is not a known image type", "source", source)
	}

	src, err := r.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	original := src.Bounds().Size()
	if original.X < 1 || original.Y < 1 {
		return nil, fmt.Errorf("source image is empty: %dx%d", original.X, original.Y)
	}
	r.logger.Debug("resampling", "source", source, "width", original.X, "height", original.Y, "size", r.size)

	resized := Resample(src, r.size)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := WritePNG(output, resized, true); err != nil {
		return nil, err
	}

	return &ResizeResult{
		Path:     output,
		Original: original,
		Resized:  resized.Bounds().Size(),
	}, nil
}
