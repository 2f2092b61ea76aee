package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/katalvlaran/gridpath/pathgrid"
)

// DefaultThreshold is the red-channel value a pixel must exceed to be passable.
const DefaultThreshold uint8 = 128

// Sentinel errors returned by the loader.
var (
	// ErrUnsupportedImage indicates the image format has no registered decoder.
	ErrUnsupportedImage = errors.New("loader: unsupported image format")

	// ErrEmptyInput indicates the source decoded to zero rows or zero columns.
	ErrEmptyInput = errors.New("loader: empty input")
)

// Options configures image thresholding.
type Options struct {
	// Threshold: pixels whose red channel is strictly greater are passable.
	Threshold uint8
}

// Option is a functional option for the loader.
type Option func(*Options)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(t uint8) Option {
	return func(o *Options) {
		o.Threshold = t
	}
}

// DefaultOptions returns Options with DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// FromImage decodes an image and thresholds its red channel into a 0/1
// matrix with one row per pixel row.
//
// Complexity: O(W·H).
func FromImage(r io.Reader, opts ...Option) ([][]uint8, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		return nil, fmt.Errorf("loader: decode image: %w", err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrEmptyInput, b.Dx(), b.Dy())
	}

	matrix := make([][]uint8, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]uint8, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			red, _, _, _ := img.At(x, y).RGBA()
			// RGBA reports 16-bit channels
			if uint8(red>>8) > cfg.Threshold {
				row[x-b.Min.X] = 1
			}
		}
		matrix[y-b.Min.Y] = row
	}

	return matrix, nil
}

// FromJSON decodes a JSON array of arrays of numbers. Shape is not checked
// here; pathgrid.New rejects non-square input.
func FromJSON(r io.Reader) ([][]float64, error) {
	var matrix [][]float64
	if err := json.NewDecoder(r).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("loader: decode json: %w", err)
	}
	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: json array has no rows", ErrEmptyInput)
	}

	return matrix, nil
}

// Load reads the file at path and builds a Grid from it. Files ending in
// .json are read with FromJSON; everything else goes through FromImage.
func Load(path string, opts ...Option) (*pathgrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		matrix, err := FromJSON(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return pathgrid.Build(matrix)
	}

	matrix, err := FromImage(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pathgrid.Build(matrix)
}
