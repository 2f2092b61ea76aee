// Package loader turns a maze image or a JSON array into the passability
// matrix a pathgrid.Grid is built from.
//
// What:
//
//   - FromImage decodes PNG, GIF, JPEG, BMP or WebP and thresholds the first
//     (red) channel: a pixel brighter than the threshold is passable (1),
//     anything else is a barrier (0). Gray images report luminance on every
//     channel, so black-and-white mazes work unchanged.
//   - FromJSON decodes an array of arrays of numbers.
//   - Load picks the decoder from the file extension and returns a Grid with
//     its adjacency already built.
//
// Errors:
//
//   - ErrEmptyInput          - zero-sized image or an empty JSON array.
//   - ErrUnsupportedImage    - the image format is not registered.
//   - pathgrid.ErrMalformedInput - the matrix is not square (from Load).
//
// Decode failures are wrapped with the underlying error, so errors.Is and
// errors.As reach both.
package loader
