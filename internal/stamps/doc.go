// Package stamps implements the raster algorithms that turn a raw
// astronomical frame into a 3x3 quick-look mosaic: trim-section
// selection, zscale contrast stretching, fixed-position region
// extraction, and mosaic composition with separator lines.
//
// # Data representation
//
// Pixel data is carried as a Grid: a row-major []float64 plane with
// explicit width and height. FITS pixel values are real-valued samples
// well outside the 0-255 range, so the standard image.Image types are
// unsuitable until the very end of the pipeline, when Grid.Gray
// produces an 8-bit grayscale image for encoding.
//
// # Coordinate System
//
// Grid coordinates are 0-based with (0,0) at the top-left of the
// in-memory plane, X increasing rightward and Y increasing downward.
// Region bounds are half-open: (x0,y0) inclusive, (x1,y1) exclusive.
// FITS stores rows bottom-up; the compositor applies a single vertical
// flip at the end so the encoded mosaic reads top-down.
//
// # Error Handling
//
// Recoverable conditions carry sentinel errors (ErrStampTooLarge,
// ErrDegenerateScale) so batch callers can classify failures with
// errors.Is. Missing or syntactically malformed trim metadata is not
// an error at all: the frame passes through untrimmed and a warning is
// logged, because absent header keys should never block a conversion.
package stamps
