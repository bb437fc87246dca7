// Package fits wraps the FITS container collaborator for the stamp
// pipeline: opening files (with transparent gunzip of .fits.gz
// inputs), locating tile-compressed image extensions, and reading one
// image HDU into a float64 grid plus an ordered header snapshot.
//
// The package deliberately exposes only what the conversion pipeline
// consumes. Everything else about the container format (tables, WCS,
// scaling keywords) stays behind github.com/astrogo/fitsio.
//
// # Compression
//
// Two kinds of compression appear in the wild. Whole-file gzip
// (name.fits.gz) is handled transparently at open time. Internal tile
// compression (fpack; the HDU carries ZIMAGE = T) is detected so the
// pipeline can auto-select the extension, but the Go FITS ecosystem
// has no tile decompressor: reading such an HDU returns a descriptive
// error instead of pixel data.
package fits
