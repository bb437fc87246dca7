package fits

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/astrogo/fitsio"
	"github.com/klauspost/compress/gzip"

	"github.com/astroshed/fits-stamps/internal/stamps"
)

// File is an open FITS container.
type File struct {
	f *fitsio.File
}

// Open reads path into memory and parses it as a FITS container,
// gunzipping first when the file carries the gzip magic bytes.
func Open(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FITS file: %w", err)
	}

	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip stream: %w", err)
		}
		raw, err = io.ReadAll(zr)
		if cerr := zr.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip stream: %w", err)
		}
	}

	f, err := fitsio.Open(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse FITS file: %w", err)
	}
	return &File{f: f}, nil
}

// Close releases the underlying container.
func (f *File) Close() error {
	return f.f.Close()
}

// NumExts returns the number of HDUs in the container.
func (f *File) NumExts() int {
	return len(f.f.HDUs())
}

// CompressedImageExts returns the indices of tile-compressed image
// extensions (HDUs with ZIMAGE = T), in container order. An empty
// result means the file holds only plain image data.
func (f *File) CompressedImageExts() []int {
	var exts []int
	for i, hdu := range f.f.HDUs() {
		if isCompressedImage(hdu.Header()) {
			exts = append(exts, i)
		}
	}
	return exts
}

func isCompressedImage(hdr *fitsio.Header) bool {
	card := hdr.Get("ZIMAGE")
	if card == nil {
		return false
	}
	switch v := card.Value.(type) {
	case bool:
		return v
	case string:
		return v == "T"
	}
	return false
}

// ReadImage reads the image HDU at extension ext into a float64 grid
// along with a snapshot of its header. Integer pixel types are
// widened; NAXIS1 maps to the grid width and NAXIS2 to its height.
func (f *File) ReadImage(ext int) (*stamps.Grid, Header, error) {
	if ext < 0 || ext >= f.NumExts() {
		return nil, Header{}, fmt.Errorf("extension %d out of range (file has %d HDUs)", ext, f.NumExts())
	}
	hdu := f.f.HDU(ext)
	hdr := hdu.Header()

	img, ok := hdu.(fitsio.Image)
	if !ok {
		if isCompressedImage(hdr) {
			return nil, Header{}, fmt.Errorf("extension %d is tile-compressed (fpack); decompress the file first (e.g. funpack)", ext)
		}
		return nil, Header{}, fmt.Errorf("extension %d does not contain image data", ext)
	}

	axes := hdr.Axes()
	if len(axes) != 2 {
		return nil, Header{}, fmt.Errorf("extension %d is not a 2-D image (NAXIS %d)", ext, len(axes))
	}
	w, h := axes[0], axes[1]
	if w <= 0 || h <= 0 {
		return nil, Header{}, fmt.Errorf("extension %d has empty image axes %dx%d", ext, w, h)
	}

	grid, err := readPixels(img, hdr.Bitpix(), w, h)
	if err != nil {
		return nil, Header{}, fmt.Errorf("extension %d: %w", ext, err)
	}
	return grid, Header{hdr: hdr}, nil
}

// readPixels decodes the HDU's pixel block at its native BITPIX and
// widens to float64.
func readPixels(img fitsio.Image, bitpix, w, h int) (*stamps.Grid, error) {
	n := w * h
	grid := stamps.NewGrid(w, h)

	switch bitpix {
	case 8:
		data := make([]uint8, n)
		if err := img.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		for i, v := range data {
			grid.Pix[i] = float64(v)
		}
	case 16:
		data := make([]int16, n)
		if err := img.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		for i, v := range data {
			grid.Pix[i] = float64(v)
		}
	case 32:
		data := make([]int32, n)
		if err := img.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		for i, v := range data {
			grid.Pix[i] = float64(v)
		}
	case 64:
		data := make([]int64, n)
		if err := img.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		for i, v := range data {
			grid.Pix[i] = float64(v)
		}
	case -32:
		data := make([]float32, n)
		if err := img.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		for i, v := range data {
			grid.Pix[i] = float64(v)
		}
	case -64:
		data := make([]float64, n)
		if err := img.Read(&data); err != nil {
			return nil, fmt.Errorf("failed to read pixel data: %w", err)
		}
		copy(grid.Pix, data)
	default:
		return nil, fmt.Errorf("unsupported BITPIX %d", bitpix)
	}
	return grid, nil
}
