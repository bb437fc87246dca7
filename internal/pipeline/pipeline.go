package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/astroshed/fits-stamps/internal/fits"
	"github.com/astroshed/fits-stamps/internal/stamps"
)

// ExtSelection names the FITS extension to read: automatic detection
// (prefer the first tile-compressed image extension, else the primary
// HDU) or an explicit index. Resolved once at pipeline entry.
type ExtSelection struct {
	explicit bool
	index    int
}

// AutoExt selects the extension automatically.
func AutoExt() ExtSelection {
	return ExtSelection{}
}

// ExplicitExt selects extension i unconditionally.
func ExplicitExt(i int) ExtSelection {
	return ExtSelection{explicit: true, index: i}
}

func (e ExtSelection) resolve(f *fits.File) int {
	if e.explicit {
		return e.index
	}
	if exts := f.CompressedImageExts(); len(exts) > 0 {
		return exts[0]
	}
	return 0
}

// DefaultTrimKeys are the header keys tried, in order, for the trim
// section when no custom box is given.
var DefaultTrimKeys = []string{"TRIMSEC", "DATASEC", "TRIMSEC0"}

// Options configures one conversion. The zero value of every field is
// usable via DefaultOptions.
type Options struct {
	Ext            ExtSelection
	TrimKeys       []string
	CustomBox      string
	StampSize      int
	SeparatorWidth int
}

// DefaultOptions returns the stock configuration: automatic extension
// detection, the standard trim keys, 256-pixel stamps and 1-pixel
// separators.
func DefaultOptions() Options {
	return Options{
		Ext:            AutoExt(),
		TrimKeys:       DefaultTrimKeys,
		StampSize:      256,
		SeparatorWidth: 1,
	}
}

// Convert turns the FITS image at input into a 3x3 zscaled stamp
// mosaic PNG at output. It returns the output path on success.
func Convert(input, output string, opts Options) (string, error) {
	if opts.StampSize <= 0 {
		opts.StampSize = 256
	}
	if len(opts.TrimKeys) == 0 {
		opts.TrimKeys = DefaultTrimKeys
	}

	f, err := fits.Open(input)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, hdr, err := f.ReadImage(opts.Ext.resolve(f))
	if err != nil {
		return "", err
	}

	trimmed, err := stamps.Trim(img, hdr, opts.TrimKeys, opts.CustomBox)
	if err != nil {
		return "", err
	}

	scaled, err := stamps.Autoscale(trimmed)
	if err != nil {
		return "", fmt.Errorf("contrast scaling failed: %w", err)
	}

	set, err := stamps.Extract(scaled, opts.StampSize)
	if err != nil {
		return "", err
	}

	mosaic := stamps.Compose(set, opts.SeparatorWidth)
	if err := imaging.Save(mosaic.Gray(), output); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", output, err)
	}
	return output, nil
}

// OutputPath derives the mosaic path for an input file: same
// directory, base name with the extension chain replaced by .png.
// Compression suffixes are stripped first, so frame.fits.gz maps to
// frame.png rather than frame.fits.png.
func OutputPath(input string) string {
	base := filepath.Base(input)
	switch ext := strings.ToLower(filepath.Ext(base)); ext {
	case ".gz", ".fz":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), base+".png")
}
