package stamps

import (
	"fmt"
	"image"
	"math"
)

// Grid is a 2D plane of real-valued samples stored row-major:
// Pix[y*W+x] is the sample at column x, row y.
type Grid struct {
	Pix []float64
	W   int
	H   int
}

// NewGrid allocates a zero-filled w x h grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		Pix: make([]float64, w*h),
		W:   w,
		H:   h,
	}
}

// At returns the sample at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.W+x]
}

// Set stores v at column x, row y.
func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.W+x] = v
}

// Sub copies the half-open region (x0,y0)-(x1,y1) into a new grid.
func (g *Grid) Sub(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x1 > g.W || y1 > g.H {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside grid bounds %dx%d",
			x0, y0, x1, y1, g.W, g.H)
	}
	if x0 >= x1 || y0 >= y1 {
		return nil, fmt.Errorf("invalid region (%d,%d)-(%d,%d): x0 must be < x1, y0 must be < y1",
			x0, y0, x1, y1)
	}

	sub := NewGrid(x1-x0, y1-y0)
	for y := y0; y < y1; y++ {
		copy(sub.Pix[(y-y0)*sub.W:(y-y0+1)*sub.W], g.Pix[y*g.W+x0:y*g.W+x1])
	}
	return sub, nil
}

// FlipV reverses the row order in place, converting between the FITS
// bottom-up row convention and the top-down raster convention.
func (g *Grid) FlipV() {
	for y0, y1 := 0, g.H-1; y0 < y1; y0, y1 = y0+1, y1-1 {
		row0 := g.Pix[y0*g.W : (y0+1)*g.W]
		row1 := g.Pix[y1*g.W : (y1+1)*g.W]
		for x := range row0 {
			row0[x], row1[x] = row1[x], row0[x]
		}
	}
}

// Gray converts the grid to an 8-bit grayscale image. Samples are
// clamped to [0,255] and truncated, matching the behavior of a float
// raster converted to 8-bit luminance.
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v < 0 || math.IsNaN(v) {
				v = 0
			} else if v > 255 {
				v = 255
			}
			img.Pix[y*img.Stride+x] = uint8(v)
		}
	}
	return img
}
