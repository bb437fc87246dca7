package stamps

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DisplayCap is the upper bound of the scaled display range,
// sized for direct conversion to 8-bit depth.
const DisplayCap = 255.0

// ErrDegenerateScale is returned when the clip range collapses to a
// zero upper bound and the linear rescale is undefined.
var ErrDegenerateScale = errors.New("degenerate contrast scale: zero clip bound")

// ScaleClipped clips every sample to [median-lo, median+hi] and
// rescales linearly so output values lie in [0, cap]:
//
//	out = cap * clipped / (median + hi)
//
// The denominator is the upper clip bound alone, not the clip range.
// This asymmetric normalization is the contrast stretch the quick-look
// output format is built around, so it is kept exactly.
func ScaleClipped(g *Grid, lo, hi, cap float64) (*Grid, error) {
	med := Median(g)
	den := med + hi
	if den == 0 || math.IsNaN(den) {
		return nil, fmt.Errorf("%w (median %g + hi %g)", ErrDegenerateScale, med, hi)
	}

	floor := med - lo
	out := NewGrid(g.W, g.H)
	for i, v := range g.Pix {
		if v < floor {
			v = floor
		} else if v > den {
			v = den
		}
		out.Pix[i] = cap * v / den
	}
	return out, nil
}

// Autoscale derives a zscale display interval for g and applies the
// clipped linear stretch into [0, DisplayCap].
func Autoscale(g *Grid) (*Grid, error) {
	lo, hi, err := ZScale(g)
	if err != nil {
		return nil, err
	}
	return ScaleClipped(g, lo, hi, DisplayCap)
}

// Median returns the median of all finite samples in g.
func Median(g *Grid) float64 {
	vals := make([]float64, 0, len(g.Pix))
	for _, v := range g.Pix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	return sortedMedian(vals)
}
