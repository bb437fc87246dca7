package stamps

import (
	"errors"
	"math"
	"sort"
)

// zscale tuning, matching the IRAF display defaults.
const (
	zscaleSamples    = 1000
	zscaleContrast   = 0.25
	zscaleMaxReject  = 0.5
	zscaleMinPixels  = 5
	zscaleKRej       = 2.5
	zscaleIterations = 5
)

// ErrNoFinitePixels is returned when a grid has nothing to estimate a
// display interval from.
var ErrNoFinitePixels = errors.New("no finite pixels in image")

// ZScale computes a robust display interval for an astronomical frame
// using the IRAF zscale algorithm: a subsample of the image is sorted
// and an iterated sigma-clipped line is fit to sample value versus
// rank. The fitted slope, widened by the contrast setting, sets how
// far the interval extends from the sample median. Bright outliers
// such as stars land in the clipped tail and do not blow out the
// interval, while low-contrast background structure stays visible.
func ZScale(g *Grid) (lo, hi float64, err error) {
	samples := sampleGrid(g, zscaleSamples)
	if len(samples) == 0 {
		return 0, 0, ErrNoFinitePixels
	}
	sort.Float64s(samples)

	npix := len(samples)
	zmin := samples[0]
	zmax := samples[npix-1]
	median := sortedMedian(samples)

	slope, ngood := fitLineClipped(samples)

	minGood := zscaleMinPixels
	if frac := int(float64(npix) * zscaleMaxReject); frac > minGood {
		minGood = frac
	}

	lo, hi = zmin, zmax
	if ngood >= minGood {
		if zscaleContrast > 0 {
			slope /= zscaleContrast
		}
		mid := (npix - 1) / 2
		if v := median - float64(mid)*slope; v > lo {
			lo = v
		}
		if v := median + float64(npix-1-mid)*slope; v < hi {
			hi = v
		}
	}
	return lo, hi, nil
}

// sampleGrid takes up to limit finite samples at an even stride.
func sampleGrid(g *Grid, limit int) []float64 {
	stride := len(g.Pix) / limit
	if stride < 1 {
		stride = 1
	}
	samples := make([]float64, 0, limit)
	for i := 0; i < len(g.Pix) && len(samples) < limit; i += stride {
		v := g.Pix[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		samples = append(samples, v)
	}
	return samples
}

func sortedMedian(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// fitLineClipped fits value = intercept + slope*rank to the sorted
// samples, iteratively rejecting points more than kRej standard
// deviations from the fit. Rejected points grow to their immediate
// neighbors, as in the IRAF implementation. Returns the final slope
// and the surviving sample count.
func fitLineClipped(sorted []float64) (slope float64, ngood int) {
	npix := len(sorted)
	bad := make([]bool, npix)
	ngood = npix
	lastGood := npix + 1

	for iter := 0; iter < zscaleIterations; iter++ {
		if ngood >= lastGood || ngood < zscaleMinPixels {
			break
		}

		m, b, ok := linearFit(sorted, bad)
		if !ok {
			break
		}
		slope = m

		// Residual spread over the surviving points.
		var sum, sumSq float64
		for i, v := range sorted {
			if bad[i] {
				continue
			}
			r := v - (b + m*float64(i))
			sum += r
			sumSq += r * r
		}
		n := float64(ngood)
		sigma := math.Sqrt(sumSq/n - (sum/n)*(sum/n))
		threshold := zscaleKRej * sigma

		lastGood = ngood
		for i, v := range sorted {
			if bad[i] {
				continue
			}
			if math.Abs(v-(b+m*float64(i))) > threshold {
				bad[i] = true
			}
		}
		growMask(bad)

		ngood = 0
		for _, isBad := range bad {
			if !isBad {
				ngood++
			}
		}
	}
	return slope, ngood
}

// linearFit is a least-squares line fit over the unmasked points.
func linearFit(sorted []float64, bad []bool) (slope, intercept float64, ok bool) {
	var n, sumX, sumY, sumXY, sumXX float64
	for i, v := range sorted {
		if bad[i] {
			continue
		}
		x := float64(i)
		n++
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	det := n*sumXX - sumX*sumX
	if n < 2 || det == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / det
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

// growMask extends each rejected point to its immediate neighbors so
// single-pixel survivors inside a rejected run do not anchor the fit.
func growMask(bad []bool) {
	grown := make([]bool, len(bad))
	copy(grown, bad)
	for i, isBad := range bad {
		if !isBad {
			continue
		}
		if i > 0 {
			grown[i-1] = true
		}
		if i < len(bad)-1 {
			grown[i+1] = true
		}
	}
	copy(bad, grown)
}
