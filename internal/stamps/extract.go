package stamps

import (
	"errors"
	"fmt"
)

// ErrStampTooLarge is returned when an image cannot hold a 3x3 layout
// of the requested stamp size.
var ErrStampTooLarge = errors.New("stamp size is too large for this image")

// StampSet holds the nine fixed sub-regions of a frame, each of
// identical stampsize x stampsize shape. Position names refer to the
// frame's own (bottom-origin) orientation.
type StampSet struct {
	TopLeft      *Grid
	TopCenter    *Grid
	TopRight     *Grid
	MidLeft      *Grid
	MidCenter    *Grid
	MidRight     *Grid
	BottomLeft   *Grid
	BottomCenter *Grid
	BottomRight  *Grid
}

// Extract cuts the nine fixed stamps out of g: the four corners, the
// four edge midpoints, and the center. The source must be at least
// three stamps wide and tall; regions may overlap on images close to
// that minimum, which is expected.
func Extract(g *Grid, stampsize int) (*StampSet, error) {
	if stampsize <= 0 {
		return nil, fmt.Errorf("invalid stamp size %d", stampsize)
	}
	w, h := g.W, g.H
	if h < 3*stampsize || w < 3*stampsize {
		return nil, fmt.Errorf("%w: %dx%d image, %d stamp", ErrStampTooLarge, w, h, stampsize)
	}

	s := stampsize
	// Center band bounds. Evaluating (dim-s)/2 keeps the band exactly
	// s samples wide for odd sizes as well.
	cy0 := (h - s) / 2
	cx0 := (w - s) / 2

	set := &StampSet{}
	for _, r := range []struct {
		dst            **Grid
		x0, y0, x1, y1 int
	}{
		{&set.TopLeft, 0, 0, s, s},
		{&set.TopCenter, 0, cy0, s, cy0 + s},
		{&set.TopRight, 0, h - s, s, h},
		{&set.MidLeft, cx0, 0, cx0 + s, s},
		{&set.MidCenter, cx0, cy0, cx0 + s, cy0 + s},
		{&set.MidRight, cx0, h - s, cx0 + s, h},
		{&set.BottomLeft, w - s, 0, w, s},
		{&set.BottomCenter, w - s, cy0, w, cy0 + s},
		{&set.BottomRight, w - s, h - s, w, h},
	} {
		sub, err := g.Sub(r.x0, r.y0, r.x1, r.y1)
		if err != nil {
			return nil, err
		}
		*r.dst = sub
	}
	return set, nil
}
