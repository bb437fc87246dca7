package stamps

// SeparatorValue fills the strips between stamps: full display white.
const SeparatorValue = 255.0

// Compose tiles the nine stamps into a single canvas with separator
// strips of the given width between them, then flips the canvas
// vertically so the bottom-origin frame reads top-down when encoded.
//
// The row groupings are a compatibility contract: the first assembled
// row holds (TopLeft, MidLeft, BottomLeft), the second the three
// center stamps, the third (TopRight, MidRight, BottomRight). Output
// produced since the first release of the tool has this layout, so it
// is kept even though the names read transposed.
func Compose(set *StampSet, sepwidth int) *Grid {
	if sepwidth < 0 {
		sepwidth = 0
	}

	rows := [3][3]*Grid{
		{set.TopLeft, set.MidLeft, set.BottomLeft},
		{set.TopCenter, set.MidCenter, set.BottomCenter},
		{set.TopRight, set.MidRight, set.BottomRight},
	}

	s := set.TopLeft.W
	side := 3*s + 2*sepwidth
	canvas := NewGrid(side, side)
	for i := range canvas.Pix {
		canvas.Pix[i] = SeparatorValue
	}

	for r, row := range rows {
		oy := r * (s + sepwidth)
		for c, stamp := range row {
			ox := c * (s + sepwidth)
			blit(canvas, stamp, ox, oy)
		}
	}

	canvas.FlipV()
	return canvas
}

// blit copies src into dst with its top-left corner at (ox, oy).
func blit(dst, src *Grid, ox, oy int) {
	for y := 0; y < src.H; y++ {
		copy(dst.Pix[(oy+y)*dst.W+ox:(oy+y)*dst.W+ox+src.W], src.Pix[y*src.W:(y+1)*src.W])
	}
}
