package stamps

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestZScale_Bounds(t *testing.T) {
	// Gaussian-ish background around 1000 with a few bright outliers,
	// the shape of a typical sky frame.
	rng := rand.New(rand.NewSource(42))
	g := NewGrid(200, 200)
	for i := range g.Pix {
		g.Pix[i] = 1000 + 50*rng.NormFloat64()
	}
	for i := 0; i < 40; i++ {
		g.Pix[rng.Intn(len(g.Pix))] = 65000 // saturated stars
	}

	lo, hi, err := ZScale(g)
	if err != nil {
		t.Fatalf("ZScale failed: %v", err)
	}
	if lo > hi {
		t.Errorf("interval inverted: lo %v > hi %v", lo, hi)
	}
	if hi >= 10000 {
		t.Errorf("hi %v should reject the saturated outliers", hi)
	}
	if lo <= 0 {
		t.Errorf("lo %v strays far below the background", lo)
	}
}

func TestZScale_Constant(t *testing.T) {
	g := constGrid(50, 50, 5)
	lo, hi, err := ZScale(g)
	if err != nil {
		t.Fatalf("ZScale failed: %v", err)
	}
	if lo != 5 || hi != 5 {
		t.Errorf("constant frame: got [%v, %v], want [5, 5]", lo, hi)
	}
}

func TestZScale_NoFinitePixels(t *testing.T) {
	g := constGrid(10, 10, math.NaN())
	if _, _, err := ZScale(g); !errors.Is(err, ErrNoFinitePixels) {
		t.Errorf("got %v, want ErrNoFinitePixels", err)
	}
}

func TestScaleClipped(t *testing.T) {
	// 1..9 has median 5; lo=2, hi=3 clips to [3, 8] and divides by 8.
	g := NewGrid(3, 3)
	for i := range g.Pix {
		g.Pix[i] = float64(i + 1)
	}

	out, err := ScaleClipped(g, 2, 3, DisplayCap)
	if err != nil {
		t.Fatalf("ScaleClipped failed: %v", err)
	}
	if got, want := out.Pix[0], 255.0*3/8; got != want {
		t.Errorf("clipped low sample: got %v, want %v", got, want)
	}
	if got, want := out.Pix[8], 255.0; got != want {
		t.Errorf("clipped high sample: got %v, want %v", got, want)
	}
	if got, want := out.Pix[4], 255.0*5/8; got != want {
		t.Errorf("median sample: got %v, want %v", got, want)
	}
}

func TestScaleClipped_Degenerate(t *testing.T) {
	g := constGrid(10, 10, 0)
	if _, err := ScaleClipped(g, 0, 0, DisplayCap); !errors.Is(err, ErrDegenerateScale) {
		t.Errorf("got %v, want ErrDegenerateScale", err)
	}
}

func TestAutoscale_OutputRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid(300, 300)
	for i := range g.Pix {
		g.Pix[i] = 2000 + 100*rng.NormFloat64()
	}

	out, err := Autoscale(g)
	if err != nil {
		t.Fatalf("Autoscale failed: %v", err)
	}
	for i, v := range out.Pix {
		if math.IsNaN(v) || v < 0 || v > DisplayCap {
			t.Fatalf("pixel %d out of display range: %v", i, v)
		}
	}
}

func TestAutoscale_ConstantNeverNaN(t *testing.T) {
	out, err := Autoscale(constGrid(20, 20, 7))
	if err != nil {
		t.Fatalf("Autoscale failed: %v", err)
	}
	// Clip range collapses around the median; the result is the
	// well-defined constant cap/2.
	for _, v := range out.Pix {
		if math.IsNaN(v) {
			t.Fatal("constant input must never produce NaN")
		}
		if v != DisplayCap/2 {
			t.Fatalf("got %v, want %v", v, DisplayCap/2)
		}
	}
}

func TestAutoscale_ZeroFrameDegenerate(t *testing.T) {
	if _, err := Autoscale(constGrid(20, 20, 0)); !errors.Is(err, ErrDegenerateScale) {
		t.Errorf("got %v, want ErrDegenerateScale", err)
	}
}
