package stamps

import "testing"

// mapHeader is a test stand-in for a FITS header.
type mapHeader map[string]string

func (h mapHeader) Value(key string) (string, bool) {
	v, ok := h[key]
	return v, ok
}

var trimKeys = []string{"TRIMSEC", "DATASEC", "TRIMSEC0"}

func TestTrim_ExplicitBox(t *testing.T) {
	g := rampGrid(10, 10)

	// 1-indexed inclusive [2:5,3:7]: rows 2..5, cols 3..7. Only the
	// lower bound shifts to 0-indexing; the upper bound is already the
	// half-open endpoint.
	trimmed, err := Trim(g, mapHeader{}, trimKeys, "[2:5,3:7]")
	if err != nil {
		t.Fatalf("Trim failed: %v", err)
	}
	if trimmed.H != 4 || trimmed.W != 5 {
		t.Errorf("shape: got %dx%d (WxH), want 5x4", trimmed.W, trimmed.H)
	}
	// Row 2, col 3 in header terms is (x=2, y=1) in the grid.
	if got := trimmed.At(0, 0); got != 1002 {
		t.Errorf("At(0,0): got %v, want 1002", got)
	}
}

func TestTrim_HeaderKeyOrder(t *testing.T) {
	g := rampGrid(10, 10)

	tests := []struct {
		name  string
		hdr   mapHeader
		wantW int
		wantH int
	}{
		{
			name:  "first key wins",
			hdr:   mapHeader{"TRIMSEC": "[1:4,1:6]", "DATASEC": "[1:2,1:2]"},
			wantW: 6,
			wantH: 4,
		},
		{
			name:  "falls through to second key",
			hdr:   mapHeader{"DATASEC": "[1:2,1:2]"},
			wantW: 2,
			wantH: 2,
		},
		{
			name:  "falls through to third key",
			hdr:   mapHeader{"TRIMSEC0": "[1:3,1:5]"},
			wantW: 5,
			wantH: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trimmed, err := Trim(g, tt.hdr, trimKeys, "")
			if err != nil {
				t.Fatalf("Trim failed: %v", err)
			}
			if trimmed.W != tt.wantW || trimmed.H != tt.wantH {
				t.Errorf("shape: got %dx%d, want %dx%d", trimmed.W, trimmed.H, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTrim_Identity(t *testing.T) {
	g := rampGrid(10, 10)

	tests := []struct {
		name string
		hdr  mapHeader
		box  string
	}{
		{"no header keys", mapHeader{}, ""},
		{"degenerate whole-image box", mapHeader{}, "[0:0,0:0]"},
		{"degenerate box from header", mapHeader{"TRIMSEC": "[0:0,0:0]"}, ""},
		{"malformed tokens", mapHeader{"TRIMSEC": "[a:b,c:d]"}, ""},
		{"missing column range", mapHeader{"TRIMSEC": "[1:5]"}, ""},
		{"not a range at all", mapHeader{"TRIMSEC": "whoops"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trimmed, err := Trim(g, tt.hdr, trimKeys, tt.box)
			if err != nil {
				t.Fatalf("Trim failed: %v", err)
			}
			if trimmed != g {
				t.Error("Trim should return the input grid unchanged")
			}
		})
	}
}

func TestTrim_OutOfRange(t *testing.T) {
	g := rampGrid(10, 10)

	// Well-formed but outside the array: a hard error, unlike the
	// recoverable malformed cases.
	if _, err := Trim(g, mapHeader{"TRIMSEC": "[1:5000,1:5000]"}, trimKeys, ""); err == nil {
		t.Error("Trim should fail for an out-of-range section")
	}
}
