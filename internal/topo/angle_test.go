package topo

import "testing"

func TestDegrees(t *testing.T) {
	tests := []struct {
		raw        int16
		fullCircle int
		want       float64
	}{
		{0, FullCircle, 0},
		{16384, FullCircle, 90},
		{-16384, FullCircle, -90},
		{-32768, FullCircle, -180},
		{32767, FullCircle, 179.9945068359375},
		{0, FullCircleRoll, 0},
		{64, FullCircleRoll, 90},
		{192, FullCircleRoll, 270},
		{-128, FullCircleRoll, -180},
	}
	for _, tt := range tests {
		if got := Degrees(tt.raw, tt.fullCircle); got != tt.want {
			t.Errorf("Degrees(%d, %d) = %v, want %v", tt.raw, tt.fullCircle, got, tt.want)
		}
	}
}

func TestXSectionAzimuth(t *testing.T) {
	x := XSection{Direction: 16384}
	if x.Horizontal() {
		t.Fatal("projected section reported as horizontal")
	}
	if got := x.Azimuth(); got != 90 {
		t.Fatalf("Azimuth() = %v, want 90", got)
	}

	// Raw directions past half circle come out negative from the fixed-point
	// conversion and must fold back into compass range.
	x = XSection{Direction: 49152}
	if got := x.Azimuth(); got != 270 {
		t.Fatalf("Azimuth() = %v, want 270", got)
	}

	if !(XSection{Direction: -1}).Horizontal() {
		t.Fatal("direction -1 not reported as horizontal")
	}
}
