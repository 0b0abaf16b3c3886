package util

import (
	"testing"

	"github.com/olivier-w/curvedit/internal/curve"
)

func TestFormatTTL(t *testing.T) {
	for _, tc := range []struct {
		in   float32
		want string
	}{
		{5, "5.0s"},
		{2.26, "2.3s"},
		{0, "0.0s"},
		{-1, "0.0s"},
	} {
		if got := FormatTTL(tc.in); got != tc.want {
			t.Fatalf("FormatTTL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCoord(t *testing.T) {
	if got := FormatCoord(curve.V(0.4, 0.05)); got != "x: 0.40 y: 0.05" {
		t.Fatalf("unexpected coord text %q", got)
	}
}
