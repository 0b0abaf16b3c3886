package util

import (
	"fmt"

	"github.com/olivier-w/curvedit/internal/curve"
)

// FormatTTL formats a remaining lifetime in seconds as 1.5s.
func FormatTTL(seconds float32) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%.1fs", seconds)
}

// FormatCoord formats a normalized position as x: 0.40 y: 0.50.
func FormatCoord(v curve.Vec) string {
	return fmt.Sprintf("x: %.2f y: %.2f", v.X, v.Y)
}
