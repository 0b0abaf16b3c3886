package curve

import (
	"fmt"
	"math"
)

// Vec is a position in normalized curve space. Both components are expected
// to lie in [0,1]; x is the input coordinate and y the sampled value.
type Vec struct {
	X float32
	Y float32
}

// V returns the vector (x, y).
func V(x, y float32) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float32) Vec {
	return Vec{
		X: Lerp(v.X, o.X, t),
		Y: Lerp(v.Y, o.Y, t),
	}
}

// Distance returns the euclidean distance between two vectors.
func (v Vec) Distance(o Vec) float32 {
	x := v.X - o.X
	y := v.Y - o.Y
	sq := float32(x*x) + float32(y*y)
	return float32(math.Sqrt(float64(sq)))
}

// Clamp01 clamps both components to [0,1].
func (v Vec) Clamp01() Vec {
	return Vec{X: Clamp(v.X, 0, 1), Y: Clamp(v.Y, 0, 1)}
}

// Finite reports whether neither component is NaN or infinite.
func (v Vec) Finite() bool {
	return finite(v.X) && finite(v.Y)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Lerp blends a and b by t without clamping t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Round rounds x to the given number of decimal places, halves away from zero.
func Round(x float32, decimals int) float32 {
	scale := float32(math.Pow10(decimals))
	return float32(math.Round(float64(x*scale))) / scale
}
