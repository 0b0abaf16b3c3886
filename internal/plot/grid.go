package plot

import (
	"math"

	"github.com/olivier-w/curvedit/internal/curve"
)

// pointerDecimals is the precision of normalized pointer coordinates.
const pointerDecimals = 2

// Grid is the plot area measured in terminal cells. Column 0 is x == 0,
// the last column x == 1; row 0 is y == 1, the last row y == 0.
type Grid struct {
	Cols int
	Rows int
}

// Normalize maps a cell, relative to the top-left of the plot, to normalized
// curve space. Cells outside the plot clamp to its border.
func (g Grid) Normalize(col, row int) curve.Vec {
	fx := fraction(col, g.Cols)
	fy := fraction(row, g.Rows)
	return curve.V(
		curve.Round(fx, pointerDecimals),
		1-curve.Round(fy, pointerDecimals),
	)
}

// Cell returns the cell nearest to v.
func (g Grid) Cell(v curve.Vec) (col, row int) {
	v = v.Clamp01()
	col = int(math.Round(float64(v.X * float32(g.Cols-1))))
	row = int(math.Round(float64((1 - v.Y) * float32(g.Rows-1))))
	return col, row
}

// Contains reports whether the cell lies inside the plot.
func (g Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

func fraction(i, n int) float32 {
	if n < 2 {
		return 0
	}
	return curve.Clamp(float32(i)/float32(n-1), 0, 1)
}
