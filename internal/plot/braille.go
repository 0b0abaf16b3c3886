package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/curvedit/internal/curve"
)

// Renderer draws the sampled curve with Unicode Braille characters.
// Each cell is a 2x4 dot grid, giving 2x horizontal and 4x vertical resolution.
type Renderer struct {
	springs springField
	smooth  bool
	levels  []float64
}

// NewRenderer returns a renderer. With smooth set, column heights follow
// changes of the curve through springs instead of jumping.
func NewRenderer(fps int, smooth bool) *Renderer {
	return &Renderer{
		springs: newSpringField(fps, 8.0, 0.9),
		smooth:  smooth,
	}
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Grid lines of the plot background, in normalized units.
var (
	gridX = []float32{0.2, 0.4, 0.5, 0.6, 0.8}
	gridY = []float32{0.25, 0.5, 0.75}
)

// MarkerKind selects how a marker is drawn.
type MarkerKind int

const (
	MarkerPoint MarkerKind = iota
	MarkerSelected
	MarkerGhost
)

// Marker is a control point or candidate point drawn over the curve.
type Marker struct {
	Pos  curve.Vec
	Kind MarkerKind
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellGrid
	cellCurve
	cellPoint
	cellSelected
	cellGhost
)

// Update samples the curve through pts, which must be sorted by x, once per
// dot column and advances the springs by one frame.
func (r *Renderer) Update(g Grid, pts []curve.Vec) {
	dotCols := g.Cols * 2
	if dotCols < 2 {
		return
	}

	target := func(dc int) float64 {
		x := float32(dc) / float32(dotCols-1)
		return float64(curve.Clamp(curve.Sample(pts, x), 0, 1))
	}

	r.springs.resize(dotCols, target)
	if len(r.levels) != dotCols {
		r.levels = make([]float64, dotCols)
	}
	for dc := 0; dc < dotCols; dc++ {
		if r.smooth {
			r.levels[dc] = r.springs.step(dc, target(dc))
		} else {
			r.levels[dc] = target(dc)
		}
	}
}

// View renders the last update with markers on top.
func (r *Renderer) View(g Grid, markers []Marker) string {
	if g.Cols < 1 || g.Rows < 1 {
		return ""
	}

	patterns := r.dots(g)
	kinds := make([][]cellKind, g.Rows)
	for row := 0; row < g.Rows; row++ {
		kinds[row] = make([]cellKind, g.Cols)
		for col := 0; col < g.Cols; col++ {
			if patterns[row][col] != 0 {
				kinds[row][col] = cellCurve
			}
		}
	}
	r.background(g, kinds)

	glyphs := make(map[[2]int]rune)
	for _, m := range markers {
		col, row := g.Cell(m.Pos)
		if !g.Contains(col, row) {
			continue
		}
		switch m.Kind {
		case MarkerSelected:
			kinds[row][col] = cellSelected
			glyphs[[2]int{col, row}] = '◆'
		case MarkerGhost:
			if kinds[row][col] == cellPoint || kinds[row][col] == cellSelected {
				continue
			}
			kinds[row][col] = cellGhost
			glyphs[[2]int{col, row}] = '+'
		default:
			if kinds[row][col] == cellSelected {
				continue
			}
			kinds[row][col] = cellPoint
			glyphs[[2]int{col, row}] = '●'
		}
	}

	rows := make([]string, g.Rows)
	for row := 0; row < g.Rows; row++ {
		var line strings.Builder
		var run strings.Builder
		runKind := cellEmpty
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(styleFor(runKind).Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < g.Cols; col++ {
			kind := kinds[row][col]
			var ch rune
			switch kind {
			case cellPoint, cellSelected, cellGhost:
				ch = glyphs[[2]int{col, row}]
			case cellGrid:
				ch = '·'
			default:
				ch = rune(0x2800 + patterns[row][col])
			}
			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteRune(ch)
		}
		flush()
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

// dots converts the column levels to braille patterns, filling the vertical
// gap between neighbouring columns so steep parts stay connected.
func (r *Renderer) dots(g Grid) [][]uint {
	dotCols := g.Cols * 2
	dotRows := g.Rows * 4

	patterns := make([][]uint, g.Rows)
	for row := range patterns {
		patterns[row] = make([]uint, g.Cols)
	}
	if len(r.levels) != dotCols {
		return patterns
	}

	set := func(dc, dr int) {
		if dr < 0 || dr >= dotRows {
			return
		}
		patterns[dr/4][dc/2] |= 1 << brailleBits[dc%2][dr%4]
	}

	prev := -1
	for dc := 0; dc < dotCols; dc++ {
		level := math.Max(0, math.Min(1, r.levels[dc]))
		dr := int(math.Round((1 - level) * float64(dotRows-1)))
		lo, hi := dr, dr
		if prev >= 0 {
			lo, hi = min(dr, prev), max(dr, prev)
			// split the jump between this column and the previous one
			mid := (lo + hi) / 2
			if prev < dr {
				for y := lo + 1; y <= mid; y++ {
					set(dc-1, y)
				}
				lo = mid
			} else if prev > dr {
				for y := mid + 1; y < hi; y++ {
					set(dc-1, y)
				}
				hi = mid
			}
		}
		for y := lo; y <= hi; y++ {
			set(dc, y)
		}
		prev = dr
	}
	return patterns
}

func (r *Renderer) background(g Grid, kinds [][]cellKind) {
	for _, y := range gridY {
		_, row := g.Cell(curve.V(0, y))
		for _, x := range gridX {
			col, _ := g.Cell(curve.V(x, 0))
			if g.Contains(col, row) && kinds[row][col] == cellEmpty {
				kinds[row][col] = cellGrid
			}
		}
	}
}

var (
	curveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})

	gridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"})

	pointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"})

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	ghostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008B8B", Dark: "#7FFFD4"})

	plainStyle = lipgloss.NewStyle()
)

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellCurve:
		return curveStyle
	case cellGrid:
		return gridStyle
	case cellPoint:
		return pointStyle
	case cellSelected:
		return selectedStyle
	case cellGhost:
		return ghostStyle
	default:
		return plainStyle
	}
}
