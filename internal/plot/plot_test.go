package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/curvedit/internal/curve"
)

func TestNormalizeCorners(t *testing.T) {
	g := Grid{Cols: 51, Rows: 21}
	if got := g.Normalize(0, 0); got != curve.V(0, 1) {
		t.Fatalf("expected top-left (0, 1), got %v", got)
	}
	if got := g.Normalize(50, 20); got != curve.V(1, 0) {
		t.Fatalf("expected bottom-right (1, 0), got %v", got)
	}
	if got := g.Normalize(-5, 99); got != curve.V(0, 0) {
		t.Fatalf("expected outside cells to clamp, got %v", got)
	}
	if got := g.Normalize(20, 10); got != curve.V(0.4, 0.5) {
		t.Fatalf("expected (0.4, 0.5), got %v", got)
	}
}

func TestNormalizeRoundsToTwoDecimals(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	third := float32(0.33)
	if got := g.Normalize(1, 1); got != curve.V(third, 1-third) {
		t.Fatalf("expected rounded coordinates, got %v", got)
	}
}

func TestCellInvertsNormalize(t *testing.T) {
	g := Grid{Cols: 51, Rows: 21}
	for _, c := range [][2]int{{0, 0}, {10, 4}, {50, 20}, {25, 10}} {
		col, row := g.Cell(g.Normalize(c[0], c[1]))
		if col != c[0] || row != c[1] {
			t.Fatalf("expected cell %v, got (%d, %d)", c, col, row)
		}
	}
}

func flatView(t *testing.T, markers []Marker) []string {
	t.Helper()
	g := Grid{Cols: 10, Rows: 3}
	r := NewRenderer(30, false)
	r.Update(g, []curve.Vec{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}})
	view := r.View(g, markers)
	rows := strings.Split(view, "\n")
	if len(rows) != g.Rows {
		t.Fatalf("expected %d rows, got %d", g.Rows, len(rows))
	}
	return rows
}

func TestViewDrawsFlatCurveOnMiddleRow(t *testing.T) {
	rows := flatView(t, nil)
	if got := strings.Count(rows[1], "⠤"); got != 10 {
		t.Fatalf("expected 10 braille cells on the middle row, got %d in %q", got, rows[1])
	}
	if strings.Contains(rows[0], "⠤") || strings.Contains(rows[2], "⠤") {
		t.Fatal("expected curve only on the middle row")
	}
	if lipgloss.Width(rows[0]) != 10 {
		t.Fatalf("expected row width 10, got %d", lipgloss.Width(rows[0]))
	}
}

func TestViewDrawsMarkers(t *testing.T) {
	rows := flatView(t, []Marker{
		{Pos: curve.V(0, 0.5), Kind: MarkerPoint},
		{Pos: curve.V(1, 0.5), Kind: MarkerSelected},
		{Pos: curve.V(0.5, 0), Kind: MarkerGhost},
	})
	if !strings.HasPrefix(stripped(rows[1]), "●") {
		t.Fatalf("expected point marker at the start of %q", rows[1])
	}
	if !strings.HasSuffix(stripped(rows[1]), "◆") {
		t.Fatalf("expected selected marker at the end of %q", rows[1])
	}
	if !strings.Contains(rows[2], "+") {
		t.Fatalf("expected ghost marker on the bottom row, got %q", rows[2])
	}
}

func TestViewConnectsSteepSegments(t *testing.T) {
	g := Grid{Cols: 2, Rows: 4}
	r := NewRenderer(30, false)
	r.Update(g, []curve.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}})
	rows := strings.Split(r.View(g, nil), "\n")
	for i, row := range rows {
		if strings.TrimRight(row, "⠀") == "" {
			t.Fatalf("expected row %d to carry part of the curve, got %q", i, row)
		}
	}
}

func TestSpringsConverge(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	r := NewRenderer(30, true)
	r.Update(g, []curve.Vec{{X: 0, Y: 0.2}, {X: 1, Y: 0.2}})
	for i := 0; i < 200; i++ {
		r.Update(g, []curve.Vec{{X: 0, Y: 0.8}, {X: 1, Y: 0.8}})
	}
	for i, level := range r.levels {
		if math.Abs(level-0.8) > 0.01 {
			t.Fatalf("expected column %d to settle at 0.8, got %v", i, level)
		}
	}
}

func TestSpringsStartAtTarget(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	r := NewRenderer(30, true)
	r.Update(g, []curve.Vec{{X: 0, Y: 0.6}, {X: 1, Y: 0.6}})
	for i, level := range r.levels {
		if math.Abs(level-0.6) > 1e-6 {
			t.Fatalf("expected column %d to start at 0.6, got %v", i, level)
		}
	}
}

func stripped(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
