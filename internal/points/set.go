package points

import (
	"cmp"
	"slices"

	"github.com/olivier-w/curvedit/internal/curve"
)

// Drafts of interior points stay this far from the fixed end points.
const (
	minPendingX = 0.01
	maxPendingX = 0.99
)

// Set is the authoritative, unordered collection of control points.
// Points at x == 0 and x == 1 are permanent: Insert and Delete refuse any x
// outside (0,1), and drafts of those points keep their x while dragged.
// A Set is only mutated from the editor's single-threaded update loop.
type Set struct {
	points []ControlPoint
}

// New returns the default curve.
func New() *Set {
	return &Set{points: []ControlPoint{
		NewPoint(0, 0.5),
		NewPoint(0.2, 0.3),
		NewPoint(0.4, 0.5),
		NewPoint(0.8, 0.9),
		NewPoint(0.85, 0.05),
		NewPoint(1, 0.5),
	}}
}

// FromPositions returns a set of idle points at the given positions.
func FromPositions(positions []curve.Vec) *Set {
	s := &Set{}
	s.Replace(positions)
	return s
}

// Replace discards every point and loads idle points at positions.
func (s *Set) Replace(positions []curve.Vec) {
	s.points = make([]ControlPoint, 0, len(positions))
	for _, p := range positions {
		s.points = append(s.points, NewPoint(p.X, p.Y))
	}
}

// Len returns the number of points.
func (s *Set) Len() int {
	return len(s.points)
}

// Points returns a copy of the points in storage order.
func (s *Set) Points() []ControlPoint {
	return slices.Clone(s.points)
}

// Committed returns the committed positions in storage order.
func (s *Set) Committed() []curve.Vec {
	out := make([]curve.Vec, len(s.points))
	for i, p := range s.points {
		out[i] = p.Committed
	}
	return out
}

// SortedCommitted returns the committed positions sorted by x, ready for
// curve.Sample.
func (s *Set) SortedCommitted() []curve.Vec {
	return sortByX(s.Committed())
}

// SortedLive returns the displayed positions (drafts of dragged points)
// sorted by x.
func (s *Set) SortedLive() []curve.Vec {
	out := make([]curve.Vec, len(s.points))
	for i, p := range s.points {
		out[i] = p.Position()
	}
	return sortByX(out)
}

// Insert adds a point at p unless p.X is outside (0,1) or p is not finite.
// The new point starts selected when selected is true so that a drag can
// follow immediately.
func (s *Set) Insert(p curve.Vec, selected bool) bool {
	if !p.Finite() || p.X <= 0 || p.X >= 1 {
		return false
	}
	s.points = append(s.points, ControlPoint{
		Committed: p,
		Pending:   p,
		Selected:  selected,
	})
	return true
}

// Delete removes the first point whose committed position equals p exactly.
// Pass a position read from the set; a recomputed one may not compare equal.
func (s *Set) Delete(p curve.Vec) bool {
	if p.X <= 0 || p.X >= 1 {
		return false
	}
	i := slices.IndexFunc(s.points, func(cp ControlPoint) bool {
		return cp.Committed == p
	})
	if i < 0 {
		return false
	}
	s.points = slices.Delete(s.points, i, i+1)
	return true
}

// Closest returns the point whose committed position is nearest to coord.
// Ties go to the earliest point in storage order. ok is false only for an
// empty set.
func (s *Set) Closest(coord curve.Vec) (cp ControlPoint, ok bool) {
	best := float32(0)
	for i, p := range s.points {
		d := coord.Distance(p.Committed)
		if i == 0 || d < best {
			cp, best, ok = p, d, true
		}
	}
	return cp, ok
}

// HasMovingPoints reports whether any point is being dragged.
func (s *Set) HasMovingPoints() bool {
	return slices.ContainsFunc(s.points, func(p ControlPoint) bool {
		return p.Selected
	})
}

// Select starts a drag on every point equal to cp and reports whether one
// was found.
func (s *Set) Select(cp ControlPoint) bool {
	found := false
	for i := range s.points {
		if s.points[i] == cp {
			s.points[i].Selected = true
			found = true
		}
	}
	return found
}

// Drag sets the draft of every selected point to target(committed), then
// clamps x to [0.01,0.99] and pins the x of end points.
func (s *Set) Drag(target func(committed curve.Vec) curve.Vec) {
	for i := range s.points {
		p := &s.points[i]
		if !p.Selected {
			continue
		}

		pending := target(p.Committed)
		pending.X = curve.Clamp(pending.X, minPendingX, maxPendingX)
		if p.Committed.X == 0 || p.Committed.X == 1 {
			pending.X = p.Committed.X
		}
		p.Pending = pending
	}
}

// Commit ends every drag, promoting drafts to committed positions, and
// returns the number of points committed.
func (s *Set) Commit() int {
	n := 0
	for i := range s.points {
		if !s.points[i].Selected {
			continue
		}
		s.points[i].commit()
		n++
	}
	return n
}

// Preview linearly interpolates the committed points around x. It places
// ghost points and is not the curve's sampling function.
// Outside (0,1), or beyond the outermost point, it returns the nearest end
// point. The set must not be empty.
func (s *Set) Preview(x float32) curve.Vec {
	sorted := s.SortedCommitted()
	first, last := sorted[0], sorted[len(sorted)-1]

	if x <= 0 {
		return first
	}
	if x >= 1 {
		return last
	}

	left, right := first, last
	for _, p := range sorted {
		if p.X >= left.X && p.X <= x {
			left = p
		}
		if p.X < right.X && p.X > x {
			right = p
		}
	}

	if right.X == left.X {
		return left
	}
	t := (x - left.X) / (right.X - left.X)
	return left.Lerp(right, t)
}

func sortByX(pts []curve.Vec) []curve.Vec {
	slices.SortStableFunc(pts, func(a, b curve.Vec) int {
		return cmp.Compare(a.X, b.X)
	})
	return pts
}
