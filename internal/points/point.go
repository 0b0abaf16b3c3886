package points

import "github.com/olivier-w/curvedit/internal/curve"

// ControlPoint is one authored sample of the curve. Committed is the
// confirmed position; Pending is the draft position while the point is
// dragged. When Selected is false, Pending equals Committed.
type ControlPoint struct {
	Committed curve.Vec
	Pending   curve.Vec
	Selected  bool
}

// NewPoint returns an idle point at (x, y).
func NewPoint(x, y float32) ControlPoint {
	v := curve.V(x, y)
	return ControlPoint{Committed: v, Pending: v}
}

// Position returns where the point is currently shown: its draft while
// selected, its committed position otherwise.
func (p ControlPoint) Position() curve.Vec {
	if p.Selected {
		return p.Pending
	}
	return p.Committed
}

// commit promotes the draft and ends the drag.
func (p *ControlPoint) commit() {
	p.Committed = p.Pending
	p.Selected = false
}
