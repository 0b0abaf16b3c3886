package editor

import (
	"github.com/olivier-w/curvedit/internal/curve"
	"github.com/olivier-w/curvedit/internal/points"
)

// ActivationRadius is the normalized distance within which the pointer is
// over a point.
const ActivationRadius = 0.03

// ghostMargin keeps new points from being created on top of existing ones.
const ghostMargin = ActivationRadius * 1.1

// snapDecimals is the precision of snapped drags.
const snapDecimals = 1

// Input is everything the controller reads in one tick. Pointer is already
// normalized to [0,1]x[0,1] with y growing upwards. The button fields are
// edge triggered: true only on the tick the button changed.
type Input struct {
	Pointer       curve.Vec
	PrimaryDown   bool
	PrimaryUp     bool
	SecondaryDown bool
	Axis          Axis
	Snap          bool
}

// Controller turns pointer gestures into point set mutations. A point is
// idle or dragging; releasing the primary button always commits, there is
// no cancel gesture.
type Controller struct {
	points *points.Set
}

// NewController returns a controller editing set.
func NewController(set *points.Set) *Controller {
	return &Controller{points: set}
}

// Step processes one tick. Release and selection run first so a finished
// gesture is committed before a new one starts, then deletion and creation,
// then the drag update.
func (c *Controller) Step(in Input) {
	c.selectPoints(in)
	c.deletePoint(in)
	c.createPoint(in)
	c.movePoints(in)
}

func (c *Controller) selectPoints(in Input) {
	if in.PrimaryUp {
		c.points.Commit()
		return
	}
	if !in.PrimaryDown {
		return
	}

	closest, ok := c.points.Closest(in.Pointer)
	if !ok || closest.Committed.Distance(in.Pointer) > ActivationRadius {
		return
	}
	c.points.Select(closest)
}

func (c *Controller) deletePoint(in Input) {
	if !in.SecondaryDown || c.points.HasMovingPoints() {
		return
	}

	closest, ok := c.points.Closest(in.Pointer)
	if !ok || in.Pointer.Distance(closest.Committed) > ActivationRadius {
		return
	}
	c.points.Delete(closest.Committed)
}

func (c *Controller) createPoint(in Input) {
	if !in.PrimaryDown || c.points.HasMovingPoints() {
		return
	}

	ghost, ok := c.ghost(in.Pointer)
	if !ok {
		return
	}
	c.points.Insert(ghost, true)
}

// ghost returns where a click at pointer would create a point, if anywhere.
func (c *Controller) ghost(pointer curve.Vec) (curve.Vec, bool) {
	closest, ok := c.points.Closest(pointer)
	if !ok {
		return curve.Vec{}, false
	}
	ghost := c.points.Preview(pointer.X)

	if closest.Committed.Distance(ghost) < ghostMargin {
		return curve.Vec{}, false
	}
	if pointer.Distance(ghost) > ActivationRadius {
		return curve.Vec{}, false
	}
	return ghost, true
}

func (c *Controller) movePoints(in Input) {
	c.points.Drag(func(committed curve.Vec) curve.Vec {
		pending := committed
		if in.Axis != AxisY {
			pending.X = in.Pointer.X
		}
		if in.Axis != AxisX {
			pending.Y = in.Pointer.Y
		}
		if in.Snap {
			pending.X = curve.Round(pending.X, snapDecimals)
			pending.Y = curve.Round(pending.Y, snapDecimals)
		}
		return pending
	})
}

// Hover describes what a click at pointer would act on: the closest point
// when it is within reach, else a ghost point when one would be created.
func (c *Controller) Hover(pointer curve.Vec) (target curve.Vec, isGhost, ok bool) {
	if c.points.HasMovingPoints() {
		return curve.Vec{}, false, false
	}
	if closest, found := c.points.Closest(pointer); found && closest.Committed.Distance(pointer) <= ActivationRadius {
		return closest.Committed, false, true
	}
	if ghost, found := c.ghost(pointer); found {
		return ghost, true, true
	}
	return curve.Vec{}, false, false
}
