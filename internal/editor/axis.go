package editor

// Axis restricts which coordinates a drag may change.
type Axis int

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

// Next cycles to the next axis lock.
func (a Axis) Next() Axis {
	switch a {
	case AxisBoth:
		return AxisX
	case AxisX:
		return AxisY
	default:
		return AxisBoth
	}
}

// String returns the name of the axis lock.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "both"
	}
}

// Icon returns a visual indicator for the axis lock.
func (a Axis) Icon() string {
	switch a {
	case AxisX:
		return "[x only]"
	case AxisY:
		return "[y only]"
	default:
		return ""
	}
}
