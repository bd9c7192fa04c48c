package orientation

import "fmt"

// Axis is one of the canonical x, y, z coordinate axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Sign is the outcome of the three-way sign test.
type Sign int

const (
	Zero Sign = iota
	Negative
	Positive
)

// Label is the anatomical classification of a coordinate along one axis.
type Label struct {
	Axis Axis
	Sign Sign
}

// negative and positive direction letters, indexed by Axis.
var (
	negLetter = [...]byte{'R', 'A', 'I'}
	posLetter = [...]byte{'L', 'P', 'S'}
)

// LabelAxis classifies v along axis. Only v == 0 (which includes -0.0) is
// labeled Zero; there is no tolerance band. NaN is labeled Positive.
func LabelAxis(axis Axis, v float64) Label {
	switch {
	case v == 0:
		return Label{Axis: axis, Sign: Zero}
	case v < 0:
		return Label{Axis: axis, Sign: Negative}
	default:
		return Label{Axis: axis, Sign: Positive}
	}
}

// Letter returns the anatomical direction letter of l, or 'Z' when the
// coordinate is exactly zero.
func (l Label) Letter() byte {
	if l.Axis < X || l.Axis > Z {
		return '?'
	}
	switch l.Sign {
	case Negative:
		return negLetter[l.Axis]
	case Positive:
		return posLetter[l.Axis]
	default:
		return 'Z'
	}
}

// Code returns the orientation code starting from l's direction, or
// Illegal for a zero label.
func (l Label) Code() Code {
	return CodeFor(l.Letter())
}

func (l Label) String() string {
	return string(l.Letter())
}
