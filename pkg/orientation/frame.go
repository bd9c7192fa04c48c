package orientation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidFrame is matched by every *FrameError.
	ErrInvalidFrame = errors.New("invalid anatomical frame")

	// ErrDegenerateAxis is returned by FromMatrix for a zero direction column.
	ErrDegenerateAxis = errors.New("degenerate axis direction")
)

// IsValidFrame reports whether the three codes take exactly one code from
// each opposed pair. Any Illegal code makes the frame invalid.
func IsValidFrame(c1, c2, c3 Code) bool {
	var seen uint8
	for _, c := range [3]Code{c1, c2, c3} {
		p := c.Pair()
		if p == PairNone {
			return false
		}
		seen |= 1 << p
	}
	return seen == 0b111
}

// FrameError describes why a triple of codes is not a valid frame.
type FrameError struct {
	Codes [3]Code

	// Illegal holds the zero-based axis positions carrying Illegal.
	Illegal []int

	// Duplicated holds pairs used by more than one axis.
	Duplicated []Pair

	// Missing holds pairs no axis uses.
	Missing []Pair
}

func (e *FrameError) Error() string {
	var parts []string
	if len(e.Illegal) > 0 {
		parts = append(parts, fmt.Sprintf("illegal code on axis %v", e.Illegal))
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, fmt.Sprintf("pair used twice %v", e.Duplicated))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("pair missing %v", e.Missing))
	}
	return fmt.Sprintf("%s %s: %s", ErrInvalidFrame, Frame(e.Codes), strings.Join(parts, "; "))
}

// Is lets errors.Is match any FrameError against ErrInvalidFrame.
func (e *FrameError) Is(target error) bool {
	return target == ErrInvalidFrame
}

// CheckFrame is IsValidFrame with a diagnostic: it returns nil for a valid
// frame and a *FrameError otherwise.
func CheckFrame(c1, c2, c3 Code) error {
	codes := [3]Code{c1, c2, c3}
	var count [3]int
	var fe FrameError

	for i, c := range codes {
		p := c.Pair()
		if p == PairNone {
			fe.Illegal = append(fe.Illegal, i)
			continue
		}
		count[p]++
	}
	for p, n := range count {
		switch {
		case n == 0:
			fe.Missing = append(fe.Missing, Pair(p))
		case n > 1:
			fe.Duplicated = append(fe.Duplicated, Pair(p))
		}
	}

	if fe.Illegal == nil && fe.Missing == nil && fe.Duplicated == nil {
		return nil
	}
	fe.Codes = codes
	return &fe
}

// Frame is the ordered orientation codes of grid axes 1, 2 and 3.
type Frame [3]Code

// ParseFrame parses a three-letter orientation string such as "RAI".
// Letters are matched exactly; the result is validated.
func ParseFrame(s string) (Frame, error) {
	if len(s) != 3 {
		return Frame{Illegal, Illegal, Illegal}, fmt.Errorf("%w: orientation %q must have 3 letters", ErrInvalidFrame, s)
	}
	f := Frame{CodeFor(s[0]), CodeFor(s[1]), CodeFor(s[2])}
	if err := f.Check(); err != nil {
		return f, err
	}
	return f, nil
}

// Valid reports whether f is a valid anatomical frame.
func (f Frame) Valid() bool {
	return IsValidFrame(f[0], f[1], f[2])
}

// Check returns a *FrameError describing what is wrong with f, or nil.
func (f Frame) Check() error {
	return CheckFrame(f[0], f[1], f[2])
}

func (f Frame) String() string {
	return string([]byte{f[0].Letter(), f[1].Letter(), f[2].Letter()})
}

// Matrix returns the 3x3 matrix whose columns are the unit vectors of the
// three grid axes in the x=R->L, y=A->P, z=I->S basis.
func (f Frame) Matrix() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	for col, c := range f {
		v := c.Vector()
		for row := 0; row < 3; row++ {
			m.Set(row, col, v[row])
		}
	}
	return m
}

// Handedness classifies the coordinate system spanned by a frame.
type Handedness int

const (
	Degenerate Handedness = iota
	RightHanded
	LeftHanded
)

func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "right-handed"
	case LeftHanded:
		return "left-handed"
	default:
		return "degenerate"
	}
}

// Handedness returns the handedness of f relative to the x=R->L, y=A->P,
// z=I->S basis, in which RAI is right-handed.
func (f Frame) Handedness() Handedness {
	if !f.Valid() {
		return Degenerate
	}
	switch d := mat.Det(f.Matrix()); {
	case d > 0:
		return RightHanded
	case d < 0:
		return LeftHanded
	default:
		return Degenerate
	}
}

// Plane names the slice plane normal to grid axis (0, 1 or 2).
func (f Frame) Plane(axis int) string {
	if axis < 0 || axis > 2 {
		return ""
	}
	switch f[axis].Pair() {
	case PairRL:
		return "sagittal"
	case PairAP:
		return "coronal"
	case PairIS:
		return "axial"
	default:
		return ""
	}
}

// AllFrames returns the 48 valid frames: every assignment of the three pairs
// to the three axes, with each of the two directions per pair.
func AllFrames() []Frame {
	frames := make([]Frame, 0, 48)
	for a := R2L; a <= S2I; a++ {
		for b := R2L; b <= S2I; b++ {
			for c := R2L; c <= S2I; c++ {
				if IsValidFrame(a, b, c) {
					frames = append(frames, Frame{a, b, c})
				}
			}
		}
	}
	return frames
}

// FromMatrix derives the frame of a grid from its 3x3 direction-cosine
// matrix, whose column j is the direction of grid axis j in the x=R->L,
// y=A->P, z=I->S basis. Each column is assigned the code of its dominant
// component; ties go to the lower axis.
func FromMatrix(m mat.Matrix) (Frame, error) {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return Frame{Illegal, Illegal, Illegal}, fmt.Errorf("direction matrix must be 3x3, got %dx%d", r, c)
	}

	var f Frame
	for col := 0; col < 3; col++ {
		dominant, best := X, 0.0
		for row := 0; row < 3; row++ {
			if v := math.Abs(m.At(row, col)); v > best {
				dominant, best = Axis(row), v
			}
		}
		if best == 0 {
			return Frame{Illegal, Illegal, Illegal}, fmt.Errorf("%w: column %d", ErrDegenerateAxis, col)
		}
		// The code letter names the side the axis runs away from, which is
		// the label of the negated direction.
		f[col] = LabelAxis(dominant, -m.At(int(dominant), col)).Code()
	}

	if err := f.Check(); err != nil {
		return f, err
	}
	return f, nil
}
