// Package orientation encodes the anatomical orientation of a voxel grid's
// three axes. It provides the letter-to-code mapping, the frame validity
// check and the sign-based labeling of coordinates along the canonical x, y
// and z axes. Every function in this package is pure and safe for concurrent
// use.
package orientation

// Code identifies the anatomical direction a grid axis runs along. The
// letter names the side the axis starts from: R2L runs from Right to Left.
//
// The numeric values match those stored in legacy dataset headers, so
// Code(n)/2 is the opposed pair a valid code belongs to.
type Code int

const (
	R2L Code = iota
	L2R
	P2A
	A2P
	I2S
	S2I

	// Illegal marks a token that is not an orientation letter.
	Illegal Code = 7
)

// Pair identifies one of the three opposed direction pairs.
type Pair int

const (
	PairNone Pair = iota - 1
	PairRL
	PairAP
	PairIS
)

var pairNames = [...]string{"R/L", "A/P", "I/S"}

func (p Pair) String() string {
	if p < PairRL || p > PairIS {
		return "none"
	}
	return pairNames[p]
}

// CodeFor returns the code whose starting side is named by letter.
// Matching is exact: lowercase letters are Illegal.
func CodeFor(letter byte) Code {
	switch letter {
	case 'R':
		return R2L
	case 'L':
		return L2R
	case 'P':
		return P2A
	case 'A':
		return A2P
	case 'I':
		return I2S
	case 'S':
		return S2I
	default:
		return Illegal
	}
}

// Valid reports whether c is one of the six anatomical codes.
func (c Code) Valid() bool {
	return c >= R2L && c <= S2I
}

// Pair returns the opposed pair c belongs to, or PairNone for Illegal.
func (c Code) Pair() Pair {
	if !c.Valid() {
		return PairNone
	}
	return Pair(c / 2)
}

// Opposite returns the other code in the same pair.
func (c Code) Opposite() Code {
	if !c.Valid() {
		return Illegal
	}
	return c ^ 1
}

// Letter returns the single-letter token for c, '?' for Illegal.
func (c Code) Letter() byte {
	if !c.Valid() {
		return '?'
	}
	return "RLPAIS"[c]
}

func (c Code) String() string {
	if !c.Valid() {
		return "Illegal"
	}
	return [...]string{"R2L", "L2R", "P2A", "A2P", "I2S", "S2I"}[c]
}

// Vector returns the unit direction of c in the x=R->L, y=A->P, z=I->S
// basis. Illegal yields the zero vector.
func (c Code) Vector() [3]float64 {
	var v [3]float64
	if !c.Valid() {
		return v
	}
	axis := c.Pair()
	// Within each pair the even code runs towards +x, +y or +z, except the
	// A/P pair where P2A (even) runs towards -y.
	positive := c%2 == 0
	if axis == PairAP {
		positive = !positive
	}
	if positive {
		v[axis] = 1
	} else {
		v[axis] = -1
	}
	return v
}
