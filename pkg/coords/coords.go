// Package coords converts voxel indices of a dataset into anatomical
// coordinates in the x=R->L, y=A->P, z=I->S order and labels each
// coordinate with its anatomical side.
package coords

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"anatorient/internal/models"
	"anatorient/pkg/orientation"
)

// ErrOutOfBounds is returned for a voxel index outside the grid
var ErrOutOfBounds = errors.New("voxel index out of bounds")

// Point is a labeled anatomical coordinate in mm
type Point struct {
	XYZ    [3]float64
	Labels [3]orientation.Label
}

// NewPoint labels the coordinate (x, y, z)
func NewPoint(x, y, z float64) Point {
	return Point{
		XYZ: [3]float64{x, y, z},
		Labels: [3]orientation.Label{
			orientation.LabelAxis(orientation.X, x),
			orientation.LabelAxis(orientation.Y, y),
			orientation.LabelAxis(orientation.Z, z),
		},
	}
}

// Format renders p with the given number of decimals, e.g.
// "12.000 [L]  -3.500 [A]  0.000 [Z]".
func (p Point) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}
	parts := make([]string, 3)
	for i := range parts {
		parts[i] = fmt.Sprintf("%.*f [%c]", precision, p.XYZ[i], p.Labels[i].Letter())
	}
	return strings.Join(parts, "  ")
}

func (p Point) String() string {
	return p.Format(3)
}

// Permutation returns the 3x3 matrix taking per-grid-axis offsets to
// x, y, z order. Row a has a single 1 in the column of the grid axis
// whose code belongs to pair a.
func Permutation(f orientation.Frame) (*mat.Dense, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	p := mat.NewDense(3, 3, nil)
	for col, c := range f {
		p.Set(int(c.Pair()), col, 1)
	}
	return p, nil
}

// Locate returns the labeled coordinate of the centre of voxel (i, j, k).
// The signed voxel sizes carry the direction, so the offsets along each
// grid axis are only reordered, never negated.
func Locate(ds models.Dataset, i, j, k int) (Point, error) {
	idx := [3]int{i, j, k}
	for a, n := range idx {
		if n < 0 || n >= ds.Dims[a] {
			return Point{}, fmt.Errorf("%w: index %d on axis %d (size %d)", ErrOutOfBounds, n, a+1, ds.Dims[a])
		}
	}

	frame, err := orientation.ParseFrame(ds.Orient)
	if err != nil {
		return Point{}, fmt.Errorf("dataset %q: %w", ds.Name, err)
	}
	perm, err := Permutation(frame)
	if err != nil {
		return Point{}, err
	}

	offsets := mat.NewVecDense(3, nil)
	for a := 0; a < 3; a++ {
		offsets.SetVec(a, ds.Origin[a]+ds.Delta[a]*float64(idx[a]))
	}
	var xyz mat.VecDense
	xyz.MulVec(perm, offsets)

	return NewPoint(xyz.AtVec(0), xyz.AtVec(1), xyz.AtVec(2)), nil
}
