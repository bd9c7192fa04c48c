// Package header validates the geometry of volumetric dataset headers. It
// decides whether a bad orientation or grid description is a recoverable
// dataset error, which clears the dataset's OK flag, or a fatal one, which is
// returned to the caller to act on.
package header

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"anatorient/internal/models"
	"anatorient/pkg/orientation"
)

// ErrFatal wraps every error returned by a strict Validator
var ErrFatal = errors.New("fatal dataset error")

// Status is the outcome of validating one dataset
type Status struct {
	Name     string
	OK       bool
	Frame    orientation.Frame
	Errors   []string
	Warnings []string
}

// Validator checks dataset headers
type Validator struct {
	// Strict turns the first dataset error into a returned ErrFatal
	Strict bool

	reporter Reporter
}

// NewValidator creates a validator that reports diagnostics to reporter.
// A nil reporter discards them.
func NewValidator(reporter Reporter, strict bool) *Validator {
	if reporter == nil {
		reporter = NewZapReporter(nil)
	}
	return &Validator{Strict: strict, reporter: reporter}
}

// Validate checks ds and sets ds.OK accordingly. In non-strict mode errors
// are reported and collected in the returned Status and the error is nil.
// In strict mode the first error is returned wrapped in ErrFatal.
func (v *Validator) Validate(ds *models.Dataset) (Status, error) {
	st := Status{Name: ds.Name, OK: true}
	ds.OK = true

	// A Validator built as a literal has no reporter.
	reporter := v.reporter
	if reporter == nil {
		reporter = NewZapReporter(nil)
	}

	fail := func(cause error) error {
		st.OK = false
		ds.OK = false
		st.Errors = append(st.Errors, cause.Error())
		if v.Strict {
			return fmt.Errorf("%w: dataset %q: %w", ErrFatal, ds.Name, cause)
		}
		reporter.DatasetError(ds.Name, cause.Error())
		return nil
	}
	warn := func(msg string) {
		st.Warnings = append(st.Warnings, msg)
		reporter.DatasetWarning(ds.Name, msg)
	}

	if ds.Name == "" {
		warn("dataset has no name")
	}

	frame, err := orientation.ParseFrame(ds.Orient)
	st.Frame = frame
	if err != nil {
		if ferr := fail(err); ferr != nil {
			return st, ferr
		}
	}

	for i, n := range ds.Dims {
		if n <= 0 {
			if ferr := fail(fmt.Errorf("axis %d has %d voxels", i+1, n)); ferr != nil {
				return st, ferr
			}
		}
	}

	for i, d := range ds.Delta {
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			if ferr := fail(fmt.Errorf("axis %d has voxel size %g", i+1, d)); ferr != nil {
				return st, ferr
			}
			continue
		}
		if frame.Valid() {
			vec := frame[i].Vector()
			if math.Signbit(d) != math.Signbit(vec[frame[i].Pair()]) {
				warn(fmt.Sprintf("axis %d voxel size %g runs against orientation %v", i+1, d, frame[i]))
			}
		}
	}

	return st, nil
}

// ValidateAll validates datasets concurrently using up to workers
// goroutines. Each dataset's OK flag is updated in place. The first fatal
// error cancels the remaining work and is returned.
func (v *Validator) ValidateAll(ctx context.Context, datasets []models.Dataset, workers int) ([]Status, error) {
	if workers < 1 {
		workers = 1
	}
	statuses := make([]Status, len(datasets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range datasets {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st, err := v.Validate(&datasets[i])
			statuses[i] = st
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return statuses, err
	}
	if err := ctx.Err(); err != nil {
		return statuses, err
	}
	return statuses, nil
}
