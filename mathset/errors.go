package mathset

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptySet            = errors.New("no data for math set")
	ErrNotAList            = errors.New("math set is not represented as a list of ranges and points")
	ErrWholeLineConflict   = errors.New("math set must not contain any other ranges if (-inf, +inf) is given")
	ErrBadAtomType         = errors.New("math ranges and points must be given as pairs and real numbers")
	ErrWrongArity          = errors.New("math range must contain two endpoints")
	ErrInvalidSemiInfinite = errors.New("semi-infinite math range must be given as (-inf, 12) or (23, +inf)")
	ErrNonIncreasing       = errors.New("start point of a math range must be less than its end point")

	// ErrAllSetsInfinite is returned when no set has a real endpoint to build a reference frame from.
	ErrAllSetsInfinite = errors.New("all math sets are infinite: (-inf, +inf)")
)

// ValidationError describes why an input math set was rejected.
// Kind is one of the Err* validation sentinels, so errors.Is can match it.
type ValidationError struct {
	Set   string
	Atoms string
	Kind  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("math set %q: %s: %s", e.Set, e.Kind, e.Atoms)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
