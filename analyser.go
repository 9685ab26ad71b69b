package mathsets

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostafen/mathsets/mathset"
)

var (
	// ErrEmptyIntersection means the sets share no common region. It is an expected outcome, not a failure of the input.
	ErrEmptyIntersection = errors.New("the math sets have no intersection")

	ErrAllSetsInfinite = mathset.ErrAllSetsInfinite

	ErrInvalidPoint = errors.New("the point must be a finite real number")
)

// Analyser computes intersections of math sets and the affiliation of points to them.
// It holds no state between calls.
type Analyser struct {
	cfg *Config
	log *zap.Logger
}

// New creates an analyser configured by opts.
func New(opts ...Option) (*Analyser, error) {
	cfg, err := defaultConfig().applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Analyser{cfg: cfg, log: cfg.Logger}, nil
}

// ComputeIntersection returns the sorted atoms common to every set. It fails with
// ErrEmptyIntersection when there are none and with ErrAllSetsInfinite when two or more
// sets are all (-inf, +inf).
func (a *Analyser) ComputeIntersection(sets []*mathset.MathSet) ([]mathset.Atom, error) {
	atoms, err := a.intersect(sets)
	if err != nil {
		a.log.Debug("intersection failed", zap.Int("sets", len(sets)), zap.Error(err))
		return nil, err
	}

	a.log.Debug("intersection computed",
		zap.Int("sets", len(sets)),
		zap.String("atoms", mathset.Format(atoms)))
	return atoms, nil
}

// ComputeAffiliation locates point in a sorted intersection as returned by ComputeIntersection.
func (a *Analyser) ComputeAffiliation(point float64, atoms []mathset.Atom) (mathset.Affiliation, error) {
	res, err := locate(point, atoms)
	if err != nil {
		return res, err
	}

	a.log.Debug("affiliation computed",
		zap.Float64("point", point),
		zap.Bool("contained", res.Contained),
		zap.Float64s("values", res.Values))
	return res, nil
}

var defaultAnalyser = &Analyser{cfg: defaultConfig(), log: zap.NewNop()}

// Intersect computes the intersection of sets with the default configuration.
func Intersect(sets ...*mathset.MathSet) ([]mathset.Atom, error) {
	return defaultAnalyser.ComputeIntersection(sets)
}

// Locate computes the affiliation of point to a sorted intersection.
func Locate(point float64, atoms []mathset.Atom) (mathset.Affiliation, error) {
	return defaultAnalyser.ComputeAffiliation(point, atoms)
}
