package mathsets

import (
	"github.com/emirpasic/gods/v2/sets/linkedhashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostafen/mathsets/mathset"
)

// intersect folds sets left to right into their common atoms.
// A single set is split at its own endpoints, so overlapping atoms come out disjoint.
func (a *Analyser) intersect(sets []*mathset.MathSet) ([]mathset.Atom, error) {
	switch len(sets) {
	case 0:
		return nil, errors.WithMessage(mathset.ErrEmptySet, "nothing to intersect")
	case 1:
		return a.split(sets[0])
	}

	frame, err := mathset.NewFrame(sets...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("reference frame built",
		zap.Int("endpoints", len(frame.Endpoints())),
		zap.Float64("min", frame.Min()),
		zap.Float64("max", frame.Max()))

	normalized := make([][]mathset.Atom, len(sets))
	for i, s := range sets {
		normalized[i] = s.Normalize(frame)
	}

	acc := linkedhashset.New(normalized[0]...)
	for i := 1; i < len(sets); i++ {
		acc = intersectAtoms(acc, normalized[i])
		a.log.Debug("intersected math set",
			zap.String("set", sets[i].Name),
			zap.Int("atoms", acc.Size()))

		if acc.Empty() {
			return nil, errors.WithMessagef(ErrEmptyIntersection, "no common range after math set %q", sets[i].Name)
		}
	}

	result := SuppressDuplicates(acc.Values())
	mathset.Sort(result)
	if a.cfg.CoalesceAdjacent {
		result = coalesce(result)
	}
	return result, nil
}

// split normalizes s against its own endpoints. The whole line has none and is kept as is.
func (a *Analyser) split(s *mathset.MathSet) ([]mathset.Atom, error) {
	if s.IsWholeLine() {
		return []mathset.Atom{mathset.WholeLine()}, nil
	}

	frame, err := mathset.NewFrame(s)
	if err != nil {
		return nil, err
	}
	a.log.Debug("reference frame built",
		zap.String("set", s.Name),
		zap.Int("endpoints", len(frame.Endpoints())))

	atoms := SuppressDuplicates(s.Normalize(frame))
	mathset.Sort(atoms)
	return atoms, nil
}

// intersectAtoms keeps the atoms of acc that also appear in atoms. Both sides must have been
// normalized against the same frame, so equal regions are made of equal atoms.
func intersectAtoms(acc *linkedhashset.Set[mathset.Atom], atoms []mathset.Atom) *linkedhashset.Set[mathset.Atom] {
	other := linkedhashset.New(atoms...)

	common := linkedhashset.New[mathset.Atom]()
	for _, atom := range acc.Values() {
		if other.Contains(atom) {
			common.Add(atom)
		}
	}
	return common
}

// SuppressDuplicates drops repeated atoms and every point lying on a bound of one of the
// intervals, keeping the order of first appearance.
func SuppressDuplicates(atoms []mathset.Atom) []mathset.Atom {
	bounds := make(map[mathset.Endpoint]struct{})
	for _, atom := range atoms {
		if atom.IsInterval() {
			bounds[atom.Start()] = struct{}{}
			bounds[atom.End()] = struct{}{}
		}
	}

	unique := linkedhashset.New[mathset.Atom]()
	for _, atom := range atoms {
		if atom.IsPoint() {
			if _, onBound := bounds[atom.Start()]; onBound {
				continue
			}
		}
		unique.Add(atom)
	}
	return unique.Values()
}
