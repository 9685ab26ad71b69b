package mathsets

import (
	"github.com/ostafen/mathsets/mathset"
)

type valueRange struct {
	start, end mathset.Endpoint
	point      bool
}

func rangeOf(atom mathset.Atom) *valueRange {
	return &valueRange{start: atom.Start(), end: atom.End(), point: atom.IsPoint()}
}

func (r *valueRange) atom() mathset.Atom {
	if r.point {
		return mathset.Point(r.start.Float())
	}
	return mathset.Interval(r.start, r.end)
}

// touches reports whether r2, which must not start before r1, overlaps r1 or shares its end.
func (r1 *valueRange) touches(r2 *valueRange) bool {
	return mathset.Compare(r2.start, r1.end) <= 0
}

// union extends r1 over r2. The caller checks that the two touch.
func (r1 *valueRange) union(r2 *valueRange) *valueRange {
	union := &valueRange{
		start: r1.start,
		end:   r1.end,
		point: r1.point && r2.point,
	}

	if mathset.Compare(r2.start, union.start) < 0 {
		union.start = r2.start
	}
	if mathset.Compare(r2.end, union.end) > 0 {
		union.end = r2.end
	}
	return union
}

// coalesce merges sorted atoms that overlap or share a bound.
func coalesce(atoms []mathset.Atom) []mathset.Atom {
	if len(atoms) == 0 {
		return atoms
	}

	merged := make([]mathset.Atom, 0, len(atoms))
	curr := rangeOf(atoms[0])
	for _, atom := range atoms[1:] {
		next := rangeOf(atom)
		if curr.touches(next) {
			curr = curr.union(next)
			continue
		}
		merged = append(merged, curr.atom())
		curr = next
	}
	return append(merged, curr.atom())
}
