package mathset

import (
	"github.com/emirpasic/gods/v2/sets/treeset"
)

// Frame is the reference endpoint collection shared by all sets taking part in one intersection:
// every real endpoint of every set, in ascending order.
type Frame struct {
	endpoints []float64
	index     map[float64]int
}

// NewFrame collects the real endpoints of sets. It fails with ErrAllSetsInfinite
// when there are none, i.e. every set is (-inf, +inf).
func NewFrame(sets ...*MathSet) (*Frame, error) {
	all := treeset.New[float64]()
	for _, s := range sets {
		all.Add(s.Endpoints()...)
	}

	if all.Empty() {
		return nil, ErrAllSetsInfinite
	}

	f := &Frame{
		endpoints: all.Values(),
		index:     make(map[float64]int, all.Size()),
	}
	for i, e := range f.endpoints {
		f.index[e] = i
	}
	return f, nil
}

func (f *Frame) Min() float64 { return f.endpoints[0] }

func (f *Frame) Max() float64 { return f.endpoints[len(f.endpoints)-1] }

func (f *Frame) Endpoints() []float64 {
	return append([]float64(nil), f.endpoints...)
}

// Decompose splits the closed range [start, end] at every reference endpoint it covers:
// (a, d) over {a, b, c, d} gives (a, b), a, (b, c), b, (c, d), c, d.
// Both bounds must be reference endpoints.
func (f *Frame) Decompose(start, end float64) []Atom {
	i, j := f.index[start], f.index[end]

	atoms := make([]Atom, 0, 2*(j-i)+1)
	for k := i; k < j; k++ {
		atoms = append(atoms, Range(f.endpoints[k], f.endpoints[k+1]), Point(f.endpoints[k]))
	}
	return append(atoms, Point(f.endpoints[j]))
}

// Normalize re-expresses the atoms of s against the frame. Infinite bounds are clamped to the
// frame's min and max before decomposition, and the unbounded tails are added back afterwards as
// (-inf, min) and (max, +inf), so that two sets normalized against the same frame can be
// intersected atom by atom.
func (s *MathSet) Normalize(f *Frame) []Atom {
	normalized := make([]Atom, 0, len(s.Atoms))
	for _, a := range s.Atoms {
		if a.IsPoint() {
			normalized = append(normalized, a)
			continue
		}

		start, end := f.Min(), f.Max()
		if a.start.IsFinite() {
			start = a.start.value
		}
		if a.end.IsFinite() {
			end = a.end.value
		}
		normalized = append(normalized, f.Decompose(start, end)...)
	}

	if s.NegInf {
		normalized = append(normalized, Interval(NegativeInfinity, Num(f.Min())))
	}
	if s.PosInf {
		normalized = append(normalized, Interval(Num(f.Max()), PositiveInfinity))
	}

	s.normalized = normalized
	return normalized
}
