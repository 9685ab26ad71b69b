package mathset

import (
	"math"
	"sort"
	"strings"

	"github.com/ostafen/mathsets/literal"
)

// Atom is the unit of a math set: either a point or a closed interval with start < end.
type Atom struct {
	interval   bool
	start, end Endpoint
}

// Point returns the atom made of the single value v.
func Point(v float64) Atom {
	e := Num(v)
	return Atom{start: e, end: e}
}

// Interval returns the closed interval between start and end.
func Interval(start, end Endpoint) Atom {
	return Atom{interval: true, start: start, end: end}
}

// Range is a shorthand for Interval accepting ±math.Inf as sentinels.
func Range(start, end float64) Atom {
	return Interval(Num(start), Num(end))
}

// WholeLine is the interval (-inf, +inf).
func WholeLine() Atom {
	return Interval(NegativeInfinity, PositiveInfinity)
}

func (a Atom) IsPoint() bool { return !a.interval }

func (a Atom) IsInterval() bool { return a.interval }

// Start returns the lower bound of an interval, or the value of a point.
func (a Atom) Start() Endpoint { return a.start }

// End returns the upper bound of an interval, or the value of a point.
func (a Atom) End() Endpoint { return a.end }

func (a Atom) IsWholeLine() bool {
	return a.interval && a.start.IsNegInf() && a.end.IsPosInf()
}

// SortKey is the start of the atom when it is numeric, its finite bound for a semi-infinite
// interval, and the value itself for a point.
func (a Atom) SortKey() float64 {
	if !a.start.IsFinite() && a.end.IsFinite() {
		return a.end.value
	}
	return a.start.Float()
}

// Contains reports whether v lies on the atom, bounds included.
func (a Atom) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	p := Num(v)
	return Compare(a.start, p) <= 0 && Compare(p, a.end) <= 0
}

func (a Atom) Equal(b Atom) bool {
	return a.interval == b.interval && a.start.Equal(b.start) && a.end.Equal(b.end)
}

// Literal converts the atom into its literal form: a number or a pair.
func (a Atom) Literal() literal.Value {
	if !a.interval {
		return literal.Number(a.start.Float())
	}
	return literal.Tuple(literal.Number(a.start.Float()), literal.Number(a.end.Float()))
}

func (a Atom) String() string {
	return a.Literal().String()
}

// Format renders atoms as a literal list, e.g. [(-77, -61.07), 42.7].
func Format(atoms []Atom) string {
	parts := make([]string, 0, len(atoms))
	for _, a := range atoms {
		parts = append(parts, a.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Sort orders atoms by SortKey. Equal keys are ordered by start, then by end,
// so (-inf, x) comes before (x, y) and a point x before an interval starting at x.
func Sort(atoms []Atom) {
	sort.SliceStable(atoms, func(i, j int) bool {
		a, b := atoms[i], atoms[j]
		if ka, kb := a.SortKey(), b.SortKey(); ka != kb {
			return ka < kb
		}
		if res := Compare(a.start, b.start); res != 0 {
			return res < 0
		}
		return Compare(a.end, b.end) < 0
	})
}

// Literal converts atoms into a literal list.
func Literal(atoms []Atom) literal.Value {
	items := make([]literal.Value, 0, len(atoms))
	for _, a := range atoms {
		items = append(items, a.Literal())
	}
	return literal.List(items...)
}
