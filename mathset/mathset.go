package mathset

import (
	"github.com/emirpasic/gods/v2/sets/treeset"

	"github.com/ostafen/mathsets/literal"
)

// MathSet is a named union of atoms read from a data source.
type MathSet struct {
	Name  string
	Atoms []Atom

	// NegInf and PosInf record that some atom of the set was unbounded on that side.
	NegInf, PosInf bool

	endpoints  *treeset.Set[float64]
	normalized []Atom
}

// New validates atoms and builds a math set out of them.
func New(name string, atoms ...Atom) (*MathSet, error) {
	return FromLiteral(name, Literal(atoms))
}

// MustNew is like New but panics on invalid input.
func MustNew(name string, atoms ...Atom) *MathSet {
	s, err := New(name, atoms...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromLiteral validates a parsed literal and converts it into a math set.
func FromLiteral(name string, raw literal.Value) (*MathSet, error) {
	if err := Validate(name, raw); err != nil {
		return nil, err
	}
	return newMathSet(name, atomsOf(raw)), nil
}

// Parse reads a math set written in literal syntax, e.g. "[(-inf, -10), 5, (10, +inf)]".
func Parse(name, src string) (*MathSet, error) {
	raw, err := literal.Parse(src)
	if err != nil {
		return nil, err
	}
	return FromLiteral(name, raw)
}

func newMathSet(name string, atoms []Atom) *MathSet {
	s := &MathSet{
		Name:      name,
		Atoms:     atoms,
		endpoints: treeset.New[float64](),
	}

	for _, a := range atoms {
		for _, e := range []Endpoint{a.start, a.end} {
			switch {
			case e.IsNegInf():
				s.NegInf = true
			case e.IsPosInf():
				s.PosInf = true
			default:
				s.endpoints.Add(e.value)
			}
		}
	}
	return s
}

// Endpoints returns the real endpoints of the set, interval bounds and points, in ascending order.
func (s *MathSet) Endpoints() []float64 {
	return s.endpoints.Values()
}

// IsWholeLine reports whether the set is the single atom (-inf, +inf).
func (s *MathSet) IsWholeLine() bool {
	return len(s.Atoms) == 1 && s.Atoms[0].IsWholeLine()
}

// Normalized returns the atoms computed by the last call to Normalize, or nil.
func (s *MathSet) Normalized() []Atom {
	return s.normalized
}

func (s *MathSet) String() string {
	return s.Name + ": " + Format(s.Atoms)
}
