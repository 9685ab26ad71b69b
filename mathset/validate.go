package mathset

import (
	"math"
	"strings"

	"github.com/ostafen/mathsets/literal"
)

type rule struct {
	kind  error
	check func(elem literal.Value, set literal.Value) bool
}

// rules are applied in order; each rule looks at every element before the next one runs.
var rules = []rule{
	{ErrWholeLineConflict, func(elem, set literal.Value) bool {
		return len(set.Items) > 1 && isWholeLine(elem)
	}},
	{ErrBadAtomType, func(elem, _ literal.Value) bool {
		if elem.Kind == literal.KindTuple {
			return false
		}
		return elem.Kind != literal.KindNumber || math.IsInf(elem.Num, 0) || math.IsNaN(elem.Num)
	}},
	{ErrWrongArity, func(elem, _ literal.Value) bool {
		return elem.Kind == literal.KindTuple && len(elem.Items) != 2
	}},
	{ErrInvalidSemiInfinite, func(elem, _ literal.Value) bool {
		if elem.Kind != literal.KindTuple {
			return false
		}
		start, okStart := bound(elem.Items[0])
		end, okEnd := bound(elem.Items[1])
		return !okStart || !okEnd || end.IsNegInf() || start.IsPosInf()
	}},
	{ErrNonIncreasing, func(elem, _ literal.Value) bool {
		if elem.Kind != literal.KindTuple {
			return false
		}
		start, _ := bound(elem.Items[0])
		end, _ := bound(elem.Items[1])
		return start.IsFinite() && end.IsFinite() && start.value >= end.value
	}},
}

// Validate checks that raw is a well formed math set: a non-empty list of real numbers and
// pairs of endpoints. The first violated rule is reported as a *ValidationError.
func Validate(name string, raw literal.Value) error {
	if raw.IsEmpty() {
		return &ValidationError{Set: name, Atoms: raw.String(), Kind: ErrEmptySet}
	}
	if raw.Kind != literal.KindList {
		return &ValidationError{Set: name, Atoms: raw.String(), Kind: ErrNotAList}
	}

	for _, r := range rules {
		for _, elem := range raw.Items {
			if r.check(elem, raw) {
				return &ValidationError{Set: name, Atoms: raw.String(), Kind: r.kind}
			}
		}
	}
	return nil
}

// bound converts a tuple element into an endpoint. Besides numbers, the strings
// "-inf", "+inf" and "inf" are accepted as sentinels.
func bound(v literal.Value) (Endpoint, bool) {
	switch v.Kind {
	case literal.KindNumber:
		if math.IsNaN(v.Num) {
			return Endpoint{}, false
		}
		return Num(v.Num), true
	case literal.KindString:
		switch strings.ToLower(strings.TrimSpace(v.Str)) {
		case "-inf":
			return NegativeInfinity, true
		case "+inf", "inf":
			return PositiveInfinity, true
		}
	}
	return Endpoint{}, false
}

func isWholeLine(elem literal.Value) bool {
	if elem.Kind != literal.KindTuple || len(elem.Items) != 2 {
		return false
	}
	start, okStart := bound(elem.Items[0])
	end, okEnd := bound(elem.Items[1])
	return okStart && okEnd && start.IsNegInf() && end.IsPosInf()
}

// atomsOf converts a validated literal into atoms.
func atomsOf(raw literal.Value) []Atom {
	atoms := make([]Atom, 0, len(raw.Items))
	for _, elem := range raw.Items {
		if elem.Kind == literal.KindNumber {
			atoms = append(atoms, Point(elem.Num))
			continue
		}
		start, _ := bound(elem.Items[0])
		end, _ := bound(elem.Items[1])
		atoms = append(atoms, Interval(start, end))
	}
	return atoms
}
