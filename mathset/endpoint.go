package mathset

import (
	"math"

	"github.com/ostafen/mathsets/literal"
)

type endpointKind uint8

const (
	finite endpointKind = iota
	negInf
	posInf
)

// Endpoint is a bound of an interval: a real number or one of the two infinity sentinels.
type Endpoint struct {
	kind  endpointKind
	value float64
}

var (
	NegativeInfinity = Endpoint{kind: negInf}
	PositiveInfinity = Endpoint{kind: posInf}
)

// Num returns the endpoint for v. Infinite values map to the matching sentinel.
func Num(v float64) Endpoint {
	switch {
	case math.IsInf(v, -1):
		return NegativeInfinity
	case math.IsInf(v, 1):
		return PositiveInfinity
	}
	return Endpoint{value: v}
}

func (e Endpoint) IsFinite() bool { return e.kind == finite }

func (e Endpoint) IsNegInf() bool { return e.kind == negInf }

func (e Endpoint) IsPosInf() bool { return e.kind == posInf }

// Float returns the numeric value of e, with sentinels mapped to ±math.Inf.
func (e Endpoint) Float() float64 {
	switch e.kind {
	case negInf:
		return math.Inf(-1)
	case posInf:
		return math.Inf(1)
	}
	return e.value
}

func (e Endpoint) Equal(other Endpoint) bool {
	return Compare(e, other) == 0
}

func (e Endpoint) String() string {
	return literal.FormatNumber(e.Float())
}

func (e Endpoint) rank() int {
	switch e.kind {
	case negInf:
		return -1
	case posInf:
		return 1
	}
	return 0
}

// Compare orders endpoints as NegativeInfinity < every real < PositiveInfinity.
func Compare(a, b Endpoint) int {
	if res := a.rank() - b.rank(); res != 0 {
		return res
	}
	if a.kind != finite {
		return 0
	}

	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	}
	return 0
}
