package mathsets

import (
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/mathset"
)

// tieDecimals is the precision distances are rounded to before two boundaries are compared.
const tieDecimals = 3

// roundDistance rounds the decimal expansion of |d|, so 1.2345 (stored as 1.23449...) gives 1.234.
func roundDistance(d float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(math.Abs(d), 'f', tieDecimals, 64), 64)
	return r
}

// locate finds point in the sorted intersection atoms, or the nearest boundary around it.
func locate(point float64, atoms []mathset.Atom) (mathset.Affiliation, error) {
	if len(atoms) == 0 {
		return mathset.Affiliation{}, ErrEmptyIntersection
	}
	if math.IsNaN(point) || math.IsInf(point, 0) {
		return mathset.Affiliation{}, errors.WithMessagef(ErrInvalidPoint, "%v", point)
	}

	idx := sort.Search(len(atoms), func(i int) bool {
		return atoms[i].SortKey() >= point
	})

	for _, i := range []int{idx - 1, idx} {
		if i >= 0 && i < len(atoms) && atoms[i].Contains(point) {
			return contained(point), nil
		}
	}

	switch idx {
	case 0:
		return nearest(atoms[0].Start().Float()), nil
	case len(atoms):
		return nearest(atoms[len(atoms)-1].End().Float()), nil
	}

	below := atoms[idx-1].End().Float()
	above := atoms[idx].Start().Float()

	dBelow, dAbove := roundDistance(point-below), roundDistance(above-point)
	switch {
	case dBelow < dAbove:
		return nearest(below), nil
	case dBelow > dAbove:
		return nearest(above), nil
	}
	return nearest(below, above), nil
}

func contained(point float64) mathset.Affiliation {
	return mathset.Affiliation{Contained: true, Values: []float64{point}}
}

func nearest(values ...float64) mathset.Affiliation {
	return mathset.Affiliation{Values: values}
}
