package mathsets

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ostafen/mathsets/mathset"
)

var (
	infiniteIntersection = []mathset.Atom{
		mathset.Range(-inf, -674.37),
		mathset.Range(10.41, 22.2),
		mathset.Range(103, inf),
	}
	numericIntersection = []mathset.Atom{
		mathset.Range(-589, -65),
		mathset.Point(-55),
		mathset.Range(-17.02, -12.05),
		mathset.Range(12.05, 22.2),
	}
)

func TestLocateInfiniteIntersection(t *testing.T) {
	points := []float64{-782, -674.37, -505, 17.02, 62.6, 98.9, 103, 145.9}
	expected := [][]float64{{-782}, {-674.37}, {-674.37}, {17.02}, {22.2, 103}, {103}, {103}, {145.9}}

	for i, point := range points {
		res, err := Locate(point, infiniteIntersection)
		require.NoError(t, err)
		require.Equal(t, expected[i], res.Values, "point %v", point)
	}
}

func TestLocateNumericIntersection(t *testing.T) {
	points := []float64{-600, -374.98, -55, -17.02, 0, 19.74, 45}
	expected := [][]float64{{-589}, {-374.98}, {-55}, {-17.02}, {-12.05, 12.05}, {19.74}, {22.2}}
	contained := []bool{false, true, true, true, false, true, false}

	for i, point := range points {
		res, err := Locate(point, numericIntersection)
		require.NoError(t, err)
		require.Equal(t, expected[i], res.Values, "point %v", point)
		require.Equal(t, contained[i], res.Contained, "point %v", point)
	}
}

func TestLocateTwoClosestEndpoints(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-inf, -10), (10, +inf)]",
		"[(-77, 61)]",
		"[(-89, -61), (-43, -12), (10, 27), (61, 72)]",
	)...)
	require.NoError(t, err)

	res, err := Locate(-1, atoms)
	require.NoError(t, err)
	require.False(t, res.Contained)
	require.Equal(t, []float64{-12, 10}, res.Values)
	require.Equal(t, "[-12, 10]", res.String())
}

func TestLocateSemiInfiniteSets(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-89, -61), (-12, +inf)]",
		"[(-57, +inf)]",
		"[(-inf, +inf)]",
	)...)
	require.NoError(t, err)

	res, err := Locate(-1.09, atoms)
	require.NoError(t, err)
	require.Equal(t, mathset.Affiliation{Contained: true, Values: []float64{-1.09}}, res)

	res, err = Locate(-15.01, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{-12}, res.Values)
}

func TestLocateNumericSets(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-89, -61), (-12, 28)]",
		"[(-57, 35)]",
		"[(-2, 16), (61, 72)]",
	)...)
	require.NoError(t, err)

	res, err := Locate(8.51, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{8.51}, res.Values)

	res, err = Locate(19.34, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{16}, res.Values)
}

func TestLocateIntersectionPoint(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-89, 17.8), 24, (25, +inf)]",
		"[(-97, 2), (9.9, 24), (36.1, +inf)]",
		"[-77, -29, 42.7, (51.1, +inf)]",
	)...)
	require.NoError(t, err)

	res, err := Locate(42.7, atoms)
	require.NoError(t, err)
	require.Equal(t, mathset.Affiliation{Contained: true, Values: []float64{42.7}}, res)

	res, err = Locate(-50, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{-29}, res.Values)
}

func TestLocateTieRounding(t *testing.T) {
	atoms := []mathset.Atom{mathset.Range(0, 0.1), mathset.Range(0.3, 1)}

	// 0.2 - 0.1 and 0.3 - 0.2 differ only by floating point noise
	res, err := Locate(0.2, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.3}, res.Values)

	res, err = Locate(0.1994, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1}, res.Values)

	// 1.2345 is slightly below its decimal form, so it rounds down to 1.234 and wins over 1.235
	res, err = Locate(0, []mathset.Atom{mathset.Range(-5, -1.2345), mathset.Range(1.235, 5)})
	require.NoError(t, err)
	require.False(t, res.Contained)
	require.Equal(t, []float64{-1.2345}, res.Values)
}

func TestLocateEdges(t *testing.T) {
	atoms := []mathset.Atom{mathset.Point(-3), mathset.Range(1, 2)}

	res, err := Locate(-100, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{-3}, res.Values)

	res, err = Locate(100, atoms)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, res.Values)

	res, err = Locate(-3, atoms)
	require.NoError(t, err)
	require.True(t, res.Contained)
}

func TestLocateErrors(t *testing.T) {
	_, err := Locate(1, nil)
	require.True(t, errors.Is(err, ErrEmptyIntersection))

	_, err = Locate(math.NaN(), numericIntersection)
	require.True(t, errors.Is(err, ErrInvalidPoint))

	_, err = Locate(inf, numericIntersection)
	require.True(t, errors.Is(err, ErrInvalidPoint))
}
