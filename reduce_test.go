package mathsets

import (
	"math"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ostafen/mathsets/mathset"
)

var inf = math.Inf(1)

func parseSets(t *testing.T, literals ...string) []*mathset.MathSet {
	t.Helper()

	sets := make([]*mathset.MathSet, 0, len(literals))
	for i, src := range literals {
		s, err := mathset.Parse("math set "+strconv.Itoa(i+1), src)
		require.NoError(t, err, src)
		sets = append(sets, s)
	}
	return sets
}

func runAnalyserTest(t *testing.T, test func(t *testing.T, a *Analyser), opts ...Option) {
	a, err := New(append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)

	test(t, a)
}

func TestIntersectAllKindsOfSets(t *testing.T) {
	runAnalyserTest(t, func(t *testing.T, a *Analyser) {
		sets := parseSets(t,
			"[(-inf, +inf)]",
			"[(-inf, -10.37), (10.41, +inf)]",
			"[(-inf, 99.4)]",
			"[(-98, +inf)]",
			"[(-inf, -32.08), (-17, 22.2), (54, 57)]",
			"[(-inf, -41), (-18, 24), (51, 62), (103, +inf)]",
			"[(-89.11, -61.07), (-24.9, +inf)]",
			"[(-77, 54), 61.04]",
			"[(-89, -61), (-43, -12), (10, 27), (61, 72)]",
		)

		atoms, err := a.ComputeIntersection(sets)
		require.NoError(t, err)
		require.Equal(t, []mathset.Atom{
			mathset.Range(-77, -61.07),
			mathset.Range(-17, -12),
			mathset.Range(10.41, 22.2),
		}, atoms)
	})
}

func TestIntersectNumericSets(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-18, 24), (-75, -41), (51, 62)]",
		"[(-77, 61)]",
		"[(-89, -61), (61, 72), (-43, -12)]",
	)...)
	require.NoError(t, err)
	require.Equal(t, "[(-75, -61), (-43, -41), (-18, -12), 61]", mathset.Format(atoms))
}

func TestIntersectSemiInfiniteSets(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-89, -61), (-12, +inf)]",
		"[(-97, +inf)]",
		"[(-inf, +inf)]",
	)...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Range(-89, -61), mathset.Range(-12, inf)}, atoms)
}

func TestIntersectSetsWithPoints(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-89, 17.8), 24, (25, +inf)]",
		"[(-97, 2), (9.9, 24), (36.1, +inf)]",
		"[-77, -29, 42.7, (51.1, +inf)]",
	)...)
	require.NoError(t, err)
	require.Equal(t, "[-77, -29, 42.7, (51.1, +inf)]", mathset.Format(atoms))
}

func TestIntersectTwoClosestEndpointsSets(t *testing.T) {
	atoms, err := Intersect(parseSets(t,
		"[(-inf, -10), (10, +inf)]",
		"[(-77, 61)]",
		"[(-89, -61), (-43, -12), (10, 27), (61, 72)]",
	)...)
	require.NoError(t, err)
	require.Equal(t, "[(-77, -61), (-43, -12), (10, 27), 61]", mathset.Format(atoms))
}

func TestIntersectWithoutIntersection(t *testing.T) {
	runAnalyserTest(t, func(t *testing.T, a *Analyser) {
		_, err := a.ComputeIntersection(parseSets(t,
			"[(-89, -61), (102, +inf)]",
			"[(-57, 35)]",
			"[(-2, 16), (61, 72)]",
		))
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrEmptyIntersection))
	})
}

func TestIntersectOneSet(t *testing.T) {
	atoms, err := Intersect(parseSets(t, "[(10, 12), (-25, -10)]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Range(-25, -10), mathset.Range(10, 12)}, atoms)

	atoms, err = Intersect(parseSets(t, "[(-inf, +inf)]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.WholeLine()}, atoms)

	// duplicate points and points on interval bounds are dropped
	atoms, err = Intersect(parseSets(t, "[5, (1, 5), 5, 7]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Range(1, 5), mathset.Point(7)}, atoms)
}

func TestIntersectOneSetWithNestedAtoms(t *testing.T) {
	own, err := Intersect(parseSets(t, "[(0, 100), (10, 20)]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Range(0, 10), mathset.Range(10, 20), mathset.Range(20, 100)}, own)

	self, err := Intersect(parseSets(t, "[(0, 100), (10, 20)]", "[(0, 100), (10, 20)]")...)
	require.NoError(t, err)
	require.Equal(t, self, own)

	res, err := Locate(50, own)
	require.NoError(t, err)
	require.True(t, res.Contained)
	require.Equal(t, []float64{50}, res.Values)

	own, err = Intersect(parseSets(t, "[(-inf, 5), (3, +inf)]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Range(-inf, 3), mathset.Range(3, 5), mathset.Range(5, inf)}, own)
}

func TestIntersectAllSetsInfinite(t *testing.T) {
	_, err := Intersect(parseSets(t, "[(-inf, +inf)]", "[(-inf, +inf)]", "[(-inf, +inf)]")...)
	require.True(t, errors.Is(err, ErrAllSetsInfinite))
}

func TestIntersectNoSets(t *testing.T) {
	_, err := Intersect()
	require.True(t, errors.Is(err, mathset.ErrEmptySet))
}

func TestIntersectWholeLineWithPoint(t *testing.T) {
	atoms, err := Intersect(parseSets(t, "[(-inf, +inf)]", "[5]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Point(5)}, atoms)
}

func TestIntersectKeepsInfiniteTails(t *testing.T) {
	atoms, err := Intersect(parseSets(t, "[(-inf, 5)]", "[(-inf, 10), (20, 30)]")...)
	require.NoError(t, err)
	// the frame starts at 5, so only the tail survives
	require.Equal(t, []mathset.Atom{mathset.Range(-inf, 5)}, atoms)

	atoms, err = Intersect(parseSets(t, "[(-inf, 5)]", "[(-inf, 10)]", "[(0, 1)]")...)
	require.NoError(t, err)
	require.Equal(t, []mathset.Atom{mathset.Range(0, 1)}, atoms)
}

func TestIntersectCoalesceAdjacent(t *testing.T) {
	sets := func() []*mathset.MathSet {
		return parseSets(t, "[(0, 10)]", "[(-5, 20)]", "[(0, 10), (2, 3)]")
	}

	atoms, err := Intersect(sets()...)
	require.NoError(t, err)
	require.Equal(t, "[(0, 2), (2, 3), (3, 10)]", mathset.Format(atoms))

	runAnalyserTest(t, func(t *testing.T, a *Analyser) {
		atoms, err := a.ComputeIntersection(sets())
		require.NoError(t, err)
		require.Equal(t, []mathset.Atom{mathset.Range(0, 10)}, atoms)
	}, CoalesceAdjacent(true))
}

func TestSuppressDuplicates(t *testing.T) {
	atoms := []mathset.Atom{
		mathset.Range(-77, -61), mathset.Point(-77), mathset.Point(-61),
		mathset.Point(61), mathset.Point(61),
		mathset.Range(10, inf), mathset.Point(10),
	}

	once := SuppressDuplicates(atoms)
	require.Equal(t, []mathset.Atom{mathset.Range(-77, -61), mathset.Point(61), mathset.Range(10, inf)}, once)
	require.Equal(t, once, SuppressDuplicates(once))
}

func TestNewWithNilLogger(t *testing.T) {
	_, err := New(WithLogger(nil))
	require.Error(t, err)
}
