package sobol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstDraw(t *testing.T) {
	schemes := []Scheme{Unit, Recipes, Jaeckel, Levitan, Kuo}
	for _, scheme := range schemes {
		seq, err := New(5, scheme, 42)
		require.NoError(t, err)

		xs, err := seq.NextIntegers()
		require.NoError(t, err)
		for k := 0; k < 5; k++ {
			require.Equal(t, seq.directions[k][0], xs[k])
		}
		// Dimension 0's first draw is always the midpoint.
		require.Equal(t, uint32(1)<<31, xs[0])
	}
}

// The degenerate dimension 0 walks the base-2 van der Corput sequence, so
// its first raw draws can be checked bit by bit.
func TestDimensionZeroScenario(t *testing.T) {
	seq, err := New(1, Unit, 0)
	require.NoError(t, err)

	want := []uint32{
		1 << 31,
		(1 << 31) | (1 << 30),
		1 << 30,
	}
	for i, w := range want {
		xs, err := seq.NextIntegers()
		require.NoError(t, err)
		require.Equal(t, w, xs[0], "draw %d", i)
	}
}

func TestDeterminism(t *testing.T) {
	// Recipes only tabulates 6 nondegenerate dimensions, so dim 20 also
	// exercises the Mersenne-Twister fallback path.
	for _, scheme := range []Scheme{Jaeckel, Recipes} {
		a, err := New(20, scheme, 99)
		require.NoError(t, err)
		b, err := New(20, scheme, 99)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			xa, err := a.NextIntegers()
			require.NoError(t, err)
			xb, err := b.NextIntegers()
			require.NoError(t, err)
			require.Equal(t, xa, xb, "draw %d of scheme %v", i, scheme)
		}
	}
}

func TestSkipToMatchesSequentialDraws(t *testing.T) {
	for _, n := range []uint32{0, 1, 2, 3, 4, 31, 32, 1000} {
		a, err := New(6, Kuo, 0)
		require.NoError(t, err)
		b, err := New(6, Kuo, 0)
		require.NoError(t, err)

		for i := uint32(0); i <= n; i++ {
			_, err := a.NextIntegers()
			require.NoError(t, err)
		}
		require.NoError(t, b.SkipTo(n))

		require.Equal(t, a.counter, b.counter, "counter after skip to %d", n)
		require.Equal(t, a.integers, b.integers, "state after skip to %d", n)

		// Both must continue identically.
		xa, err := a.NextIntegers()
		require.NoError(t, err)
		xb, err := b.NextIntegers()
		require.NoError(t, err)
		require.Equal(t, xa, xb, "draw %d", n+1)
	}
}

func TestBoundedRange(t *testing.T) {
	seq, err := New(8, Jaeckel, 0)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		x, err := seq.Next()
		require.NoError(t, err)
		for k, c := range x {
			require.True(t, c >= 0 && c < 1,
				"draw %d coordinate %d is %g", i, k, c)
		}
	}
}

func TestExhaustion(t *testing.T) {
	seq, err := New(1, Unit, 0)
	require.NoError(t, err)

	require.NoError(t, seq.SkipTo(math.MaxUint32-1))
	_, err = seq.NextIntegers()
	require.Error(t, err)

	// Exhaustion is permanent, not transient.
	_, err = seq.Next()
	require.Error(t, err)

	require.Error(t, seq.SkipTo(math.MaxUint32))
}

func TestNextAtLengthMismatch(t *testing.T) {
	seq, err := New(3, Unit, 0)
	require.NoError(t, err)
	require.Error(t, seq.NextAt(make([]float64, 2)))
}

func TestNewRejectsBadDimensionality(t *testing.T) {
	for _, dim := range []int{0, -1, MaxDimension + 1} {
		_, err := New(dim, Jaeckel, 0)
		require.Error(t, err, "dim %d", dim)
	}

	seq, err := New(MaxDimension, Jaeckel, 0)
	require.NoError(t, err)
	require.Equal(t, MaxDimension, seq.Dimension())
}

func TestParseScheme(t *testing.T) {
	for _, scheme := range []Scheme{Unit, Recipes, Jaeckel, Levitan, Kuo} {
		parsed, err := ParseScheme(scheme.String())
		require.NoError(t, err)
		require.Equal(t, scheme, parsed)
	}
	_, err := ParseScheme("halton")
	require.Error(t, err)
}

func BenchmarkNew6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = New(6, Jaeckel, 0)
	}
}

func BenchmarkNext6(b *testing.B) {
	seq, _ := New(6, Jaeckel, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = seq.Next()
	}
}

func BenchmarkNextAt6(b *testing.B) {
	seq, _ := New(6, Jaeckel, 0)
	vec := make([]float64, 6)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.NextAt(vec)
	}
}
