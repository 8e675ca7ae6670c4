/*package sobol implements a Sobol-type generator of low-discrepancy point
sequences in [0,1)^dim. Successive points cover the unit hypercube far
more uniformly than pseudo-random draws do, which makes them the natural
drop-in for the mean-value estimates in the qmc package.

Here are some usage examples.

	// Draw normalized points
	seq, err := sobol.New(2, sobol.Jaeckel, 42)
	if err != nil { ... }
	for i := 0; i < 1000; i++ {
		x, err := seq.Next()
		...
	}

	// Jump directly to draw one million
	err = seq.SkipTo(1000 * 1000)

A Sequence is deterministic: the same dimensionality, scheme, and seed
always reproduce the same draws. It is not safe for concurrent use.
*/
package sobol

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// Sequence is a stateful Sobol sequence generator. The immutable direction
// integer table is computed once by New; after that the only state is the
// per-dimension accumulator and the draw counter, advanced by a single XOR
// per dimension per draw via the Gray code of the counter.
type Sequence struct {
	dim        int
	directions [][Bits]uint32
	integers   []uint32
	points     []float64
	counter    uint32
	firstDraw  bool
}

// New returns a Sequence over [0,1)^dim using the given initialization
// scheme. seed only matters for dimensions beyond the scheme's tabulated
// range, where it seeds the Mersenne-Twister stream that fills in the
// free direction integers. It fails if dim is not positive or exceeds
// MaxDimension.
func New(dim int, scheme Scheme, seed uint64) (*Sequence, error) {
	directions, err := buildDirectionIntegers(dim, scheme, seed)
	if err != nil { return nil, err }

	return &Sequence{
		dim:        dim,
		directions: directions,
		integers:   make([]uint32, dim),
		points:     make([]float64, dim),
		firstDraw:  true,
	}, nil
}

// Dimension returns the number of coordinates per draw.
func (seq *Sequence) Dimension() int { return seq.dim }

// NextIntegers advances the sequence by one draw and returns the raw
// Bits-wide coordinates. The returned slice aliases internal state and is
// overwritten by the next call: copy it if it needs to outlive the call.
// It fails only when the sequence is exhausted.
func (seq *Sequence) NextIntegers() ([]uint32, error) {
	if seq.firstDraw {
		for k := 0; k < seq.dim; k++ {
			seq.integers[k] = seq.directions[k][0]
		}
		seq.firstDraw = false
		seq.counter = 1
		return seq.integers, nil
	}

	if seq.counter == math.MaxUint32 {
		return nil, errors.Errorf(
			"Sequence exhausted after %d draws.", uint64(math.MaxUint32),
		)
	}

	// The counter's trailing ones give the single bit position in which
	// the Gray codes of counter and counter+1 differ, so one XOR per
	// dimension replaces the full O(Bits) Gray expansion.
	j := 0
	for n := seq.counter; n & 1 == 1; n >>= 1 { j++ }

	for k := 0; k < seq.dim; k++ {
		seq.integers[k] ^= seq.directions[k][j]
	}
	seq.counter++

	return seq.integers, nil
}

// Next advances the sequence by one draw and returns the point's
// coordinates, each in [0,1). The returned slice aliases internal state,
// like NextIntegers.
func (seq *Sequence) Next() ([]float64, error) {
	if err := seq.NextAt(seq.points); err != nil { return nil, err }
	return seq.points, nil
}

// NextAt is equivalent to Next, except the point is written to target,
// whose length must equal the sequence's dimensionality.
func (seq *Sequence) NextAt(target []float64) error {
	if len(target) != seq.dim {
		return errors.Errorf(
			"Target length %d does not equal dimensionality %d.",
			len(target), seq.dim,
		)
	}

	xs, err := seq.NextIntegers()
	if err != nil { return err }

	for k, x := range xs { target[k] = float64(x) * normalization }
	return nil
}

// SkipTo moves the sequence directly to the state it would have after
// drawing the 0-based draw index skip, so the next call to NextIntegers
// returns draw skip+1. The accumulator is rebuilt from the Gray code of
// skip+1 in O(dim log skip) time, independent of the current state.
// SkipTo(0) is identical to a single natural draw.
func (seq *Sequence) SkipTo(skip uint32) error {
	if skip == math.MaxUint32 {
		return errors.Errorf(
			"Cannot skip to draw %d: sequence is exhausted.", uint64(skip),
		)
	}

	n := skip + 1
	gray := n ^ (n >> 1)
	ops := bits.Len32(n)

	for k := 0; k < seq.dim; k++ {
		x := uint32(0)
		for i := 0; i < ops; i++ {
			if (gray>>uint(i)) & 1 == 1 { x ^= seq.directions[k][i] }
		}
		seq.integers[k] = x
	}

	seq.counter = n
	seq.firstDraw = false
	return nil
}
