package sobol

import (
	"github.com/pkg/errors"

	"github.com/phil-mansfield/lowdisc/rand"
)

const (
	// Bits is the word width of the direction integers and of the raw
	// sequence values. It bounds the tabulated polynomial degrees and
	// fixes the normalization constant.
	Bits = 32

	normalization = 0x1p-32
)

// buildDirectionIntegers computes the full direction integer table
// v[k][l] for k in [0, dim) and l in [0, Bits). The first degree-many
// entries of each dimension come from the scheme's seed table, or from a
// Mersenne-Twister stream seeded with seed when the dimension is beyond
// the scheme's tabulated range. The remaining entries follow from the
// shift-XOR recurrence of the dimension's primitive polynomial.
func buildDirectionIntegers(
	dim int, scheme Scheme, seed uint64,
) ([][Bits]uint32, error) {
	if dim <= 0 {
		return nil, errors.Errorf("Dimensionality %d is not positive.", dim)
	} else if dim > MaxDimension {
		return nil, errors.Errorf(
			"Dimensionality %d is larger than the %d dimensions with "+
				"tabulated primitive polynomials.", dim, MaxDimension,
		)
	}

	v := make([][Bits]uint32, dim)

	// Dimension 0 has no free positions: its direction integers are the
	// powers of two and its coordinate stream is the van der Corput
	// sequence in base 2.
	for l := 0; l < Bits; l++ { v[0][l] = 1 << uint(Bits-1-l) }

	rows, tabulated := scheme.initializers()
	var gen *rand.Generator

	for k := 1; k < dim; k++ {
		deg := int(polynomialDegrees[k])

		// Seed the free positions. A seed m for position l must be odd
		// and smaller than 2^(l+1); it lands in the l+1 leftmost bits.
		switch {
		case scheme == Unit:
			for l := 0; l < deg; l++ { v[k][l] = 1 << uint(Bits-1-l) }
		case k < tabulated:
			row := rows[k-1]
			for l := 0; l < deg; l++ {
				v[k][l] = row[l] << uint(Bits-1-l)
			}
		default:
			if gen == nil { gen = rand.New(rand.MersenneTwister, seed) }
			for l := 0; l < deg; l++ {
				m := uint32(0)
				for m & 1 == 0 {
					u := gen.Uniform(0, 1)
					m = uint32(u * float64(uint64(1)<<uint(l+1)))
				}
				v[k][l] = m << uint(Bits-1-l)
			}
		}

		// Extend to the full word width. Walking the interior coefficient
		// bits of the primitive polynomial from x^(deg-1) down to x^1,
		// XOR in v[k][l-z] for each set bit, then fold in v[k][l-deg] and
		// its right shift. Entry l only depends on entries below it.
		ppmt := polynomials[k]
		for l := deg; l < Bits; l++ {
			n := v[k][l-deg] >> uint(deg)
			n ^= v[k][l-deg]
			for z := 1; z < deg; z++ {
				if (ppmt>>uint(deg-z-1)) & 1 == 1 { n ^= v[k][l-z] }
			}
			v[k][l] = n
		}
	}

	return v, nil
}
