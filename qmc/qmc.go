/*package qmc provides quasi-Monte-Carlo mean-value integration over the
unit hypercube. It estimates the integral of f over [0,1)^dim as the mean
of f across the points of a low-discrepancy sequence, and accepts plain
pseudo-random generators through the same interface for comparison runs.
*/
package qmc

import (
	"github.com/pkg/errors"

	"github.com/phil-mansfield/lowdisc/rand"
)

// PointSource yields successive points in [0,1)^dim. *sobol.Sequence
// satisfies it directly.
type PointSource interface {
	Dimension() int
	NextAt(target []float64) error
}

type uniformSource struct {
	gen *rand.Generator
	dim int
}

func (src *uniformSource) Dimension() int { return src.dim }

func (src *uniformSource) NextAt(target []float64) error {
	src.gen.UniformAt(0, 1, target)
	return nil
}

// UniformSource adapts a uniform pseudo-random generator to a dim
// dimensional PointSource, so plain Monte Carlo estimates can run through
// Integrate unchanged.
func UniformSource(gen *rand.Generator, dim int) PointSource {
	return &uniformSource{gen, dim}
}

// Integrate estimates the integral of f over [0,1)^dim as the mean of f
// at n successive points of src. It fails if n is not positive or if src
// cannot supply n points.
func Integrate(src PointSource, f func(x []float64) float64, n int) (float64, error) {
	if n <= 0 {
		return 0, errors.Errorf("Sample count %d is not positive.", n)
	}

	x := make([]float64, src.Dimension())
	sum := 0.0
	for i := 0; i < n; i++ {
		if err := src.NextAt(x); err != nil {
			return 0, errors.Wrapf(err, "draw %d of %d failed", i, n)
		}
		sum += f(x)
	}

	return sum / float64(n), nil
}
