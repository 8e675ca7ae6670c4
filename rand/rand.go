/*package rand provides implementations of various types of uniform pseudo
random number generators. They are used throughout lowdisc as seed sources
and as plain-Monte-Carlo baselines for the quasi-random sequences in the
sobol package.

Here are some usage examples for these generators.

	// Generate a single value
	gen := New(Xorshift, 1337)
	x := gen.Uniform(3, 7)

	// Multiple random floats (faster)
	xs := make([]float64, 100)
	gen.UniformAt(3, 7, xs)

	// Random int
	y := gen.UniformInt(3, 7)

	// Use the time as a seed
	gen2 := NewTimeSeed(Xorshift)

Four types of generators are provided. Xorshift is very fast, Tausworthe is
slower (especially at start up) but is a better generator, MersenneTwister
is the classic 32-bit MT19937 and is what the sobol package uses to seed
direction integers for untabulated dimensions, and Golang is a wrapper
around Go's standard library generator.
*/
package rand

import (
	"math"
	"time"
)

// DefaultBufSize is a reasonable target length for calls to UniformAt.
const DefaultBufSize = 1 << 10

// generatorBackend is an interface which is used by the generators to supply
// the functionality needed for top-level functions like Uniform().
type generatorBackend interface {
	Init(seed uint64)
	Next() float64
	NextSequence(target []float64)
}

// Generator is a random number generator.
type Generator struct {
	backend generatorBackend
}

// GeneratorType is a flag used to indicate the desired algorithm
// for a random number generator.
type GeneratorType uint8

const (
	Xorshift GeneratorType = iota
	Golang
	Tausworthe
	MersenneTwister
)

// NewTimeSeed returns a new random number generator that uses the current
// time as the seed.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

// New returns a new random number generator.
func New(gt GeneratorType, seed uint64) *Generator {
	var backend generatorBackend

	switch gt {
	case Xorshift:
		backend = new(xorshiftGenerator)
	case Golang:
		backend = new(golangGenerator)
	case Tausworthe:
		backend = new(tauswortheGenerator)
	case MersenneTwister:
		backend = new(mersenneGenerator)
	default:
		panic("Unrecognized GeneratorType")
	}

	backend.Init(seed)
	gen := &Generator{backend}
	return gen
}

// UniformInt returns an integer uniformly at random within in the
// range [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	f := gen.backend.Next()
	return int(math.Floor(float64(high-low)*f + float64(low)))

}

// Uniform returns a float uniformly at random within the range [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.backend.Next()
	}
	return (gen.backend.Next() * (high - low)) + low
}

// UniformAt writes floats generated uniformly at random in the range
// [low, high) to every element in a target slice. This is generally faster
// than calling Uniform the corresponding number of times.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	gen.backend.NextSequence(target)
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}
