package sobol

import (
	"strings"

	"github.com/pkg/errors"
)

// Scheme is a flag used to indicate the desired set of initial direction
// integers for a Sequence. Schemes differ only in which seed values fill
// the free positions of the direction integer table: the recurrence and
// the draw logic are identical for all of them.
type Scheme uint8

const (
	// Unit seeds every free position with 1. It is tabulated for every
	// supported dimension, so it never falls back to a random seed source.
	Unit Scheme = iota
	// Recipes uses the classic 6-dimension seed set from Press et al.
	Recipes
	// Jaeckel uses the 32-dimension seed set from Jaeckel's book.
	Jaeckel
	// Levitan uses a 40-dimension Sobol-Levitan style seed set.
	Levitan
	// Kuo uses a seed set in the style of Joe and Kuo covering the full
	// tabulated polynomial range.
	Kuo
)

func (s Scheme) String() string {
	switch s {
	case Unit: return "unit"
	case Recipes: return "recipes"
	case Jaeckel: return "jaeckel"
	case Levitan: return "levitan"
	case Kuo: return "kuo"
	}
	panic("Unrecognized Scheme")
}

// ParseScheme converts a scheme name, as returned by String, back into a
// Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "unit": return Unit, nil
	case "recipes": return Recipes, nil
	case "jaeckel": return Jaeckel, nil
	case "levitan": return Levitan, nil
	case "kuo": return Kuo, nil
	}
	return 0, errors.Errorf("Unknown initialization scheme %q.", name)
}

// initializers returns the seed rows of the scheme and the number of
// dimensions they cover, counting the degenerate dimension 0. Row k-1
// holds the seeds for dimension k, one per free position of that
// dimension's polynomial degree. Unit returns a nil table: its seeds are
// all 1 and cover every dimension.
func (s Scheme) initializers() ([][]uint32, int) {
	switch s {
	case Unit: return nil, MaxDimension
	case Recipes: return recipesInitializers, len(recipesInitializers) + 1
	case Jaeckel: return jaeckelInitializers, len(jaeckelInitializers) + 1
	case Levitan: return levitanInitializers, len(levitanInitializers) + 1
	case Kuo: return kuoInitializers, len(kuoInitializers) + 1
	}
	panic("Unrecognized Scheme")
}

// The seed tables below are pure data: row k-1 lists one small odd
// integer per free position of dimension k, with the value at position l
// smaller than 2^(l+1). The builder checks nothing about where a row came
// from, only that it satisfies this contract.

// From the 6-dimension table in Press et al. 2007.
var recipesInitializers = [][]uint32{
	{1},
	{1, 1},
	{1, 3, 7},
	{1, 3, 3},
	{1, 1, 3, 13},
	{1, 1, 5, 9},
}

var jaeckelInitializers = [][]uint32{
	{1},
	{1, 1},
	{1, 3, 7},
	{1, 1, 5},
	{1, 3, 1, 1},
	{1, 1, 3, 7},
	{1, 3, 3, 9, 9},
	{1, 3, 7, 13, 3},
	{1, 1, 5, 11, 27},
	{1, 3, 5, 1, 15},
	{1, 1, 7, 3, 29},
	{1, 3, 7, 7, 21},
	{1, 1, 1, 9, 23, 37},
	{1, 3, 3, 5, 19, 33},
	{1, 1, 3, 13, 11, 7},
	{1, 1, 7, 13, 25, 5},
	{1, 3, 5, 11, 7, 11},
	{1, 1, 1, 3, 13, 39},
	{1, 3, 1, 15, 17, 63, 13},
	{1, 1, 5, 5, 1, 27, 33},
	{1, 3, 3, 3, 25, 17, 115},
	{1, 1, 3, 15, 29, 15, 41},
	{1, 3, 1, 7, 3, 23, 79},
	{1, 3, 7, 9, 31, 29, 17},
	{1, 1, 5, 13, 11, 3, 29},
	{1, 3, 1, 9, 5, 21, 119},
	{1, 1, 3, 1, 23, 13, 75},
	{1, 3, 3, 11, 27, 31, 73},
	{1, 1, 7, 7, 19, 25, 105},
	{1, 3, 5, 5, 21, 9, 7},
	{1, 1, 1, 15, 5, 49, 59},
}

var levitanInitializers = [][]uint32{
	{1},
	{1, 1},
	{1, 1, 3},
	{1, 3, 5},
	{1, 1, 5, 7},
	{1, 3, 7, 11},
	{1, 1, 1, 3, 23},
	{1, 3, 3, 11, 7},
	{1, 1, 5, 9, 19},
	{1, 3, 7, 5, 31},
	{1, 1, 3, 15, 13},
	{1, 3, 1, 7, 25},
	{1, 1, 5, 3, 9, 47},
	{1, 3, 3, 13, 21, 57},
	{1, 1, 7, 11, 29, 3},
	{1, 3, 5, 1, 17, 41},
	{1, 1, 1, 9, 27, 55},
	{1, 3, 7, 15, 5, 23},
	{1, 1, 3, 5, 19, 45, 97},
	{1, 3, 5, 13, 31, 9, 61},
	{1, 1, 7, 3, 11, 53, 29},
	{1, 3, 1, 11, 23, 35, 89},
	{1, 1, 5, 15, 7, 17, 111},
	{1, 3, 3, 7, 29, 59, 43},
	{1, 1, 1, 13, 15, 37, 123},
	{1, 3, 7, 9, 3, 49, 67},
	{1, 1, 3, 3, 25, 11, 19},
	{1, 3, 5, 11, 9, 63, 101},
	{1, 1, 7, 5, 21, 29, 71},
	{1, 3, 1, 15, 13, 43, 5},
	{1, 1, 5, 7, 27, 21, 85},
	{1, 3, 3, 9, 17, 51, 39},
	{1, 1, 1, 1, 31, 7, 93},
	{1, 3, 7, 13, 19, 33, 127},
	{1, 1, 3, 11, 5, 61, 51},
	{1, 3, 5, 3, 23, 15, 77},
	{1, 1, 7, 15, 11, 39, 63, 177},
	{1, 3, 1, 5, 29, 55, 107, 219},
	{1, 1, 5, 9, 7, 27, 91, 133},
}

var kuoInitializers = [][]uint32{
	{1},
	{1, 3},
	{1, 3, 1},
	{1, 1, 1},
	{1, 1, 3, 3},
	{1, 3, 5, 13},
	{1, 1, 5, 5, 17},
	{1, 1, 5, 5, 5},
	{1, 1, 7, 11, 19},
	{1, 1, 5, 1, 1},
	{1, 1, 1, 3, 11},
	{1, 3, 5, 5, 31},
	{1, 3, 3, 9, 7, 49},
	{1, 1, 1, 15, 21, 21},
	{1, 3, 1, 13, 27, 49},
	{1, 1, 1, 15, 7, 5},
	{1, 3, 1, 15, 13, 25},
	{1, 1, 5, 5, 19, 61},
	{1, 3, 7, 11, 23, 15, 103},
	{1, 3, 7, 13, 13, 15, 69},
	{1, 1, 3, 13, 7, 35, 63},
	{1, 3, 5, 9, 1, 25, 53},
	{1, 3, 1, 13, 9, 35, 107},
	{1, 3, 1, 5, 27, 61, 31},
	{1, 1, 5, 11, 19, 41, 61},
	{1, 3, 5, 3, 3, 13, 69},
	{1, 1, 7, 13, 1, 19, 1},
	{1, 3, 7, 5, 13, 19, 59},
	{1, 1, 3, 9, 25, 29, 41},
	{1, 3, 5, 13, 23, 1, 55},
	{1, 3, 7, 3, 13, 59, 17},
	{1, 3, 1, 3, 5, 53, 69},
	{1, 1, 5, 5, 23, 33, 13},
	{1, 1, 7, 7, 1, 61, 123},
	{1, 1, 7, 9, 13, 61, 49},
	{1, 3, 3, 5, 3, 55, 33},
	{1, 3, 1, 15, 31, 13, 49, 245},
	{1, 3, 5, 15, 31, 59, 63, 97},
	{1, 3, 1, 11, 31, 17, 53, 171},
	{1, 3, 5, 5, 31, 33, 61, 51},
	{1, 1, 7, 11, 13, 29, 3, 175},
	{1, 3, 3, 13, 27, 57, 97, 63},
	{1, 1, 1, 9, 9, 47, 117, 205},
	{1, 3, 7, 7, 21, 7, 25, 9},
	{1, 1, 5, 3, 29, 59, 75, 249},
	{1, 3, 1, 11, 7, 23, 55, 117},
	{1, 1, 3, 15, 19, 45, 105, 31},
	{1, 3, 5, 1, 15, 11, 71, 157},
	{1, 1, 7, 5, 5, 63, 47, 199},
	{1, 3, 3, 3, 25, 51, 15, 141},
	{1, 1, 1, 13, 17, 37, 89, 87},
	{1, 3, 7, 9, 11, 21, 123, 223},
}
