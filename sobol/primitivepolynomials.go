package sobol

// MaxDimension is dimension 0 plus the number of dimensions with a
// tabulated primitive polynomial. Requesting more dimensions than this is
// a construction error: the recurrence needs one primitive polynomial per
// dimension and there is no way to make one up on the fly.
const MaxDimension = 53

// Primitive polynomials modulo two, grouped by degree. Each entry packs
// the interior coefficients of one polynomial: the leading and trailing
// coefficients are always one and are not stored, so a degree-g polynomial
// is encoded in g-1 bits. For example x^5 + x^2 + 1 has interior
// coefficients (0,0,1,0) reading from x^4 down to x^1, which packs to 2.
//
// Degree 0 has no polynomials; it is reserved for the degenerate
// dimension 0, whose direction integers are plain powers of two.
var primitivePolynomialsByDegree = [...][]uint32{
	1: {0},
	2: {1},
	3: {1, 2},
	4: {1, 4},
	5: {2, 4, 7, 11, 13, 14},
	6: {1, 13, 16, 19, 22, 25},
	7: {1, 4, 7, 8, 14, 19, 21, 28, 31, 32, 37, 41, 42, 50, 55, 56, 59, 62},
	8: {14, 21, 22, 38, 47, 49, 50, 52, 56, 67, 70, 84, 97, 103, 115, 122},
}

// polynomialDegrees[k] and polynomials[k] hold the degree and packed
// coefficients of the primitive polynomial assigned to dimension k.
// Dimensions are assigned polynomials in order of increasing degree,
// which keeps the tables here aligned with the published initializer
// tables in initializers.go.
var (
	polynomialDegrees [MaxDimension]uint32
	polynomials       [MaxDimension]uint32
)

func init() {
	k := 1
	for deg, ps := range primitivePolynomialsByDegree {
		for _, p := range ps {
			polynomialDegrees[k] = uint32(deg)
			polynomials[k] = p
			k++
		}
	}
	if k != MaxDimension {
		panic("Primitive polynomial table does not match MaxDimension.")
	}
}
