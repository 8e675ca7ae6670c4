package rand

const (
	mersenneStateLen    = 624
	mersenneShiftSize   = 397
	mersenneInitMult    = 1812433253
	mersenneMatrixA     = 0x9908b0df
	mersenneUpperMask   = 0x80000000
	mersenneLowerMask   = 0x7fffffff
	mersenneDefaultSeed = 5489

	mersenneNorm = 1.0 / (1 << 32)
)

// mersenneGenerator is the classic 32-bit MT19937. A seed of zero is
// replaced by the canonical default seed so that Init is always
// deterministic: the sobol package relies on replaying this generator's
// stream exactly when rebuilding direction integer tables.
type mersenneGenerator struct {
	state [mersenneStateLen]uint32
	i int
}

func (gen *mersenneGenerator) Init(seed uint64) {
	if seed == 0 { seed = mersenneDefaultSeed }

	gen.state[0] = uint32(seed)
	for i := 1; i < mersenneStateLen; i++ {
		y := gen.state[i-1]
		gen.state[i] = mersenneInitMult*(y^(y>>30)) + uint32(i)
	}
	gen.i = mersenneStateLen
}

func (gen *mersenneGenerator) twist() {
	for i := 0; i < mersenneStateLen; i++ {
		y := (gen.state[i] & mersenneUpperMask) |
			(gen.state[(i+1)%mersenneStateLen] & mersenneLowerMask)
		next := gen.state[(i+mersenneShiftSize)%mersenneStateLen] ^ (y >> 1)
		if y & 1 == 1 { next ^= mersenneMatrixA }
		gen.state[i] = next
	}
	gen.i = 0
}

// NextUint32 returns the next raw word of the MT19937 stream.
func (gen *mersenneGenerator) NextUint32() uint32 {
	if gen.i >= mersenneStateLen { gen.twist() }

	y := gen.state[gen.i]
	gen.i++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

func (gen *mersenneGenerator) Next() float64 {
	return float64(gen.NextUint32()) * mersenneNorm
}

func (gen *mersenneGenerator) NextSequence(target []float64) {
	for i := range target {
		target[i] = float64(gen.NextUint32()) * mersenneNorm
	}
}
