// Package random is a small deterministic Lehmer generator. The same seed
// always yields the same sequence, which keeps generated lists and test
// workloads reproducible across runs and platforms.
package random

const (
	modulus    = uint32(2147483647) // 2^31-1
	multiplier = uint32(16807)      // bits 14, 8, 7, 5, 2, 1, 0
)

type Random struct {
	seed uint32
}

func New(s uint32) *Random {
	s &= modulus
	if s == 0 || s == modulus {
		s = 1
	}
	return &Random{seed: s}
}

func (r *Random) Next() uint32 {
	product := uint64(r.seed) * uint64(multiplier)
	r.seed = uint32(product>>31) + (uint32(product) & modulus)

	// The first reduction may overflow by 1 bit
	if r.seed > modulus {
		r.seed -= modulus
	}
	return r.seed
}

// Uniform returns a value in [0, n).
// REQUIRES: n > 0
func (r *Random) Uniform(n int) int {
	return int(r.Next() % uint32(n))
}

// OneIn returns true about once every n calls.
// REQUIRES: n > 0
func (r *Random) OneIn(n int) bool {
	return r.Uniform(n) == 0
}

// Perm returns a permutation of [0, n).
func (r *Random) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// Shuffle is a Fisher-Yates shuffle of n elements.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Uniform(i+1))
	}
}
