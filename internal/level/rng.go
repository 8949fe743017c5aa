package level

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Every randomized generation step draws from one RNG in a fixed order, so a
// seed fully determines the level it produces.
type RNG struct {
	seed  uint64
	state uint64
}

// NewRNG creates a new RNG with the given seed. The seed is scrambled with
// splitmix64 first so that small or adjacent seeds start from unrelated states.
func NewRNG(seed uint64) *RNG {
	state := mixSeed(seed)
	if state == 0 {
		state = 88172645463325252 // xorshift state must be non-zero
	}
	return &RNG{seed: seed, state: state}
}

// mixSeed is the splitmix64 finalizer.
func mixSeed(seed uint64) uint64 {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ z>>30) * 0xBF58476D1CE4E5B9
	z = (z ^ z>>27) * 0x94D049BB133111EB
	return z ^ z>>31
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a random int in [0, n). Returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a random int in the half-open range [min, max).
// Returns min when the range is empty.
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min)
}
