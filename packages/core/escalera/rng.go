package escalera

// SeededRand is the deterministic generator behind the post-movement shuffle.
// It is the linear-congruential recurrence s = (s*9301 + 49297) mod 233280,
// kept for output compatibility with historical tournament states: the same
// seed always yields the same permutation, so tests can assert exact orders.
type SeededRand struct {
	s int
}

// NewSeededRand returns a generator with the given seed.
func NewSeededRand(seed int) *SeededRand {
	return &SeededRand{s: seed}
}

// Intn returns a deterministic value in [0, n).
func (r *SeededRand) Intn(n int) int {
	r.s = (r.s*9301 + 49297) % 233280
	return r.s * n / 233280
}

// Shuffle returns a new slice with the ids permuted by a Fisher-Yates pass
// over the generator. The input is not modified.
func (r *SeededRand) Shuffle(ids []string) []string {
	out := append([]string(nil), ids...)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
