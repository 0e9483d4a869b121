package escalera

// NoRestBlock is returned by RestBlockForDate when a court has a single block:
// a court with exactly one block never rests.
const NoRestBlock = -1

// RestBlockForDate picks which block of a court sits out on the given
// zero-based date. Sequential dates cycle through every block before
// repeating, so the same (dateIndex, numBlocks) always yields the same
// resting block.
func RestBlockForDate(dateIndex, numBlocks int) int {
	if numBlocks <= 1 {
		return NoRestBlock
	}
	return dateIndex % numBlocks
}

// RotatedPairs produces the three set pairings for a block of four players in
// positional order. Over the three sets every unordered pair among the four
// appears as teammates exactly once and as opponents exactly twice: the
// complete 1-factorization of K4.
//
//	Set 0: (a,b) vs (c,d)
//	Set 1: (a,c) vs (b,d)
//	Set 2: (a,d) vs (b,c)
func RotatedPairs(a, b, c, d string) []Set {
	return []Set{
		{Pair1: Pair{a, b}, Pair2: Pair{c, d}},
		{Pair1: Pair{a, c}, Pair2: Pair{b, d}},
		{Pair1: Pair{a, d}, Pair2: Pair{b, c}},
	}
}
