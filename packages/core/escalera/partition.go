package escalera

// PlayersPerCourt computes how many players occupy each court: a base of
// BlockSize per court, with any excess distributed round-robin starting at
// court 0. The result always sums to numPlayers and every entry is at least
// BlockSize.
func PlayersPerCourt(numCourts, numPlayers int) ([]int, error) {
	if numCourts < 1 {
		return nil, configErrorf("Debe haber al menos una cancha")
	}
	capacityBase := numCourts * BlockSize
	if numPlayers < capacityBase {
		return nil, configErrorf("Mínimo %d jugadores (4 por cancha)", capacityBase)
	}
	excess := numPlayers - capacityBase
	q := excess / numCourts
	r := excess % numCourts
	counts := make([]int, numCourts)
	for c := range counts {
		counts[c] = BlockSize + q
		if c < r {
			counts[c]++
		}
	}
	return counts, nil
}
