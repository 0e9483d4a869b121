package escalera

// courtMovement splits a court's date ranking into the promotion group (top
// two), the relegation group (bottom two) and the middle.
type courtMovement struct {
	up     []string
	down   []string
	middle []string
}

func splitMovement(ranked []RankedPlayer) courtMovement {
	var mv courtMovement
	n := len(ranked)
	for i, p := range ranked {
		switch {
		case i < 2:
			mv.up = append(mv.up, p.ID)
		case i >= n-2:
			mv.down = append(mv.down, p.ID)
		default:
			mv.middle = append(mv.middle, p.ID)
		}
	}
	return mv
}

// movementsForDate records, per court, which players ranked into the top-2 and
// bottom-2 groups. It is captured on every date completion, qualifying or not.
func movementsForDate(byCourt map[int][]RankedPlayer, numCourts int) []Movement {
	movements := make([]Movement, 0, numCourts)
	for c := 0; c < numCourts; c++ {
		mv := splitMovement(byCourt[c])
		movements = append(movements, Movement{
			CourtIndex: c,
			Up:         append([]string{}, mv.up...),
			Down:       append([]string{}, mv.down...),
		})
	}
	return movements
}

// applyLadderMovement reassigns courts circularly: court c receives the bottom
// two of court c-1, its own middle and the top two of court c+1, with the ring
// wrapping at both ends. The combined group is then permuted by a seeded
// shuffle (seed currentDate*10 + c) and the resulting order assigns the new
// 1-based positions, so pairings vary between dates while the tiers
// self-correct.
//
// Every court keeps its player count: across the ring, ins equal outs.
func (e *Engine) applyLadderMovement(byCourt map[int][]RankedPlayer) {
	numCourts := e.state.Config.NumCourts
	if numCourts == 1 {
		return
	}

	movements := make([]courtMovement, numCourts)
	for c := 0; c < numCourts; c++ {
		movements[c] = splitMovement(byCourt[c])
	}

	for c := 0; c < numCourts; c++ {
		prev := (c - 1 + numCourts) % numCourts
		next := (c + 1) % numCourts
		ids := make([]string, 0, len(byCourt[c]))
		ids = append(ids, movements[prev].down...)
		ids = append(ids, movements[c].middle...)
		ids = append(ids, movements[next].up...)

		ids = NewSeededRand(e.state.CurrentDate*10 + c).Shuffle(ids)
		for pos, id := range ids {
			if p := e.state.player(id); p != nil {
				p.CourtIndex = c
				p.PositionInCourt = pos + 1
			}
		}
	}
}
