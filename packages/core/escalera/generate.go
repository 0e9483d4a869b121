package escalera

import "fmt"

// GenerateDateMatches builds the match list for the current date: per court,
// players are read in position order and sliced into blocks of four; every
// non-resting block yields one match with its three rotated set pairings. The
// resulting DateRecord is written into the state and a copy is returned.
//
// Regenerating an already-populated date overwrites it; callers should only
// invoke this when the current date has no matches yet.
func (e *Engine) GenerateDateMatches() (*DateRecord, error) {
	s := e.state
	if s.Config == nil {
		return nil, configErrorf("Falta configuración del torneo. Reiniciá desde Configuración.")
	}
	if len(s.Players) == 0 {
		return nil, configErrorf("No hay jugadores cargados. Reiniciá y cargá los jugadores.")
	}
	if len(s.Players) != s.Config.NumPlayers {
		return nil, stateErrorf("Se esperan %d jugadores. Reiniciá el torneo y cargá exactamente %d nombres.",
			s.Config.NumPlayers, s.Config.NumPlayers)
	}
	for _, p := range s.Players {
		if p.PositionInCourt < 1 || p.CourtIndex < 0 || p.CourtIndex >= s.Config.NumCourts {
			return nil, stateErrorf("Estado de jugadores incompatible. Reiniciá el torneo desde Configuración y volvé a cargar jugadores.")
		}
	}
	dateIndex := s.CurrentDate - 1
	if dateIndex < 0 {
		return nil, preconditionErrorf("Ronda inválida.")
	}

	record := DateRecord{
		DateIndex:           s.CurrentDate,
		RestByCourt:         make([][]string, s.Config.NumCourts),
		CourtAssignments:    make([][]string, s.Config.NumCourts),
		Matches:             []Match{},
		CompletedMatchOrder: []string{},
	}

	for c := 0; c < s.Config.NumCourts; c++ {
		expected := s.Config.PlayersPerCourt[c]
		courtPlayers := s.courtPlayers(c)
		if len(courtPlayers) != expected {
			return nil, stateErrorf("Cancha %d tiene %d jugadores (debería tener %d). Reiniciá el torneo desde Configuración.",
				c+1, len(courtPlayers), expected)
		}
		numBlocks := expected / BlockSize
		restBlock := RestBlockForDate(dateIndex, numBlocks)

		record.RestByCourt[c] = []string{}
		if restBlock != NoRestBlock {
			for _, p := range courtPlayers[restBlock*BlockSize : (restBlock+1)*BlockSize] {
				record.RestByCourt[c] = append(record.RestByCourt[c], p.ID)
			}
		}
		record.CourtAssignments[c] = make([]string, 0, len(courtPlayers))
		for _, p := range courtPlayers {
			record.CourtAssignments[c] = append(record.CourtAssignments[c], p.ID)
		}

		record.Matches = append(record.Matches, matchesForCourt(courtPlayers, dateIndex, c)...)
	}

	// Grow the history so the record lands at its date index.
	for len(s.Dates) <= dateIndex {
		s.Dates = append(s.Dates, DateRecord{})
	}
	s.Dates[dateIndex] = record
	return record.Clone(), nil
}

// matchesForCourt slices a court into blocks of four and builds one match per
// non-resting block. Remainder players beyond the last whole block sit the
// date out without being listed as a resting block.
func matchesForCourt(courtPlayers []Player, dateIndex, courtIndex int) []Match {
	numBlocks := len(courtPlayers) / BlockSize
	if numBlocks == 0 {
		return nil
	}
	restBlock := RestBlockForDate(dateIndex, numBlocks)
	matches := make([]Match, 0, numBlocks)
	for block := 0; block < numBlocks; block++ {
		if block == restBlock {
			continue
		}
		base := block * BlockSize
		a, b, c, d := courtPlayers[base].ID, courtPlayers[base+1].ID, courtPlayers[base+2].ID, courtPlayers[base+3].ID
		matches = append(matches, Match{
			ID:         fmt.Sprintf("date%d-c%d-b%d", dateIndex+1, courtIndex, block),
			CourtIndex: courtIndex,
			BlockIndex: block,
			Pair1:      Pair{a, b},
			Pair2:      Pair{c, d},
			Sets:       RotatedPairs(a, b, c, d),
			Completed:  false,
		})
	}
	return matches
}
