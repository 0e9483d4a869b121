package escalera

// SetScore carries the games of one set when submitting a whole match at once.
type SetScore struct {
	Pair1Games int `json:"pair1Games"`
	Pair2Games int `json:"pair2Games"`
}

// currentDateRecord returns the mutable record of the date in progress, or nil.
func (e *Engine) currentDateRecord() *DateRecord {
	s := e.state
	if s.CurrentDate < 1 || s.CurrentDate > len(s.Dates) {
		return nil
	}
	rec := &s.Dates[s.CurrentDate-1]
	if rec.DateIndex == 0 {
		return nil
	}
	return rec
}

// CurrentDateRecord returns a copy of the record of the date in progress, or
// nil when no date has been generated yet.
func (e *Engine) CurrentDateRecord() *DateRecord {
	return e.currentDateRecord().Clone()
}

// SetSetScore overwrites the games of one set of a match, preserving the fixed
// pairing seeded at generation time.
func (e *Engine) SetSetScore(matchID string, setIndex, pair1Games, pair2Games int) (*Match, error) {
	rec := e.currentDateRecord()
	if rec == nil {
		return nil, preconditionErrorf("No hay fecha en curso")
	}
	match := rec.Match(matchID)
	if match == nil {
		return nil, preconditionErrorf("Partido no encontrado")
	}
	if setIndex < 0 || setIndex >= SetsPerMatch {
		return nil, preconditionErrorf("Set inválido")
	}
	if pair1Games < 0 || pair2Games < 0 {
		return nil, preconditionErrorf("Los games no pueden ser negativos")
	}
	match.Sets[setIndex].Pair1Games = pair1Games
	match.Sets[setIndex].Pair2Games = pair2Games
	return match.Clone(), nil
}

// SetMatchScores applies the scores of several sets in one operation. At most
// SetsPerMatch entries are consumed; each write is individually atomic.
func (e *Engine) SetMatchScores(matchID string, sets []SetScore) (*Match, error) {
	if len(sets) == 0 {
		return nil, preconditionErrorf("Se requieren los resultados de los sets")
	}
	n := len(sets)
	if n > SetsPerMatch {
		n = SetsPerMatch
	}
	var match *Match
	var err error
	for i := 0; i < n; i++ {
		match, err = e.SetSetScore(matchID, i, sets[i].Pair1Games, sets[i].Pair2Games)
		if err != nil {
			return nil, err
		}
	}
	return match, nil
}

// playersNeedingRest returns the names of the match's players whose most
// recent appearance is the last completed match of the date. The lookback is
// deliberately a single match: one completed match in between is enough rest.
func (e *Engine) playersNeedingRest(rec *DateRecord, match *Match) []string {
	order := rec.CompletedMatchOrder
	if len(order) == 0 {
		return nil
	}
	var needRest []string
	for _, pid := range match.PlayerIDs() {
		lastIndex := -1
		for i := len(order) - 1; i >= 0; i-- {
			m := rec.Match(order[i])
			if m == nil {
				continue
			}
			found := false
			for _, id := range m.PlayerIDs() {
				if id == pid {
					found = true
					break
				}
			}
			if found {
				lastIndex = i
				break
			}
		}
		if lastIndex == len(order)-1 {
			if p := e.state.player(pid); p != nil {
				needRest = append(needRest, p.Name)
			}
		}
	}
	return needRest
}

// CompleteMatch finalizes a match: it aggregates the per-player date counters
// (matches played, sets won, games) from the three sets and appends the match
// to the completion order. It fails if the match is already completed or if
// any of its players appeared in the most recently completed match of the
// date.
func (e *Engine) CompleteMatch(matchID string) (*Match, error) {
	rec := e.currentDateRecord()
	if rec == nil {
		return nil, preconditionErrorf("No hay fecha en curso")
	}
	match := rec.Match(matchID)
	if match == nil {
		return nil, preconditionErrorf("Partido no encontrado")
	}
	if match.Completed {
		return nil, preconditionErrorf("Ese partido ya está finalizado")
	}
	if needRest := e.playersNeedingRest(rec, match); len(needRest) > 0 {
		return nil, &RestViolationError{Players: needRest}
	}

	for _, pid := range match.PlayerIDs() {
		if p := e.state.player(pid); p != nil {
			p.MatchesPlayedInDate++
		}
	}

	for _, set := range match.Sets {
		pair1Won := set.Pair1Games > set.Pair2Games
		pair2Won := set.Pair2Games > set.Pair1Games
		for _, pid := range set.Pair1 {
			if p := e.state.player(pid); p != nil {
				p.GamesInDate += set.Pair1Games
				if pair1Won {
					p.SetsWonInDate++
				}
			}
		}
		for _, pid := range set.Pair2 {
			if p := e.state.player(pid); p != nil {
				p.GamesInDate += set.Pair2Games
				if pair2Won {
					p.SetsWonInDate++
				}
			}
		}
	}

	match.Completed = true
	rec.CompletedMatchOrder = append(rec.CompletedMatchOrder, matchID)
	return match.Clone(), nil
}

// AllMatchesComplete reports whether every match of the current date is
// completed. It is false when no date is in progress or no matches exist.
func (e *Engine) AllMatchesComplete() bool {
	return e.currentDateRecord().AllMatchesComplete()
}
