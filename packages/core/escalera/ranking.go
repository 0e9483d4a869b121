package escalera

import "sort"

// sortRanked stable-sorts by sets descending then games descending. No further
// tie-break: ties keep their relative input order.
func sortRanked(players []RankedPlayer, sets func(RankedPlayer) int, games func(RankedPlayer) int) {
	sort.SliceStable(players, func(i, j int) bool {
		if sets(players[i]) != sets(players[j]) {
			return sets(players[i]) > sets(players[j])
		}
		return games(players[i]) > games(players[j])
	})
}

func inDateSets(p RankedPlayer) int  { return p.SetsWonInDate }
func inDateGames(p RankedPlayer) int { return p.GamesInDate }
func totalSets(p RankedPlayer) int   { return p.TotalSets }
func totalGames(p RankedPlayer) int  { return p.TotalGames }

// rankCourts orders the players of every court by the given keys and assigns
// 1-based positions on the copies. Stored player records are not touched.
func (e *Engine) rankCourts(sets func(RankedPlayer) int, games func(RankedPlayer) int) map[int][]RankedPlayer {
	byCourt := make(map[int][]RankedPlayer, e.state.Config.NumCourts)
	for c := 0; c < e.state.Config.NumCourts; c++ {
		var players []RankedPlayer
		for _, p := range e.state.Players {
			if p.CourtIndex == c {
				players = append(players, RankedPlayer{Player: p})
			}
		}
		sortRanked(players, sets, games)
		for i := range players {
			players[i].PositionInCourt = i + 1
		}
		byCourt[c] = players
	}
	return byCourt
}

// rankGlobal flattens the per-court ranking, reorders it globally and assigns
// 1-based global positions.
func rankGlobal(byCourt map[int][]RankedPlayer, numCourts int, sets func(RankedPlayer) int, games func(RankedPlayer) int) []RankedPlayer {
	var global []RankedPlayer
	for c := 0; c < numCourts; c++ {
		global = append(global, byCourt[c]...)
	}
	sortRanked(global, sets, games)
	for i := range global {
		global[i].GlobalPosition = i + 1
	}
	return global
}

// RankingForDate orders the players of every court by the current date's
// counters: sets won descending, then games descending.
func (e *Engine) RankingForDate() map[int][]RankedPlayer {
	if e.state.Config == nil {
		return map[int][]RankedPlayer{}
	}
	return e.rankCourts(inDateSets, inDateGames)
}

// Ranking orders players per court and globally by their cumulative totals.
// It returns an empty ranking when the tournament has no config or players.
func (e *Engine) Ranking() *Ranking {
	if e.state.Config == nil || len(e.state.Players) == 0 {
		return &Ranking{ByCourt: map[int][]RankedPlayer{}, Global: []RankedPlayer{}}
	}
	byCourt := e.rankCourts(totalSets, totalGames)
	return &Ranking{
		ByCourt: byCourt,
		Global:  rankGlobal(byCourt, e.state.Config.NumCourts, totalSets, totalGames),
	}
}
