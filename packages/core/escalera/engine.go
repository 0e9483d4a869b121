package escalera

import (
	"fmt"
	"strings"
)

func playerID(n int) string { return fmt.Sprintf("p-%d", n) }

func defaultPlayerName(n int) string { return fmt.Sprintf("Jugador %d", n) }

// Engine runs the tournament lifecycle over one state value. It is not safe
// for concurrent use; the caller serializes operations per tournament.
type Engine struct {
	state *State
}

// New wraps a loaded state. A nil state starts a fresh tournament awaiting
// configuration.
func New(state *State) *Engine {
	if state == nil {
		state = NewState()
	}
	return &Engine{state: state}
}

// State returns a deep copy of the current state, ready to be persisted.
func (e *Engine) State() *State {
	return e.state.Clone()
}

// Reset discards all configuration, players and dates.
func (e *Engine) Reset() *State {
	e.state = NewState()
	return e.State()
}

// SetConfig validates the court and player counts, computes the per-court
// partition and moves the tournament to the player-registration stage. Any
// previously registered players and dates are discarded.
func (e *Engine) SetConfig(numCourts, numPlayers int) (*State, error) {
	perCourt, err := PlayersPerCourt(numCourts, numPlayers)
	if err != nil {
		return nil, err
	}
	e.state.Config = &Config{
		NumCourts:       numCourts,
		NumPlayers:      numPlayers,
		PlayersPerCourt: perCourt,
		QualifyingDates: QualifyingDates,
	}
	e.state.Players = []Player{}
	e.state.CurrentDate = 0
	e.state.Dates = []DateRecord{}
	e.state.Status = StatusPlayers
	return e.State(), nil
}

// AddPlayers registers the full roster at once. The names must exactly match
// the configured player count; courts are filled sequentially and positions
// assigned in registration order. The tournament enters its first date.
func (e *Engine) AddPlayers(names []string) (*State, error) {
	s := e.state
	if s.Config == nil {
		return nil, configErrorf("Configura primero canchas y número de jugadores")
	}
	if len(names) != s.Config.NumPlayers {
		return nil, configErrorf("Debes cargar exactamente %d jugadores", s.Config.NumPlayers)
	}

	s.Players = make([]Player, 0, len(names))
	court := 0
	filled := 0
	for i, name := range names {
		for court < s.Config.NumCourts-1 && filled >= s.Config.PlayersPerCourt[court] {
			court++
			filled = 0
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = defaultPlayerName(i + 1)
		}
		s.Players = append(s.Players, Player{
			ID:              playerID(i + 1),
			Name:            name,
			CourtIndex:      court,
			PositionInCourt: filled + 1,
		})
		filled++
	}
	s.Status = StatusDate
	s.CurrentDate = 1
	return e.State(), nil
}

// CompleteDate closes the date in progress. Every match must be completed.
// The date's counters are folded into the cumulative totals, the end-of-date
// ranking and movement groups are snapshotted onto the record, ladder movement
// is applied unless the date is still within the qualifying window, and the
// in-date counters are reset for the next date.
func (e *Engine) CompleteDate() (*State, error) {
	s := e.state
	rec := e.currentDateRecord()
	if rec == nil {
		return nil, preconditionErrorf("No hay fecha en curso")
	}
	if !rec.AllMatchesComplete() {
		return nil, preconditionErrorf("Faltan partidos por completar en esta fecha")
	}

	for i := range s.Players {
		p := &s.Players[i]
		p.TotalGames += p.GamesInDate
		p.TotalSets += p.SetsWonInDate
		p.TotalMatches += p.MatchesPlayedInDate
	}

	byCourt := e.RankingForDate()
	rec.RankingAtEnd = &Ranking{
		ByCourt: byCourt,
		Global:  rankGlobal(byCourt, s.Config.NumCourts, inDateSets, inDateGames),
	}
	rec.Movements = movementsForDate(byCourt, s.Config.NumCourts)

	// The first qualifyingDates dates (0-based index below the threshold) are
	// exempt from ladder movement.
	rec.IsQualifying = s.CurrentDate-1 < s.Config.QualifyingDates
	if !rec.IsQualifying {
		e.applyLadderMovement(byCourt)
	}

	for i := range s.Players {
		p := &s.Players[i]
		p.GamesInDate = 0
		p.SetsWonInDate = 0
		p.MatchesPlayedInDate = 0
	}

	rec.Completed = true
	s.Status = StatusDateComplete
	return e.State(), nil
}

// StartNextDate advances to the next date and immediately generates its
// matches from the (possibly just moved) court assignments.
func (e *Engine) StartNextDate() (*DateRecord, error) {
	if e.state.Status != StatusDateComplete {
		return nil, preconditionErrorf("Debes completar la fecha actual antes de iniciar la siguiente")
	}
	e.state.CurrentDate++
	e.state.Status = StatusDate
	return e.GenerateDateMatches()
}
