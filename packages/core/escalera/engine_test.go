package escalera

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Jugador %d", i+1)
	}
	return names
}

// newRunningTournament configures 2 courts with 8 players and generates the
// first date: one block per court, two matches, no resting blocks.
func newRunningTournament(t *testing.T) *Engine {
	t.Helper()
	e := New(nil)
	_, err := e.SetConfig(2, 8)
	require.NoError(t, err)
	_, err = e.AddPlayers(playerNames(8))
	require.NoError(t, err)
	_, err = e.GenerateDateMatches()
	require.NoError(t, err)
	return e
}

// completeAllMatches scores every pending match of the current date with a
// fixed result and completes it.
func completeAllMatches(t *testing.T, e *Engine) {
	t.Helper()
	rec := e.CurrentDateRecord()
	require.NotNil(t, rec)
	for _, m := range rec.Matches {
		if m.Completed {
			continue
		}
		_, err := e.SetMatchScores(m.ID, []SetScore{{6, 2}, {6, 4}, {3, 6}})
		require.NoError(t, err)
		_, err = e.CompleteMatch(m.ID)
		require.NoError(t, err)
	}
}

func TestSetConfig(t *testing.T) {
	e := New(nil)
	state, err := e.SetConfig(2, 8)
	require.NoError(t, err)

	assert.Equal(t, StatusPlayers, state.Status)
	assert.Equal(t, []int{4, 4}, state.Config.PlayersPerCourt)
	assert.Equal(t, QualifyingDates, state.Config.QualifyingDates)
	assert.Empty(t, state.Players)
	assert.Empty(t, state.Dates)
}

func TestSetConfigRejectsBadCounts(t *testing.T) {
	e := New(nil)

	_, err := e.SetConfig(0, 8)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)

	_, err = e.SetConfig(2, 7)
	require.ErrorAs(t, err, &cfgErr)
}

func TestAddPlayersSequentialFill(t *testing.T) {
	e := New(nil)
	_, err := e.SetConfig(2, 9)
	require.NoError(t, err)

	state, err := e.AddPlayers(playerNames(9))
	require.NoError(t, err)

	assert.Equal(t, StatusDate, state.Status)
	assert.Equal(t, 1, state.CurrentDate)

	// Partition [5,4]: first five players on court 0, rest on court 1,
	// positions assigned in registration order.
	for i, p := range state.Players {
		if i < 5 {
			assert.Equal(t, 0, p.CourtIndex, p.ID)
			assert.Equal(t, i+1, p.PositionInCourt, p.ID)
		} else {
			assert.Equal(t, 1, p.CourtIndex, p.ID)
			assert.Equal(t, i-5+1, p.PositionInCourt, p.ID)
		}
	}
}

func TestAddPlayersCountMismatch(t *testing.T) {
	e := New(nil)
	_, err := e.SetConfig(2, 8)
	require.NoError(t, err)

	_, err = e.AddPlayers(playerNames(7))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAddPlayersWithoutConfig(t *testing.T) {
	e := New(nil)
	_, err := e.AddPlayers(playerNames(8))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAddPlayersBlankNameFallback(t *testing.T) {
	e := New(nil)
	_, err := e.SetConfig(1, 4)
	require.NoError(t, err)

	state, err := e.AddPlayers([]string{"Ana", "  ", "Luis", ""})
	require.NoError(t, err)
	assert.Equal(t, "Jugador 2", state.Players[1].Name)
	assert.Equal(t, "Jugador 4", state.Players[3].Name)
}

func TestGenerateDateMatches(t *testing.T) {
	e := newRunningTournament(t)

	rec := e.CurrentDateRecord()
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.DateIndex)
	require.Len(t, rec.Matches, 2)
	for _, m := range rec.Matches {
		assert.Len(t, m.Sets, SetsPerMatch)
		assert.False(t, m.Completed)
	}
	// Single-block courts never rest.
	assert.Equal(t, [][]string{{}, {}}, rec.RestByCourt)
	assert.Equal(t, "date1-c0-b0", rec.Matches[0].ID)
	assert.Equal(t, "date1-c1-b0", rec.Matches[1].ID)
}

func TestGenerateDateMatchesRestRotation(t *testing.T) {
	// One court, 8 players: two blocks, one rests each date.
	e := New(nil)
	_, err := e.SetConfig(1, 8)
	require.NoError(t, err)
	_, err = e.AddPlayers(playerNames(8))
	require.NoError(t, err)

	rec, err := e.GenerateDateMatches()
	require.NoError(t, err)
	require.Len(t, rec.Matches, 1)

	// Date 1 (index 0): block 0 rests.
	assert.Equal(t, []string{"p-1", "p-2", "p-3", "p-4"}, rec.RestByCourt[0])
	assert.Equal(t, 1, rec.Matches[0].BlockIndex)
}

func TestGenerateDateMatchesRequiresConsistentState(t *testing.T) {
	e := newRunningTournament(t)

	// Drop a player behind the config's back: stale external state.
	e.state.Players = e.state.Players[:7]
	_, err := e.GenerateDateMatches()
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
}

func TestCompleteMatchAggregatesCounters(t *testing.T) {
	e := newRunningTournament(t)

	_, err := e.SetMatchScores("date1-c0-b0", []SetScore{{6, 2}, {6, 4}, {3, 6}})
	require.NoError(t, err)
	_, err = e.CompleteMatch("date1-c0-b0")
	require.NoError(t, err)

	state := e.State()
	// Set 0: (p1,p2) 6-2 (p3,p4); set 1: (p1,p3) 6-4 (p2,p4); set 2: (p1,p4) 3-6 (p2,p3).
	expected := map[string]struct{ games, sets int }{
		"p-1": {15, 2},
		"p-2": {16, 2},
		"p-3": {14, 2},
		"p-4": {9, 0},
	}
	for _, p := range state.Players[:4] {
		want := expected[p.ID]
		assert.Equal(t, want.games, p.GamesInDate, "games of %s", p.ID)
		assert.Equal(t, want.sets, p.SetsWonInDate, "sets of %s", p.ID)
		assert.Equal(t, 1, p.MatchesPlayedInDate, "matches of %s", p.ID)
	}
	for _, p := range state.Players[4:] {
		assert.Zero(t, p.MatchesPlayedInDate, "court 1 must be untouched")
	}

	rec := e.CurrentDateRecord()
	assert.Equal(t, []string{"date1-c0-b0"}, rec.CompletedMatchOrder)
}

func TestCompleteMatchTwiceFails(t *testing.T) {
	e := newRunningTournament(t)
	_, err := e.CompleteMatch("date1-c0-b0")
	require.NoError(t, err)

	_, err = e.CompleteMatch("date1-c0-b0")
	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
	assert.Contains(t, err.Error(), "ya está finalizado")
}

func TestCompleteDateRequiresAllMatches(t *testing.T) {
	e := newRunningTournament(t)
	_, err := e.CompleteMatch("date1-c0-b0")
	require.NoError(t, err)

	_, err = e.CompleteDate()
	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
}

func TestCompleteDateFoldsTotalsAndResetsCounters(t *testing.T) {
	e := newRunningTournament(t)
	completeAllMatches(t, e)

	before := e.State()
	inDate := make(map[string]Player)
	for _, p := range before.Players {
		inDate[p.ID] = p
	}

	state, err := e.CompleteDate()
	require.NoError(t, err)
	assert.Equal(t, StatusDateComplete, state.Status)

	for _, p := range state.Players {
		prev := inDate[p.ID]
		assert.Equal(t, prev.GamesInDate, p.TotalGames, p.ID)
		assert.Equal(t, prev.SetsWonInDate, p.TotalSets, p.ID)
		assert.Equal(t, prev.MatchesPlayedInDate, p.TotalMatches, p.ID)
		assert.Zero(t, p.GamesInDate, p.ID)
		assert.Zero(t, p.SetsWonInDate, p.ID)
		assert.Zero(t, p.MatchesPlayedInDate, p.ID)
	}

	rec := state.Dates[0]
	assert.True(t, rec.Completed)
	assert.True(t, rec.IsQualifying)
	require.NotNil(t, rec.RankingAtEnd)
	assert.Len(t, rec.Movements, 2)
}

func TestQualifyingDateKeepsCourts(t *testing.T) {
	e := newRunningTournament(t)
	before := e.State()
	completeAllMatches(t, e)

	state, err := e.CompleteDate()
	require.NoError(t, err)

	for i, p := range state.Players {
		assert.Equal(t, before.Players[i].CourtIndex, p.CourtIndex, p.ID)
		assert.Equal(t, before.Players[i].PositionInCourt, p.PositionInCourt, p.ID)
	}
}

func TestStartNextDateRequiresCompletedDate(t *testing.T) {
	e := newRunningTournament(t)
	_, err := e.StartNextDate()
	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
}

func TestStartNextDateGeneratesMatches(t *testing.T) {
	e := newRunningTournament(t)
	completeAllMatches(t, e)
	_, err := e.CompleteDate()
	require.NoError(t, err)

	rec, err := e.StartNextDate()
	require.NoError(t, err)
	assert.Equal(t, 2, rec.DateIndex)
	assert.Len(t, rec.Matches, 2)
	assert.Equal(t, StatusDate, e.State().Status)
	assert.Equal(t, 2, e.State().CurrentDate)
}

func TestReset(t *testing.T) {
	e := newRunningTournament(t)
	state := e.Reset()

	assert.Equal(t, StatusConfig, state.Status)
	assert.Nil(t, state.Config)
	assert.Empty(t, state.Players)
	assert.Empty(t, state.Dates)
	assert.Zero(t, state.CurrentDate)
}

func TestStateIsolation(t *testing.T) {
	e := newRunningTournament(t)
	state := e.State()

	// Mutating the returned snapshot must not leak into the engine.
	state.Players[0].Name = "hacked"
	state.Dates[0].Matches[0].Completed = true

	fresh := e.State()
	assert.NotEqual(t, "hacked", fresh.Players[0].Name)
	assert.False(t, fresh.Dates[0].Matches[0].Completed)
}
