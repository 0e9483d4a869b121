package escalera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSetScore(t *testing.T) {
	e := newRunningTournament(t)

	match, err := e.SetSetScore("date1-c0-b0", 1, 6, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, match.Sets[1].Pair1Games)
	assert.Equal(t, 3, match.Sets[1].Pair2Games)

	// The pairing seeded at generation time survives the overwrite.
	assert.Equal(t, Pair{"p-1", "p-3"}, match.Sets[1].Pair1)
	assert.Equal(t, Pair{"p-2", "p-4"}, match.Sets[1].Pair2)

	// Other sets stay untouched.
	assert.Zero(t, match.Sets[0].Pair1Games)
	assert.Zero(t, match.Sets[2].Pair1Games)
}

func TestSetSetScoreValidation(t *testing.T) {
	e := newRunningTournament(t)
	var preErr *PreconditionError

	_, err := e.SetSetScore("no-such-match", 0, 6, 2)
	require.ErrorAs(t, err, &preErr)

	_, err = e.SetSetScore("date1-c0-b0", 3, 6, 2)
	require.ErrorAs(t, err, &preErr)

	_, err = e.SetSetScore("date1-c0-b0", -1, 6, 2)
	require.ErrorAs(t, err, &preErr)

	_, err = e.SetSetScore("date1-c0-b0", 0, -1, 2)
	require.ErrorAs(t, err, &preErr)
}

func TestSetSetScoreWithoutDate(t *testing.T) {
	e := New(nil)
	_, err := e.SetSetScore("date1-c0-b0", 0, 6, 2)
	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
}

func TestSetMatchScores(t *testing.T) {
	e := newRunningTournament(t)

	match, err := e.SetMatchScores("date1-c0-b0", []SetScore{{6, 2}, {4, 6}, {7, 5}})
	require.NoError(t, err)
	assert.Equal(t, 6, match.Sets[0].Pair1Games)
	assert.Equal(t, 6, match.Sets[1].Pair2Games)
	assert.Equal(t, 7, match.Sets[2].Pair1Games)

	_, err = e.SetMatchScores("date1-c0-b0", nil)
	var preErr *PreconditionError
	require.ErrorAs(t, err, &preErr)
}

func TestTiedSetCountsNoWinner(t *testing.T) {
	e := newRunningTournament(t)

	_, err := e.SetMatchScores("date1-c0-b0", []SetScore{{5, 5}, {5, 5}, {5, 5}})
	require.NoError(t, err)
	_, err = e.CompleteMatch("date1-c0-b0")
	require.NoError(t, err)

	state := e.State()
	for _, p := range state.Players[:4] {
		assert.Zero(t, p.SetsWonInDate, p.ID)
		assert.Equal(t, 15, p.GamesInDate, p.ID)
	}
}

// restViolationState hand-builds a date where matches share players, the
// situation the single-lookback rest rule exists for. The generator never
// produces such a date (blocks are disjoint), but historical states can.
func restViolationState() *State {
	names := []string{"Ana", "Beto", "Carla", "Dario", "Elena", "Fede", "Gina", "Hugo", "Ines", "Juan", "Kata", "Lucas"}
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{ID: playerID(i + 1), Name: name, CourtIndex: 0, PositionInCourt: i + 1}
	}
	makeMatch := func(id, a, b, c, d string) Match {
		return Match{
			ID:    id,
			Pair1: Pair{a, b},
			Pair2: Pair{c, d},
			Sets:  RotatedPairs(a, b, c, d),
		}
	}
	return &State{
		Config:      &Config{NumCourts: 1, NumPlayers: 12, PlayersPerCourt: []int{12}, QualifyingDates: 1},
		Players:     players,
		CurrentDate: 1,
		Status:      StatusDate,
		Dates: []DateRecord{{
			DateIndex: 1,
			Matches: []Match{
				makeMatch("m1", "p-1", "p-2", "p-3", "p-4"),
				makeMatch("m2", "p-1", "p-5", "p-6", "p-7"),
				makeMatch("m3", "p-8", "p-9", "p-10", "p-11"),
				makeMatch("m4", "p-2", "p-3", "p-5", "p-12"),
			},
			CompletedMatchOrder: []string{},
		}},
	}
}

func TestRestViolation(t *testing.T) {
	e := New(restViolationState())

	_, err := e.CompleteMatch("m1")
	require.NoError(t, err)

	// p-1 played m1, the most recently completed match: m2 must wait.
	_, err = e.CompleteMatch("m2")
	var restErr *RestViolationError
	require.ErrorAs(t, err, &restErr)
	assert.Equal(t, []string{"Ana"}, restErr.Players)
	assert.Contains(t, err.Error(), "Ana")

	// m2 must not have been partially applied.
	state := e.State()
	assert.False(t, state.Dates[0].Match("m2").Completed)
	assert.Equal(t, []string{"m1"}, state.Dates[0].CompletedMatchOrder)
	assert.Zero(t, state.player("p-5").MatchesPlayedInDate)
}

func TestRestViolationClearsAfterInterveningMatch(t *testing.T) {
	e := New(restViolationState())

	_, err := e.CompleteMatch("m1")
	require.NoError(t, err)
	_, err = e.CompleteMatch("m3")
	require.NoError(t, err)

	// One match completed in between: p-1 has rested, m2 may now complete.
	_, err = e.CompleteMatch("m2")
	require.NoError(t, err)
}

func TestRestViolationSingleLookback(t *testing.T) {
	e := New(restViolationState())

	_, err := e.CompleteMatch("m1")
	require.NoError(t, err)
	_, err = e.CompleteMatch("m3")
	require.NoError(t, err)

	// p-2 and p-3 played m1, two completions ago. Only the most recently
	// completed match blocks, so m4 goes through.
	_, err = e.CompleteMatch("m4")
	require.NoError(t, err)
}

func TestFirstMatchNeverViolatesRest(t *testing.T) {
	e := New(restViolationState())
	_, err := e.CompleteMatch("m2")
	require.NoError(t, err)
}

func TestAllMatchesComplete(t *testing.T) {
	e := newRunningTournament(t)
	assert.False(t, e.AllMatchesComplete())

	_, err := e.CompleteMatch("date1-c0-b0")
	require.NoError(t, err)
	assert.False(t, e.AllMatchesComplete())

	_, err = e.CompleteMatch("date1-c1-b0")
	require.NoError(t, err)
	assert.True(t, e.AllMatchesComplete())
}
