package escalera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playTwoDates drives a 3-court, 12-player tournament through its qualifying
// date and one ranked date, with scores that make court rankings unambiguous.
func playTwoDates(t *testing.T) *Engine {
	t.Helper()
	e := New(nil)
	_, err := e.SetConfig(3, 12)
	require.NoError(t, err)
	_, err = e.AddPlayers(playerNames(12))
	require.NoError(t, err)
	_, err = e.GenerateDateMatches()
	require.NoError(t, err)

	completeAllMatches(t, e)
	_, err = e.CompleteDate()
	require.NoError(t, err)

	_, err = e.StartNextDate()
	require.NoError(t, err)
	completeAllMatches(t, e)
	_, err = e.CompleteDate()
	require.NoError(t, err)
	return e
}

func courtCounts(state *State) map[int]int {
	counts := make(map[int]int)
	for _, p := range state.Players {
		counts[p.CourtIndex]++
	}
	return counts
}

func TestLadderConservation(t *testing.T) {
	e := playTwoDates(t)
	state := e.State()

	// Ring topology: every court keeps its player count, nobody is lost or
	// duplicated.
	assert.Equal(t, map[int]int{0: 4, 1: 4, 2: 4}, courtCounts(state))

	seen := make(map[string]bool)
	for _, p := range state.Players {
		assert.False(t, seen[p.ID], "player %s assigned twice", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 12)

	// Positions within each court are 1..n without gaps.
	positions := make(map[int]map[int]bool)
	for _, p := range state.Players {
		if positions[p.CourtIndex] == nil {
			positions[p.CourtIndex] = make(map[int]bool)
		}
		assert.False(t, positions[p.CourtIndex][p.PositionInCourt],
			"duplicate position %d in court %d", p.PositionInCourt, p.CourtIndex)
		positions[p.CourtIndex][p.PositionInCourt] = true
		assert.GreaterOrEqual(t, p.PositionInCourt, 1)
		assert.LessOrEqual(t, p.PositionInCourt, 4)
	}
}

func TestLadderMovesTopTwoAndBottomTwo(t *testing.T) {
	e := playTwoDates(t)
	state := e.State()

	rec := state.Dates[1]
	assert.False(t, rec.IsQualifying)
	require.Len(t, rec.Movements, 3)

	// With 4 players per court everyone is ranked up or down; every court's
	// occupants are fully replaced by its neighbors' groups.
	for c, mv := range rec.Movements {
		assert.Equal(t, c, mv.CourtIndex)
		assert.Len(t, mv.Up, 2)
		assert.Len(t, mv.Down, 2)
	}

	inCourt := func(court int) map[string]bool {
		ids := make(map[string]bool)
		for _, p := range state.Players {
			if p.CourtIndex == court {
				ids[p.ID] = true
			}
		}
		return ids
	}
	for c := 0; c < 3; c++ {
		prev := (c + 2) % 3
		next := (c + 1) % 3
		want := append(append([]string{}, rec.Movements[prev].Down...), rec.Movements[next].Up...)
		got := inCourt(c)
		require.Len(t, got, 4)
		for _, id := range want {
			assert.True(t, got[id], "player %s should have moved to court %d", id, c)
		}
	}
}

func TestLadderShuffleIsDeterministic(t *testing.T) {
	a := playTwoDates(t)
	b := playTwoDates(t)

	sa, sb := a.State(), b.State()
	require.Len(t, sb.Players, len(sa.Players))
	for i := range sa.Players {
		assert.Equal(t, sa.Players[i].CourtIndex, sb.Players[i].CourtIndex, sa.Players[i].ID)
		assert.Equal(t, sa.Players[i].PositionInCourt, sb.Players[i].PositionInCourt, sa.Players[i].ID)
	}
}

func TestSingleCourtNeverMoves(t *testing.T) {
	e := New(nil)
	_, err := e.SetConfig(1, 4)
	require.NoError(t, err)
	_, err = e.AddPlayers(playerNames(4))
	require.NoError(t, err)
	_, err = e.GenerateDateMatches()
	require.NoError(t, err)
	completeAllMatches(t, e)
	_, err = e.CompleteDate()
	require.NoError(t, err)

	_, err = e.StartNextDate()
	require.NoError(t, err)
	completeAllMatches(t, e)

	before := e.State()
	_, err = e.CompleteDate()
	require.NoError(t, err)

	state := e.State()
	for i, p := range state.Players {
		assert.Equal(t, before.Players[i].CourtIndex, p.CourtIndex)
		assert.Equal(t, before.Players[i].PositionInCourt, p.PositionInCourt)
	}
}

func TestSplitMovement(t *testing.T) {
	ranked := make([]RankedPlayer, 6)
	for i := range ranked {
		ranked[i] = RankedPlayer{Player: Player{ID: playerID(i + 1)}}
	}
	mv := splitMovement(ranked)
	assert.Equal(t, []string{"p-1", "p-2"}, mv.up)
	assert.Equal(t, []string{"p-3", "p-4"}, mv.middle)
	assert.Equal(t, []string{"p-5", "p-6"}, mv.down)
}
