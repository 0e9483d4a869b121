package escalera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankingFixture() *Engine {
	state := &State{
		Config: &Config{NumCourts: 2, NumPlayers: 8, PlayersPerCourt: []int{4, 4}, QualifyingDates: 1},
		Status: StatusDate,
		Players: []Player{
			{ID: "p-1", Name: "Ana", CourtIndex: 0, PositionInCourt: 1, SetsWonInDate: 1, GamesInDate: 10, TotalSets: 4, TotalGames: 30},
			{ID: "p-2", Name: "Beto", CourtIndex: 0, PositionInCourt: 2, SetsWonInDate: 2, GamesInDate: 8, TotalSets: 2, TotalGames: 20},
			{ID: "p-3", Name: "Carla", CourtIndex: 0, PositionInCourt: 3, SetsWonInDate: 2, GamesInDate: 12, TotalSets: 2, TotalGames: 25},
			{ID: "p-4", Name: "Dario", CourtIndex: 0, PositionInCourt: 4, SetsWonInDate: 0, GamesInDate: 5, TotalSets: 6, TotalGames: 10},
			{ID: "p-5", Name: "Elena", CourtIndex: 1, PositionInCourt: 1, SetsWonInDate: 3, GamesInDate: 18, TotalSets: 1, TotalGames: 9},
			{ID: "p-6", Name: "Fede", CourtIndex: 1, PositionInCourt: 2, SetsWonInDate: 1, GamesInDate: 7, TotalSets: 1, TotalGames: 9},
			{ID: "p-7", Name: "Gina", CourtIndex: 1, PositionInCourt: 3, SetsWonInDate: 1, GamesInDate: 7, TotalSets: 0, TotalGames: 3},
			{ID: "p-8", Name: "Hugo", CourtIndex: 1, PositionInCourt: 4, SetsWonInDate: 0, GamesInDate: 2, TotalSets: 7, TotalGames: 40},
		},
	}
	return New(state)
}

func TestRankingForDate(t *testing.T) {
	e := rankingFixture()
	byCourt := e.RankingForDate()

	ids := func(players []RankedPlayer) []string {
		out := make([]string, len(players))
		for i, p := range players {
			out[i] = p.ID
		}
		return out
	}

	// Court 0: sets desc, games break the 2-2 tie between p-3 and p-2.
	assert.Equal(t, []string{"p-3", "p-2", "p-1", "p-4"}, ids(byCourt[0]))
	// Court 1: p-6 and p-7 tie on both keys; stable sort keeps input order.
	assert.Equal(t, []string{"p-5", "p-6", "p-7", "p-8"}, ids(byCourt[1]))

	for c := range byCourt {
		for i, p := range byCourt[c] {
			assert.Equal(t, i+1, p.PositionInCourt)
		}
	}
}

func TestRankingForDateDoesNotMutateState(t *testing.T) {
	e := rankingFixture()
	_ = e.RankingForDate()

	// Stored records keep their registration positions.
	state := e.State()
	assert.Equal(t, 1, state.player("p-1").PositionInCourt)
	assert.Equal(t, 3, state.player("p-3").PositionInCourt)
}

func TestCumulativeRanking(t *testing.T) {
	e := rankingFixture()
	ranking := e.Ranking()

	require.NotNil(t, ranking)
	// Global order by total sets desc, total games desc.
	wantGlobal := []string{"p-8", "p-4", "p-1", "p-3", "p-2", "p-5", "p-6", "p-7"}
	require.Len(t, ranking.Global, len(wantGlobal))
	for i, id := range wantGlobal {
		assert.Equal(t, id, ranking.Global[i].ID, "global position %d", i+1)
		assert.Equal(t, i+1, ranking.Global[i].GlobalPosition)
	}

	assert.Equal(t, "p-4", ranking.ByCourt[0][0].ID)
	assert.Equal(t, "p-8", ranking.ByCourt[1][0].ID)
}

func TestRankingEmptyTournament(t *testing.T) {
	e := New(nil)
	ranking := e.Ranking()
	require.NotNil(t, ranking)
	assert.Empty(t, ranking.Global)
	assert.Empty(t, ranking.ByCourt)
}
