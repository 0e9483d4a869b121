package escalera

import (
	"reflect"
	"testing"
)

func TestPlayersPerCourt(t *testing.T) {
	tests := []struct {
		name       string
		numCourts  int
		numPlayers int
		want       []int
		wantErr    bool
	}{
		{"exact capacity", 2, 8, []int{4, 4}, false},
		{"single court", 1, 4, []int{4}, false},
		{"excess below court count", 3, 14, []int{5, 5, 4}, false},
		{"excess above court count", 2, 13, []int{7, 6}, false},
		{"big tournament", 4, 23, []int{6, 6, 6, 5}, false},
		{"too few players", 2, 7, nil, true},
		{"zero courts", 0, 8, nil, true},
		{"negative courts", -1, 8, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlayersPerCourt(tt.numCourts, tt.numPlayers)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("PlayersPerCourt(%d, %d) = %v, want %v", tt.numCourts, tt.numPlayers, got, tt.want)
			}
		})
	}
}

func TestPlayersPerCourtConservation(t *testing.T) {
	for courts := 1; courts <= 6; courts++ {
		for players := courts * BlockSize; players <= courts*BlockSize+20; players++ {
			counts, err := PlayersPerCourt(courts, players)
			if err != nil {
				t.Fatalf("courts=%d players=%d: %v", courts, players, err)
			}
			sum := 0
			for c, n := range counts {
				if n < BlockSize {
					t.Fatalf("courts=%d players=%d: court %d got %d players", courts, players, c, n)
				}
				sum += n
			}
			if sum != players {
				t.Fatalf("courts=%d players=%d: partition sums to %d", courts, players, sum)
			}
		}
	}
}
