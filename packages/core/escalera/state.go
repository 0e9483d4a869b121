// Package escalera implements the ladder ("escalera") tournament engine:
// court partitioning, per-date match generation with rest rotation, score
// recording, rankings and the promotion/relegation ladder between courts.
//
// The engine is pure in-memory computation over a single State value. It does
// no I/O and no locking; callers load a state, run one operation through an
// Engine and persist the resulting state (one in-flight operation per
// tournament at a time is the caller's responsibility).
package escalera

// SetsPerMatch is the number of sets every block match is played to. The three
// sets rotate the pairings so each player partners every other player in the
// block exactly once.
const SetsPerMatch = 3

// BlockSize is the number of players in a block, the atomic unit that produces
// one match.
const BlockSize = 4

// QualifyingDates is the number of initial dates during which no ladder
// movement is applied.
const QualifyingDates = 1

// Status is the lifecycle stage of a tournament state.
type Status string

const (
	StatusConfig       Status = "config"
	StatusPlayers      Status = "players"
	StatusDate         Status = "date"
	StatusDateComplete Status = "date_complete"
)

// Config holds the immutable tournament setup. PlayersPerCourt always sums to
// NumPlayers and every entry is at least BlockSize.
type Config struct {
	NumCourts       int   `json:"numCourts"`
	NumPlayers      int   `json:"numPlayers"`
	PlayersPerCourt []int `json:"playersPerCourt"`
	QualifyingDates int   `json:"qualifyingDates"`
}

// Player is one registered participant. The *InDate counters accumulate during
// a date and are folded into the cumulative totals exactly once, when the date
// completes.
type Player struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	CourtIndex          int    `json:"courtIndex"`
	PositionInCourt     int    `json:"positionInCourt"`
	GamesInDate         int    `json:"gamesInDate"`
	SetsWonInDate       int    `json:"setsWonInDate"`
	MatchesPlayedInDate int    `json:"matchesPlayedInDate"`
	TotalGames          int    `json:"totalGames"`
	TotalSets           int    `json:"totalSets"`
	TotalMatches        int    `json:"totalMatches"`
}

// Pair is a doubles pairing of two player ids.
type Pair [2]string

// Set is one of the three sets of a block match. The pairings are fixed at
// generation time; only the games are written by score recording. A tied set
// counts toward nobody's set tally, but its games still accrue.
type Set struct {
	Pair1      Pair `json:"pair1"`
	Pair2      Pair `json:"pair2"`
	Pair1Games int  `json:"pair1Games"`
	Pair2Games int  `json:"pair2Games"`
}

// Match is the match of one block on one date. Pair1/Pair2 are the match-level
// labels; the authoritative per-set pairings live on the sets.
type Match struct {
	ID         string `json:"id"`
	CourtIndex int    `json:"courtIndex"`
	BlockIndex int    `json:"blockIndex"`
	Pair1      Pair   `json:"pair1"`
	Pair2      Pair   `json:"pair2"`
	Sets       []Set  `json:"sets"`
	Completed  bool   `json:"completed"`
}

// PlayerIDs returns the four participants of the match.
func (m *Match) PlayerIDs() []string {
	return []string{m.Pair1[0], m.Pair1[1], m.Pair2[0], m.Pair2[1]}
}

// Movement records which players of a court ranked into the promotion and
// relegation groups when a date completed.
type Movement struct {
	CourtIndex int      `json:"courtIndex"`
	Up         []string `json:"up"`
	Down       []string `json:"down"`
}

// RankedPlayer is a read-only ranking projection of a player. PositionInCourt
// is recomputed for the ranking; GlobalPosition is only set in global views.
type RankedPlayer struct {
	Player
	GlobalPosition int `json:"globalPosition,omitempty"`
}

// Ranking is a per-court plus global ordering of players.
type Ranking struct {
	ByCourt map[int][]RankedPlayer `json:"byCourt"`
	Global  []RankedPlayer         `json:"global"`
}

// DateRecord is the full record of one date. Once Completed it is an immutable
// snapshot kept for history.
type DateRecord struct {
	// DateIndex is the 1-based date number, as persisted by the original
	// document shape.
	DateIndex           int        `json:"dateIndex"`
	RestByCourt         [][]string `json:"restByCourt"`
	CourtAssignments    [][]string `json:"courtAssignments"`
	Matches             []Match    `json:"matches"`
	Completed           bool       `json:"completed"`
	CompletedMatchOrder []string   `json:"completedMatchOrder"`
	Movements           []Movement `json:"movements,omitempty"`
	RankingAtEnd        *Ranking   `json:"rankingAtEnd,omitempty"`
	IsQualifying        bool       `json:"isQualifying,omitempty"`
}

// Match returns the match with the given id, or nil.
func (d *DateRecord) Match(id string) *Match {
	for i := range d.Matches {
		if d.Matches[i].ID == id {
			return &d.Matches[i]
		}
	}
	return nil
}

// AllMatchesComplete reports whether the date has matches and every one of
// them is completed.
func (d *DateRecord) AllMatchesComplete() bool {
	if d == nil || len(d.Matches) == 0 {
		return false
	}
	for i := range d.Matches {
		if !d.Matches[i].Completed {
			return false
		}
	}
	return true
}

// State is the root aggregate of one tournament. It is the JSON document the
// persistence layer loads and stores verbatim.
type State struct {
	Config      *Config      `json:"config"`
	Players     []Player     `json:"players"`
	CurrentDate int          `json:"currentDate"`
	Dates       []DateRecord `json:"dates"`
	Status      Status       `json:"status"`
}

// NewState returns an empty tournament state awaiting configuration.
func NewState() *State {
	return &State{
		Players: []Player{},
		Dates:   []DateRecord{},
		Status:  StatusConfig,
	}
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func cloneStringMatrix(src [][]string) [][]string {
	if src == nil {
		return nil
	}
	out := make([][]string, len(src))
	for i, row := range src {
		out[i] = cloneStrings(row)
	}
	return out
}

// Clone returns a deep copy of the match.
func (m *Match) Clone() *Match {
	out := *m
	out.Sets = make([]Set, len(m.Sets))
	copy(out.Sets, m.Sets)
	return &out
}

// Clone returns a deep copy of the ranking.
func (r *Ranking) Clone() *Ranking {
	if r == nil {
		return nil
	}
	out := &Ranking{Global: make([]RankedPlayer, len(r.Global))}
	copy(out.Global, r.Global)
	if r.ByCourt != nil {
		out.ByCourt = make(map[int][]RankedPlayer, len(r.ByCourt))
		for c, players := range r.ByCourt {
			cp := make([]RankedPlayer, len(players))
			copy(cp, players)
			out.ByCourt[c] = cp
		}
	}
	return out
}

// Clone returns a deep copy of the date record.
func (d *DateRecord) Clone() *DateRecord {
	if d == nil {
		return nil
	}
	out := *d
	out.RestByCourt = cloneStringMatrix(d.RestByCourt)
	out.CourtAssignments = cloneStringMatrix(d.CourtAssignments)
	out.CompletedMatchOrder = cloneStrings(d.CompletedMatchOrder)
	out.Matches = make([]Match, len(d.Matches))
	for i := range d.Matches {
		out.Matches[i] = *d.Matches[i].Clone()
	}
	if d.Movements != nil {
		out.Movements = make([]Movement, len(d.Movements))
		for i, mv := range d.Movements {
			out.Movements[i] = Movement{
				CourtIndex: mv.CourtIndex,
				Up:         cloneStrings(mv.Up),
				Down:       cloneStrings(mv.Down),
			}
		}
	}
	out.RankingAtEnd = d.RankingAtEnd.Clone()
	return &out
}

// Clone returns a deep copy of the state, so callers can never retain aliasing
// references into engine internals.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		CurrentDate: s.CurrentDate,
		Status:      s.Status,
	}
	if s.Config != nil {
		cfg := *s.Config
		cfg.PlayersPerCourt = append([]int(nil), s.Config.PlayersPerCourt...)
		out.Config = &cfg
	}
	out.Players = make([]Player, len(s.Players))
	copy(out.Players, s.Players)
	out.Dates = make([]DateRecord, len(s.Dates))
	for i := range s.Dates {
		out.Dates[i] = *s.Dates[i].Clone()
	}
	return out
}

// player returns a pointer into the players slice for in-place mutation.
func (s *State) player(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// courtPlayers returns the players of a court ordered by position.
func (s *State) courtPlayers(court int) []Player {
	players := make([]Player, 0, BlockSize)
	for _, p := range s.Players {
		if p.CourtIndex == court {
			players = append(players, p)
		}
	}
	for i := 1; i < len(players); i++ {
		for j := i; j > 0 && players[j].PositionInCourt < players[j-1].PositionInCourt; j-- {
			players[j], players[j-1] = players[j-1], players[j]
		}
	}
	return players
}
