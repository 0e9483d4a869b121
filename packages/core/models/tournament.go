package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"core/escalera"

	"gorm.io/gorm"
)

// Tournament sports
const (
	SportPadel  = "padel"
	SportFutbol = "futbol"
	SportHockey = "hockey"
)

// Tournament modalities
const (
	ModalityEscalera = "escalera"
	ModalityGrupo    = "grupo"
	ModalityLiga     = "liga"
)

// Tournament statuses
const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

// LadderState stores a full escalera.State document in the state_json column.
type LadderState escalera.State

// Value implements driver.Valuer so GORM persists the state as JSON.
func (s *LadderState) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal((*escalera.State)(s))
}

// Scan implements sql.Scanner so GORM loads the state back from JSON.
func (s *LadderState) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, (*escalera.State)(s))
}

type Tournament struct {
	ID        string         `gorm:"primaryKey;size:50" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Sport     string         `gorm:"size:20;not null;default:padel" json:"sport"`   // padel, futbol, hockey
	Modality  string         `gorm:"size:20;default:escalera" json:"modality"`      // escalera, grupo, liga
	Status    string         `gorm:"size:20;not null;default:active" json:"status"` // active, finished
	StartDate *time.Time     `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time     `gorm:"type:date" json:"end_date"`
	Rules     string         `gorm:"type:text" json:"rules"`
	State     *LadderState   `gorm:"column:state_json;type:jsonb" json:"state,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// Ladder returns the tournament's engine state, or nil when none was created.
func (t *Tournament) Ladder() *escalera.State {
	return (*escalera.State)(t.State)
}

// SetLadder replaces the tournament's engine state.
func (t *Tournament) SetLadder(state *escalera.State) {
	t.State = (*LadderState)(state)
}

// DTOs

type CreateTournamentRequest struct {
	Name      string  `json:"name"`
	Sport     string  `json:"sport" binding:"omitempty,oneof=padel futbol hockey"`
	Modality  string  `json:"modality" binding:"omitempty,oneof=escalera grupo liga"`
	Status    string  `json:"status" binding:"omitempty,oneof=active finished"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Rules     string  `json:"rules"`
}

type UpdateTournamentRequest struct {
	Name      *string `json:"name,omitempty"`
	Sport     *string `json:"sport,omitempty" binding:"omitempty,oneof=padel futbol hockey"`
	Modality  *string `json:"modality,omitempty" binding:"omitempty,oneof=escalera grupo liga"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=active finished"`
	StartDate *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Rules     *string `json:"rules,omitempty"`
}

type SetConfigRequest struct {
	NumCourts  int `json:"numCourts" binding:"required,min=1"`
	NumPlayers int `json:"numPlayers" binding:"required,min=4"`
}

type AddPlayersRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

type SetScoreRequest struct {
	SetIndex   *int `json:"setIndex" binding:"required,min=0,max=2"`
	Pair1Games *int `json:"pair1Games" binding:"required,min=0"`
	Pair2Games *int `json:"pair2Games" binding:"required,min=0"`
}

type MatchScoresRequest struct {
	Sets []escalera.SetScore `json:"sets" binding:"required,min=1"`
}

// Responses

// TournamentListItem is the listing projection: tournament metadata plus a few
// fields derived from the state document, without the document itself.
type TournamentListItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Sport       string           `json:"sport"`
	Modality    string           `json:"modality"`
	Status      string           `json:"status"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Rules       string           `json:"rules"`
	CreatedAt   time.Time        `json:"createdAt"`
	Config      *escalera.Config `json:"config"`
	CurrentDate *int             `json:"currentDate"`
	DatesCount  int              `json:"datesCount"`
}

// ListItem derives the listing projection from a tournament row.
func (t *Tournament) ListItem() TournamentListItem {
	item := TournamentListItem{
		ID:        t.ID,
		Name:      t.Name,
		Sport:     t.Sport,
		Modality:  t.Modality,
		Status:    t.Status,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Rules:     t.Rules,
		CreatedAt: t.CreatedAt,
	}
	if state := t.Ladder(); state != nil {
		item.Config = state.Config
		currentDate := state.CurrentDate
		item.CurrentDate = &currentDate
		item.DatesCount = len(state.Dates)
	}
	return item
}

// DateResponse bundles a date record with the refreshed state, as the date
// lifecycle endpoints return both.
type DateResponse struct {
	Date  *escalera.DateRecord `json:"date"`
	State *escalera.State      `json:"state"`
}

// CanCompleteResponse reports whether every match of the current date is done.
type CanCompleteResponse struct {
	CanComplete bool `json:"canComplete"`
}

// GlobalRankingEntry aggregates one player's cumulative totals across every
// padel tournament, keyed by display name.
type GlobalRankingEntry struct {
	Name              string `json:"name"`
	TotalSets         int    `json:"totalSets"`
	TotalGames        int    `json:"totalGames"`
	TotalMatches      int    `json:"totalMatches"`
	TournamentsPlayed int    `json:"tournamentsPlayed"`
}
