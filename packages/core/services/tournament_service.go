package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"core/escalera"
	"core/models"

	"gorm.io/gorm"
)

// ErrTournamentNotFound is returned when a tournament id does not exist.
var ErrTournamentNotFound = errors.New("Torneo no encontrado")

// ErrNotPadel is returned when an escalera operation targets a tournament that
// is not run by the ladder engine.
var ErrNotPadel = errors.New("Este torneo no es de pádel")

type TournamentService struct {
	db *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{
		db: db,
	}
}

// newTournamentID builds ids in the historical "t-<timestamp36>-<random36>"
// form so new rows sort and read like the existing ones.
func newTournamentID() string {
	return fmt.Sprintf("t-%s-%s",
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		strconv.FormatInt(rand.Int63n(1<<35), 36))
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %s", *value)
	}
	return &t, nil
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (*models.Tournament, error) {
	sport := req.Sport
	if sport == "" {
		sport = models.SportPadel
	}
	modality := req.Modality
	if modality == "" {
		if sport == models.SportPadel {
			modality = models.ModalityEscalera
		} else {
			modality = models.ModalityLiga
		}
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		ID:        newTournamentID(),
		Sport:     sport,
		Modality:  modality,
		Status:    status,
		StartDate: startDate,
		EndDate:   endDate,
		Rules:     req.Rules,
	}
	tournament.Name = strings.TrimSpace(req.Name)
	if tournament.Name == "" {
		tournament.Name = "Torneo " + tournament.ID
	}

	// Padel escalera tournaments start with an empty engine state; other
	// tournaments carry metadata only.
	if sport == models.SportPadel && modality == models.ModalityEscalera {
		tournament.SetLadder(escalera.NewState())
	}

	if err := s.db.Create(tournament).Error; err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *TournamentService) GetTournamentByID(id string) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// GetAllTournaments lists tournaments newest first, optionally filtered by
// status and sport.
func (s *TournamentService) GetAllTournaments(status, sport *string) ([]models.TournamentListItem, error) {
	var tournaments []models.Tournament

	query := s.db.Model(&models.Tournament{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if sport != nil {
		query = query.Where("sport = ?", *sport)
	}
	if err := query.Order("created_at DESC").Find(&tournaments).Error; err != nil {
		return nil, err
	}

	items := make([]models.TournamentListItem, len(tournaments))
	for i := range tournaments {
		items[i] = tournaments[i].ListItem()
	}
	return items, nil
}

func (s *TournamentService) UpdateTournament(id string, req models.UpdateTournamentRequest) (*models.Tournament, error) {
	if _, err := s.GetTournamentByID(id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Sport != nil {
		updates["sport"] = *req.Sport
	}
	if req.Modality != nil {
		updates["modality"] = *req.Modality
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		updates["end_date"] = endDate
	}
	if req.Rules != nil {
		updates["rules"] = *req.Rules
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Tournament{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetTournamentByID(id)
}

func (s *TournamentService) DeleteTournament(id string) error {
	result := s.db.Delete(&models.Tournament{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTournamentNotFound
	}
	return nil
}

// WithState is the contract between the persistence layer and the engine:
// load the tournament's state document, run exactly one engine operation over
// it, and persist the resulting document verbatim. The state is only written
// back when the operation succeeds, so a failed operation leaves the stored
// document untouched.
func (s *TournamentService) WithState(id string, fn func(*escalera.Engine) error) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(id)
	if err != nil {
		return nil, err
	}
	if tournament.Sport != models.SportPadel {
		return nil, ErrNotPadel
	}

	engine := escalera.New(tournament.Ladder())
	if err := fn(engine); err != nil {
		return nil, err
	}

	tournament.SetLadder(engine.State())
	if err := s.db.Model(&models.Tournament{}).Where("id = ?", id).
		Update("state_json", tournament.State).Error; err != nil {
		return nil, err
	}
	return tournament, nil
}

// FinishExpiredTournaments marks active tournaments whose end date has passed
// as finished. Returns how many rows changed.
func (s *TournamentService) FinishExpiredTournaments() (int64, error) {
	result := s.db.Model(&models.Tournament{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", models.StatusActive, time.Now()).
		Update("status", models.StatusFinished)
	return result.RowsAffected, result.Error
}
