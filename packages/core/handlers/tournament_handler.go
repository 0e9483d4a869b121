package handlers

import (
	"errors"
	"net/http"

	"core/escalera"
	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(tournamentService *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// respondError maps service and engine failures onto HTTP statuses: missing
// tournaments are 404, rest violations and inconsistent state 409, engine
// input and precondition failures 400, anything else 500.
func respondError(c *gin.Context, err error) {
	var status int
	var restErr *escalera.RestViolationError
	var stateErr *escalera.StateError
	var cfgErr *escalera.ConfigError
	var preErr *escalera.PreconditionError

	switch {
	case errors.Is(err, services.ErrTournamentNotFound):
		status = http.StatusNotFound
	case errors.As(err, &restErr), errors.As(err, &stateErr):
		status = http.StatusConflict
	case errors.As(err, &cfgErr), errors.As(err, &preErr), errors.Is(err, services.ErrNotPadel):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// CreateTournament creates a new tournament
// @Summary Create a new tournament
// @Description Create a tournament; padel escalera tournaments start with an empty engine state (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tournament)
}

// GetAllTournaments lists tournaments
// @Summary List tournaments
// @Description List all tournaments, optionally filtered by status and sport
// @Tags tournaments
// @Produce json
// @Param status query string false "Filter by status" Enums(active, finished)
// @Param sport query string false "Filter by sport" Enums(padel, futbol, hockey)
// @Success 200 {array} models.TournamentListItem
// @Failure 500 {object} map[string]string
// @Router /api/tournaments [get]
func (h *TournamentHandler) GetAllTournaments(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}
	var sport *string
	if s := c.Query("sport"); s != "" {
		sport = &s
	}

	items, err := h.tournamentService.GetAllTournaments(status, sport)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTournament gets one tournament
// @Summary Get tournament by ID
// @Description Get tournament metadata together with its full state document
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	tournament, err := h.tournamentService.GetTournamentByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// UpdateTournament updates tournament metadata
// @Summary Update tournament
// @Description Update tournament metadata (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param tournament body models.UpdateTournamentRequest true "Fields to update"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id} [patch]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	var req models.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament deletes a tournament
// @Summary Delete tournament
// @Description Delete a tournament and its state (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	if err := h.tournamentService.DeleteTournament(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetState returns the engine state
// @Summary Get tournament state
// @Description Get the full ladder state document of a padel tournament
// @Tags escalera
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} escalera.State
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/state [get]
func (h *TournamentHandler) GetState(c *gin.Context) {
	var state *escalera.State
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		state = e.State()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetConfig returns the engine config
// @Summary Get tournament config
// @Tags escalera
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/config [get]
func (h *TournamentHandler) GetConfig(c *gin.Context) {
	var cfg *escalera.Config
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		cfg = e.State().Config
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// GetRanking returns the cumulative ranking
// @Summary Get tournament ranking
// @Description Per-court and global ranking by cumulative sets and games
// @Tags escalera
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} escalera.Ranking
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/ranking [get]
func (h *TournamentHandler) GetRanking(c *gin.Context) {
	var ranking *escalera.Ranking
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		ranking = e.Ranking()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// Reset discards the tournament state
// @Summary Reset tournament
// @Description Discard configuration, players and dates; back to the config stage (admin only)
// @Tags escalera
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} escalera.State
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/reset [post]
func (h *TournamentHandler) Reset(c *gin.Context) {
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		return e.Reset(), nil
	})
}

// SetConfig configures courts and players
// @Summary Configure the tournament
// @Description Set the court and player counts; clears players and dates (admin only)
// @Tags escalera
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param config body models.SetConfigRequest true "Court and player counts"
// @Success 200 {object} escalera.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/config [post]
func (h *TournamentHandler) SetConfig(c *gin.Context) {
	var req models.SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		return e.SetConfig(req.NumCourts, req.NumPlayers)
	})
}

// AddPlayers registers the roster
// @Summary Register players
// @Description Register the full roster at once; must match the configured player count (admin only)
// @Tags escalera
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param players body models.AddPlayersRequest true "Player names"
// @Success 200 {object} escalera.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/players [post]
func (h *TournamentHandler) AddPlayers(c *gin.Context) {
	var req models.AddPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		return e.AddPlayers(req.Names)
	})
}

// StartDate enters the current date, generating matches when none exist
// @Summary Start the current date
// @Description Return the current date record, generating its matches first when the date has none (admin only)
// @Tags escalera
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.DateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/date/start [post]
func (h *TournamentHandler) StartDate(c *gin.Context) {
	var resp models.DateResponse
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		rec := e.CurrentDateRecord()
		if rec == nil || len(rec.Matches) == 0 {
			var err error
			if rec, err = e.GenerateDateMatches(); err != nil {
				return err
			}
		}
		resp = models.DateResponse{Date: rec, State: e.State()}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateDate regenerates the current date's matches
// @Summary Generate matches for the current date
// @Tags escalera
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.DateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/date/generate [post]
func (h *TournamentHandler) GenerateDate(c *gin.Context) {
	var resp models.DateResponse
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		rec, err := e.GenerateDateMatches()
		if err != nil {
			return err
		}
		resp = models.DateResponse{Date: rec, State: e.State()}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetScore records one set of a match
// @Summary Record a set score
// @Tags escalera
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param matchId path string true "Match ID"
// @Param score body models.SetScoreRequest true "Set score"
// @Success 200 {object} escalera.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/match/{matchId}/score [post]
func (h *TournamentHandler) SetScore(c *gin.Context) {
	var req models.SetScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	matchID := c.Param("matchId")
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		if _, err := e.SetSetScore(matchID, *req.SetIndex, *req.Pair1Games, *req.Pair2Games); err != nil {
			return nil, err
		}
		return e.State(), nil
	})
}

// SetScores records several sets of a match at once
// @Summary Record a whole match score
// @Description Apply the scores of up to three sets in one call
// @Tags escalera
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param matchId path string true "Match ID"
// @Param scores body models.MatchScoresRequest true "Set scores"
// @Success 200 {object} escalera.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/match/{matchId}/scores [post]
func (h *TournamentHandler) SetScores(c *gin.Context) {
	var req models.MatchScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	matchID := c.Param("matchId")
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		if _, err := e.SetMatchScores(matchID, req.Sets); err != nil {
			return nil, err
		}
		return e.State(), nil
	})
}

// CompleteMatch finalizes a match
// @Summary Complete a match
// @Description Finalize a match and aggregate its players' date counters; fails on a rest violation
// @Tags escalera
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tournament ID"
// @Param matchId path string true "Match ID"
// @Success 200 {object} escalera.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/tournament/{id}/match/{matchId}/complete [post]
func (h *TournamentHandler) CompleteMatch(c *gin.Context) {
	matchID := c.Param("matchId")
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		if _, err := e.CompleteMatch(matchID); err != nil {
			return nil, err
		}
		return e.State(), nil
	})
}

// CompleteDate closes the current date
// @Summary Complete the current date
// @Description Fold counters into totals, snapshot the ranking and apply ladder movement past the qualifying window
// @Tags escalera
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} escalera.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/date/complete [post]
func (h *TournamentHandler) CompleteDate(c *gin.Context) {
	h.runEngineOp(c, func(e *escalera.Engine) (*escalera.State, error) {
		return e.CompleteDate()
	})
}

// CanCompleteDate reports whether the date can be closed
// @Summary Check whether the current date can be completed
// @Tags escalera
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.CanCompleteResponse
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/date/can-complete [get]
func (h *TournamentHandler) CanCompleteDate(c *gin.Context) {
	var resp models.CanCompleteResponse
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		resp.CanComplete = e.AllMatchesComplete()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextDate advances to the next date
// @Summary Start the next date
// @Description Advance to the next date and generate its matches from the moved court assignments (admin only)
// @Tags escalera
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.DateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tournament/{id}/date/next [post]
func (h *TournamentHandler) NextDate(c *gin.Context) {
	var resp models.DateResponse
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		rec, err := e.StartNextDate()
		if err != nil {
			return err
		}
		resp = models.DateResponse{Date: rec, State: e.State()}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// runEngineOp runs one state-returning engine operation and responds with the
// refreshed state document.
func (h *TournamentHandler) runEngineOp(c *gin.Context, op func(*escalera.Engine) (*escalera.State, error)) {
	var state *escalera.State
	_, err := h.tournamentService.WithState(c.Param("id"), func(e *escalera.Engine) error {
		var err error
		state, err = op(e)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
