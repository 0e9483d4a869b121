package handlers

import (
	"net/http"

	"core/services"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingService *services.RankingService
}

func NewRankingHandler(rankingService *services.RankingService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

// GlobalRanking returns the cross-tournament ranking
// @Summary Get the global ranking
// @Description Aggregate every padel tournament's totals into one ranking keyed by player name
// @Tags rankings
// @Produce json
// @Success 200 {array} models.GlobalRankingEntry
// @Failure 500 {object} map[string]string
// @Router /api/ranking/global [get]
func (h *RankingHandler) GlobalRanking(c *gin.Context) {
	entries, err := h.rankingService.GlobalRanking()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
