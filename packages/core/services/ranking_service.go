package services

import (
	"sort"

	"core/models"

	"gorm.io/gorm"
)

type RankingService struct {
	db *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{
		db: db,
	}
}

// GlobalRanking aggregates cumulative totals across every padel tournament's
// state document, keyed by player display name (the same person usually plays
// several tournaments under the same name). Players with no recorded activity
// are skipped.
func (s *RankingService) GlobalRanking() ([]models.GlobalRankingEntry, error) {
	var tournaments []models.Tournament
	if err := s.db.Select("id", "state_json").
		Where("sport = ?", models.SportPadel).
		Order("created_at DESC").
		Find(&tournaments).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]*models.GlobalRankingEntry)
	var order []string
	for i := range tournaments {
		state := tournaments[i].Ladder()
		if state == nil {
			continue
		}
		for _, p := range state.Players {
			if p.TotalSets == 0 && p.TotalGames == 0 && p.TotalMatches == 0 {
				continue
			}
			entry, ok := byName[p.Name]
			if !ok {
				entry = &models.GlobalRankingEntry{Name: p.Name}
				byName[p.Name] = entry
				order = append(order, p.Name)
			}
			entry.TotalSets += p.TotalSets
			entry.TotalGames += p.TotalGames
			entry.TotalMatches += p.TotalMatches
			entry.TournamentsPlayed++
		}
	}

	entries := make([]models.GlobalRankingEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, *byName[name])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalSets != entries[j].TotalSets {
			return entries[i].TotalSets > entries[j].TotalSets
		}
		return entries[i].TotalGames > entries[j].TotalGames
	})
	return entries, nil
}
