package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/escalera"
	"core/models"
	"core/services"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

const (
	demoCourts  = 2
	demoPlayers = 8
	demoDates   = 2
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData seeds an admin user and a demo padel tournament with a
// couple of completed dates, leaving the next one in progress.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	if err := f.seedAdmin(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := f.seedDemoTournament(); err != nil {
		return fmt.Errorf("failed to seed demo tournament: %w", err)
	}

	log.Println("Fixtures generation completed")
	return nil
}

// ClearAllData wipes fixture tables in dependency order
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	tables := []string{"tournaments", "refresh_tokens", "users"}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	log.Println("All fixture data cleared")
	return nil
}

func (f *Fixtures) seedAdmin() error {
	var count int64
	if err := f.db.Model(&authModels.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := authUtils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := authModels.User{
		Username: "admin",
		Password: hash,
		Enabled:  true,
		Roles:    authModels.Roles{authModels.RoleAdmin, authModels.RoleUser},
	}
	return f.db.Create(&admin).Error
}

func (f *Fixtures) seedDemoTournament() error {
	tournamentService := services.NewTournamentService(f.db)

	name := "Escalera de prueba"
	tournament, err := tournamentService.CreateTournament(models.CreateTournamentRequest{
		Name: name,
	})
	if err != nil {
		return err
	}

	names := make([]string, demoPlayers)
	for i := range names {
		names[i] = gofakeit.FirstName() + " " + gofakeit.LastName()
	}

	_, err = tournamentService.WithState(tournament.ID, func(e *escalera.Engine) error {
		if _, err := e.SetConfig(demoCourts, demoPlayers); err != nil {
			return err
		}
		if _, err := e.AddPlayers(names); err != nil {
			return err
		}
		if _, err := e.GenerateDateMatches(); err != nil {
			return err
		}

		for i := 0; i < demoDates; i++ {
			if err := playOutDate(e); err != nil {
				return err
			}
			if _, err := e.CompleteDate(); err != nil {
				return err
			}
			if _, err := e.StartNextDate(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded demo tournament %s with %d players and %d completed dates",
		tournament.ID, demoPlayers, demoDates)
	return nil
}

// playOutDate records plausible scores for every match of the current date
// and completes them
func playOutDate(e *escalera.Engine) error {
	rec := e.CurrentDateRecord()
	if rec == nil {
		return fmt.Errorf("no current date to play out")
	}

	for _, match := range rec.Matches {
		for set := 0; set < escalera.SetsPerMatch; set++ {
			winnerGames := 6
			loserGames := rand.Intn(5)
			if rand.Intn(2) == 0 {
				if _, err := e.SetSetScore(match.ID, set, winnerGames, loserGames); err != nil {
					return err
				}
			} else {
				if _, err := e.SetSetScore(match.ID, set, loserGames, winnerGames); err != nil {
					return err
				}
			}
		}
		if _, err := e.CompleteMatch(match.ID); err != nil {
			return err
		}
	}
	return nil
}
