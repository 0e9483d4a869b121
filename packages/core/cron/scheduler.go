package cron

import (
	"core/services"
	"log"

	authUtils "auth/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Scheduler struct {
	cron              *cron.Cron
	tournamentService *services.TournamentService
	db                *gorm.DB
}

func NewScheduler(tournamentService *services.TournamentService, db *gorm.DB) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:              c,
		tournamentService: tournamentService,
		db:                db,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Close tournaments past their end date every hour, at minute 0
	_, err := s.cron.AddFunc("0 0 * * * *", s.runFinishExpired)
	if err != nil {
		log.Printf("Error scheduling tournament expiry job: %v", err)
		return err
	}

	// Purge expired refresh tokens once a day, at 03:00
	_, err = s.cron.AddFunc("0 0 3 * * *", s.runCleanTokens)
	if err != nil {
		log.Printf("Error scheduling token cleanup job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runFinishExpired marks active tournaments whose end date has passed as finished
func (s *Scheduler) runFinishExpired() {
	log.Println("Running tournament expiry job...")

	count, err := s.tournamentService.FinishExpiredTournaments()
	if err != nil {
		log.Printf("Error finishing expired tournaments: %v", err)
		return
	}

	if count == 0 {
		log.Println("No expired tournaments to finish")
		return
	}

	log.Printf("Marked %d tournaments as finished", count)
}

// runCleanTokens deletes expired refresh tokens
func (s *Scheduler) runCleanTokens() {
	log.Println("Running refresh token cleanup job...")

	if err := authUtils.CleanExpiredTokens(s.db); err != nil {
		log.Printf("Error cleaning expired tokens: %v", err)
		return
	}

	log.Println("Refresh token cleanup completed")
}

// RunNow manually triggers the expiry job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering tournament expiry job...")
	s.runFinishExpired()
}
