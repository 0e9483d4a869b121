package core

import (
	"core/cron"
	"core/handlers"
	"core/services"
	"log"

	authMiddleware "auth/middleware"
	authModels "auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	TournamentHandler *handlers.TournamentHandler
	TournamentService *services.TournamentService
	RankingHandler    *handlers.RankingHandler
	RankingService    *services.RankingService
	Scheduler         *cron.Scheduler
	db                *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	tournamentService := services.NewTournamentService(db)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)

	rankingService := services.NewRankingService(db)
	rankingHandler := handlers.NewRankingHandler(rankingService)

	scheduler := cron.NewScheduler(tournamentService, db)

	return &Module{
		TournamentHandler: tournamentHandler,
		TournamentService: tournamentService,
		RankingHandler:    rankingHandler,
		RankingService:    rankingService,
		Scheduler:         scheduler,
		db:                db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/tournaments", m.TournamentHandler.GetAllTournaments)
	api.POST("/tournaments", authMiddleware.JWTMiddleware(), authMiddleware.RequireRole(m.db, authModels.RoleAdmin), m.TournamentHandler.CreateTournament)

	tournament := api.Group("/tournament/:id")
	{
		tournament.GET("", m.TournamentHandler.GetTournament)
		tournament.PATCH("", authMiddleware.JWTMiddleware(), authMiddleware.RequireRole(m.db, authModels.RoleAdmin), m.TournamentHandler.UpdateTournament)
		tournament.DELETE("", authMiddleware.JWTMiddleware(), authMiddleware.RequireRole(m.db, authModels.RoleAdmin), m.TournamentHandler.DeleteTournament)

		tournament.GET("/state", m.TournamentHandler.GetState)
		tournament.GET("/config", m.TournamentHandler.GetConfig)
		tournament.GET("/ranking", m.TournamentHandler.GetRanking)

		tournament.POST("/reset", authMiddleware.JWTMiddleware(), m.TournamentHandler.Reset)
		tournament.POST("/config", authMiddleware.JWTMiddleware(), m.TournamentHandler.SetConfig)
		tournament.POST("/players", authMiddleware.JWTMiddleware(), m.TournamentHandler.AddPlayers)

		tournament.POST("/date/start", authMiddleware.JWTMiddleware(), m.TournamentHandler.StartDate)
		tournament.POST("/date/generate", authMiddleware.JWTMiddleware(), m.TournamentHandler.GenerateDate)
		tournament.GET("/date/can-complete", m.TournamentHandler.CanCompleteDate)
		tournament.POST("/date/complete", authMiddleware.JWTMiddleware(), m.TournamentHandler.CompleteDate)
		tournament.POST("/date/next", authMiddleware.JWTMiddleware(), m.TournamentHandler.NextDate)

		tournament.POST("/match/:matchId/score", authMiddleware.JWTMiddleware(), m.TournamentHandler.SetScore)
		tournament.POST("/match/:matchId/scores", authMiddleware.JWTMiddleware(), m.TournamentHandler.SetScores)
		tournament.POST("/match/:matchId/complete", authMiddleware.JWTMiddleware(), m.TournamentHandler.CompleteMatch)
	}

	api.GET("/ranking/global", m.RankingHandler.GlobalRanking)
}

// StartScheduler starts the cron scheduler for tournament expiry
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
