package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ideaforge/ideaforge-backend/internal/http/handlers"
	"github.com/ideaforge/ideaforge-backend/internal/http/middleware"
)

type RouterConfig struct {
	CORSOrigins []string

	ActorMiddleware   *middleware.ActorMiddleware
	IdeaHandler       *handlers.IdeaHandler
	HypothesisHandler *handlers.HypothesisHandler
	ExperimentHandler *handlers.ExperimentHandler
	ReportHandler     *handlers.ReportHandler
	UserHandler       *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("ideaforge"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Actor-ID"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.ActorMiddleware.RequireActor())
	{
		// Ideas
		api.POST("/ideas", cfg.IdeaHandler.Submit)
		api.GET("/ideas/:id", cfg.IdeaHandler.Get)
		api.POST("/ideas/:id/score", cfg.IdeaHandler.Score)
		api.POST("/ideas/:id/select", cfg.IdeaHandler.Select)
		api.GET("/ideas/:id/hypotheses", cfg.IdeaHandler.Hypotheses)
		api.POST("/ideas/:id/hypotheses", cfg.IdeaHandler.CreateHypothesis)
		api.DELETE("/ideas/:id", cfg.IdeaHandler.SoftDelete)
		api.POST("/ideas/:id/restore", cfg.IdeaHandler.Restore)
		// Hypotheses
		api.GET("/hypotheses/:id", cfg.HypothesisHandler.Get)
		api.GET("/hypotheses/:id/ice-scores", cfg.HypothesisHandler.ICEScores)
		api.POST("/hypotheses/:id/ice-scores", cfg.HypothesisHandler.PerformICEScoring)
		api.POST("/hypotheses/:id/desk-research", cfg.HypothesisHandler.CompleteDeskResearch)
		api.POST("/hypotheses/:id/experiments", cfg.HypothesisHandler.CreateExperiment)
		// Experiments
		api.GET("/experiments/running", cfg.ExperimentHandler.ListRunning)
		api.GET("/experiments/:id", cfg.ExperimentHandler.Get)
		api.GET("/experiments/:id/results", cfg.ExperimentHandler.Results)
		api.POST("/experiments/:id/start", cfg.ExperimentHandler.Start)
		api.POST("/experiments/:id/complete", cfg.ExperimentHandler.Complete)
		api.POST("/experiments/:id/mvp", cfg.ExperimentHandler.CreateMVP)
		// Reports
		api.GET("/reports/funnel", cfg.ReportHandler.Funnel)
		api.GET("/activities/entity/:type/:id", cfg.ReportHandler.EntityActivity)
		// Users
		api.POST("/users", cfg.UserHandler.Create)
		api.GET("/users/:id", cfg.UserHandler.Get)
	}

	return router
}
