package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ideaforge/ideaforge-backend/internal/clients/redis"
	"github.com/ideaforge/ideaforge-backend/internal/data/audit"
	"github.com/ideaforge/ideaforge-backend/internal/data/db"
	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/http/handlers"
	"github.com/ideaforge/ideaforge-backend/internal/http/middleware"
	"github.com/ideaforge/ideaforge-backend/internal/observability"
	"github.com/ideaforge/ideaforge-backend/internal/platform/config"
	"github.com/ideaforge/ideaforge-backend/internal/platform/envutil"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
	"github.com/ideaforge/ideaforge-backend/internal/server"
	"github.com/ideaforge/ideaforge-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration from main...")
	cfg, err := config.Load(log)
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "ideaforge",
		Environment: cfg.Env,
		Version:     envutil.GetEnv("SERVICE_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(cfg.Postgres, log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = db.AutoMigrateAll(postgresService.DB()); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Audit
	recorder := audit.NewRecorder(thePG, log)

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := funnel.NewUserRepo(thePG, log)
	ideaRepo := funnel.NewIdeaRepo(thePG, log, recorder)
	iceScoreRepo := funnel.NewICEScoreRepo(thePG, log)
	hypothesisRepo := funnel.NewHypothesisRepo(thePG, log, iceScoreRepo, recorder)
	experimentRepo := funnel.NewExperimentRepo(thePG, log, recorder)
	resultRepo := funnel.NewExperimentResultRepo(thePG, log)
	criteriaRepo := funnel.NewSuccessCriteriaRepo(thePG, log)
	mvpRepo := funnel.NewMVPRepo(thePG, log)
	lessonRepo := funnel.NewLessonRepo(thePG, log)
	activityRepo := funnel.NewActivityRepo(thePG, log)

	// Transactions
	txRunner := db.NewSerializableTxRunner(thePG, log, cfg.TxTimeout())

	// Report cache (optional)
	var reportCache services.ReportCache
	if cfg.RedisAddr != "" {
		rc, err := redis.NewReportCache(cfg.RedisAddr, log)
		if err != nil {
			log.Warn("Redis init failed, running without report cache", "error", err)
		} else {
			defer rc.Close()
			reportCache = rc
		}
	}

	// Services
	log.Info("Setting up Services from main...")
	workflowService := services.NewWorkflowService(
		txRunner,
		log,
		ideaRepo,
		hypothesisRepo,
		iceScoreRepo,
		experimentRepo,
		resultRepo,
		criteriaRepo,
		mvpRepo,
		lessonRepo,
		recorder,
	)
	reportService := services.NewFunnelReportService(log, ideaRepo, hypothesisRepo, experimentRepo, activityRepo, reportCache)
	userService := services.NewUserService(log, userRepo, recorder)

	// Handlers
	log.Info("Setting up handlers from main...")
	ideaHandler := handlers.NewIdeaHandler(log, workflowService, ideaRepo, hypothesisRepo)
	hypothesisHandler := handlers.NewHypothesisHandler(log, workflowService, hypothesisRepo, iceScoreRepo)
	experimentHandler := handlers.NewExperimentHandler(log, workflowService, experimentRepo, resultRepo)
	reportHandler := handlers.NewReportHandler(log, reportService, activityRepo)
	userHandler := handlers.NewUserHandler(log, userService)

	// Middleware
	actorMiddleware := middleware.NewActorMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:       cfg.CORSOrigins,
		ActorMiddleware:   actorMiddleware,
		IdeaHandler:       ideaHandler,
		HypothesisHandler: hypothesisHandler,
		ExperimentHandler: experimentHandler,
		ReportHandler:     reportHandler,
		UserHandler:       userHandler,
	})

	fmt.Printf("Server listening on :%s\n", cfg.HTTPPort)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Error("Server failed", "error", err)
	}
}
