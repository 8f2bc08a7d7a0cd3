package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/venturelens/venture-engine/pkg/config"
	"github.com/venturelens/venture-engine/pkg/database"
	"github.com/venturelens/venture-engine/pkg/handlers"
	"github.com/venturelens/venture-engine/pkg/llm"
	"github.com/venturelens/venture-engine/pkg/metrics"
	"github.com/venturelens/venture-engine/pkg/middleware"
	"github.com/venturelens/venture-engine/pkg/repositories"
	"github.com/venturelens/venture-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.String("database", cfg.Database.Database),
		zap.String("database_host", cfg.Database.Host),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Bool("ai_configured", cfg.AI.IsConfigured()))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	_ = migrationDB.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	marketRepo := repositories.NewMarketAnalysisRepository(db)
	productRepo := repositories.NewProductDetailsRepository(db)
	financialRepo := repositories.NewFinancialProjectionsRepository(db)
	evaluationRepo := repositories.NewEvaluationResultsRepository(db)
	progressRepo := repositories.NewWizardProgressRepository(db)

	// Services
	bundleService := services.NewBundleService(projectRepo, marketRepo, productRepo, financialRepo, evaluationRepo, logger)
	evaluationService := services.NewEvaluationService(evaluationRepo, logger)

	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewUserHandler(userRepo, logger).RegisterRoutes(mux)
	handlers.NewProjectHandler(projectRepo, progressRepo, logger).RegisterRoutes(mux)
	handlers.NewMarketAnalysisHandler(marketRepo, logger).RegisterRoutes(mux)
	handlers.NewProductDetailsHandler(productRepo, logger).RegisterRoutes(mux)
	handlers.NewFinancialProjectionsHandler(financialRepo, logger).RegisterRoutes(mux)
	handlers.NewEvaluationHandler(evaluationService, logger).RegisterRoutes(mux)
	handlers.NewDocumentHandler(bundleService, logger).RegisterRoutes(mux)

	if cfg.AI.IsConfigured() {
		client, err := llm.NewFromConfig(&cfg.AI, logger)
		if err != nil {
			logger.Fatal("Failed to create AI client", zap.Error(err))
		}
		recommendationService := services.NewRecommendationService(bundleService, client, &cfg.AI, logger)
		handlers.NewAIHandler(recommendationService, logger).RegisterRoutes(mux)
	} else {
		logger.Warn("AI collaborator not configured; /api/ai routes disabled")
	}

	mux.Handle("/metrics", metrics.Handler())

	handler := middleware.RequestLogger(logger)(metrics.Instrument(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting venture-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a development logger locally and a production logger
// everywhere else.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" || env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
