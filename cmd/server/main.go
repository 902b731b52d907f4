package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/relman-tools/trainhop-readiness/internal/adapter/github"
	"github.com/relman-tools/trainhop-readiness/internal/adapter/hgweb"
	"github.com/relman-tools/trainhop-readiness/internal/adapter/report"
	"github.com/relman-tools/trainhop-readiness/internal/adapter/schedule"
	"github.com/relman-tools/trainhop-readiness/internal/adapter/store"
	"github.com/relman-tools/trainhop-readiness/internal/adapter/treeherder"
	"github.com/relman-tools/trainhop-readiness/internal/adapter/vcsmap"
	"github.com/relman-tools/trainhop-readiness/internal/handler"
	"github.com/relman-tools/trainhop-readiness/internal/middleware"
	"github.com/relman-tools/trainhop-readiness/internal/port"
	"github.com/relman-tools/trainhop-readiness/internal/service"
	"github.com/relman-tools/trainhop-readiness/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting Trainhop Readiness",
		"port", cfg.Port,
		"hg", cfg.HgBaseURL,
		"github_repo", cfg.GitHubRepo,
		"treeherder", cfg.TreeherderURL,
	)

	// ── Mapping cache ────────────────────────────────────────────────────
	var (
		cache       port.MappingCache
		auditWriter middleware.AuditWriter
	)
	if cfg.DatabaseURL != "" {
		pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pgStore.Close()
		cache = pgStore
		auditWriter = pgStore
	} else {
		slog.Warn("no DATABASE_URL set, mapping cache is in-memory only")
		cache = store.NewMemoryStore()
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	hgClient := hgweb.New(cfg.HgBaseURL, cfg.HgRepo)
	gitClient := github.New(cfg.GitHubAPIURL, cfg.GitHubRepo, cfg.GitHubToken)
	mapperClient := vcsmap.New(cfg.MapperURL, cfg.MapperProject)
	ciClient := treeherder.New(cfg.TreeherderURL, cfg.TreeherderProject)
	calClient := schedule.New(cfg.ScheduleURL)
	reportSource := report.New(gitClient, cfg.ReportPath)

	// ── Services ─────────────────────────────────────────────────────────
	resolver := service.NewIdentifierResolver(mapperClient, cache)
	validator := service.NewRevisionValidator(gitClient, resolver)
	gateway := service.NewScheduleGateway(calClient)
	aggregator := service.NewCIAggregator(ciClient, cfg.JobGroupSymbol)
	classifier := service.NewLocaleClassifier(cfg.TrackedFileID)

	readiness := service.NewReadinessService(
		validator,
		aggregator,
		hgClient,
		gateway,
		reportSource,
		classifier,
		cfg.MainFilePath,
		cfg.WebextFilePath,
	)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "OPTIONS"},
	}))

	if auditWriter != nil {
		app.Use(middleware.AuditMiddleware(auditWriter))
	}

	// Health check
	app.Get("/api/v1/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": "1.0.0",
		})
	})

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	readinessHandler := handler.NewReadinessHandler(readiness)
	readinessHandler.Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
