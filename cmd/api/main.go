package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"videoprompt/internal/adapter/repo"
	"videoprompt/internal/domain"
	"videoprompt/internal/http/handlers"
	httpapi "videoprompt/internal/http/httpapi"
	"videoprompt/internal/infra"
	"videoprompt/internal/infra/geoip"
	"videoprompt/internal/middleware"
	"videoprompt/internal/promptgen"
	"videoprompt/internal/seed"
	"videoprompt/internal/storage"
)

const templateCacheTTL = 30 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		prompts   domain.PromptRepository
		templates domain.TemplateRepository
	)
	switch cfg.StorageDriver {
	case infra.StoragePostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		prompts = repo.NewPromptRepository(runner)
		templates = repo.NewCachedTemplates(repo.NewTemplateRepository(runner), templateCacheTTL)
	default:
		store := storage.NewMemoryStore()
		prompts, templates = store.Prompts(), store.Templates()
	}
	logger.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")

	if cfg.SeedTemplates {
		n, err := seed.Load(ctx, templates)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed templates")
		}
		if n > 0 {
			logger.Info().Int("count", n).Msg("seeded template library")
		}
	}

	archive, err := storage.NewArchive(cfg.PromptArchiveDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare prompt archive")
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	app := handlers.NewApp(prompts, templates, promptgen.New(promptgen.NewSelector(nil)), logger)
	app.Archive = archive

	router := httpapi.NewRouter(app, httpapi.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMin:    cfg.RateLimitPerMin,
		CountryLookup:      lookup,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
