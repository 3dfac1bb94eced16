package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-dashboard-backend/internal/caching"
	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/routes"
	"invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/services/seed"

	"github.com/alexflint/go-arg"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, arg.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.SetupLogger(cfg)
	if envErr != nil {
		log.Info().Msg("no .env file found, relying on system env")
	}
	if cfg.UsesDefaultSessionSecret() {
		log.Warn().Str("app_env", cfg.AppEnv).Msg("SESSION_SECRET not set, signing sessions with the development key")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	cache := caching.NewNoopCache()
	if cfg.RedisAddr != "" {
		client := caching.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()
		cache = caching.NewRedisPageCache(client, cfg.CacheTTL)
	} else {
		log.Info().Msg("REDIS_ADDR not set, page cache disabled")
	}

	store := repository.NewStore(db, repository.WithArtificialDelay(cfg.ArtificialDelay))
	seeder := seed.NewSeeder(db,
		seed.WithBcryptCost(cfg.BcryptCost),
		seed.WithAtomic(cfg.SeedAtomic),
		seed.WithConcurrency(cfg.SeedConcurrency),
	)
	h := handler.NewHandler(store, cache, auth.NewProvider(store.Users), seeder)

	gin.SetMode(gin.ReleaseMode)
	r := routes.NewEngine(h, routes.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		SessionSecret:  cfg.SessionSecret,
	})

	server := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
