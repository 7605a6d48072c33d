package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/pmorales/portfolio/internal/api"
	"github.com/pmorales/portfolio/internal/core/service"
	"github.com/pmorales/portfolio/internal/infrastructure/db/postgres"
	"github.com/pmorales/portfolio/internal/infrastructure/db/redis"
	"github.com/pmorales/portfolio/internal/pkg/config"
	"github.com/pmorales/portfolio/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	sessions := redis.NewSessionStore(rdb, cfg.SessionTTL)
	hasher := service.NewBcryptHasher()

	authService, err := service.NewAuthService(postgres.NewUserRepository(db), sessions, hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("auth service init failed")
	}

	e, err := api.NewRouter(api.Deps{
		Auth:          authService,
		Comments:      service.NewCommentService(postgres.NewCommentRepository(db)),
		Contacts:      service.NewContactService(postgres.NewContactRepository(db)),
		DB:            db,
		Redis:         rdb,
		SessionSecret: []byte(cfg.SessionSecret),
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.IsProduction(),
		Log:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router init failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("portfolio site up")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
