package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/app"
	"github.com/adanyl0v/go-task-tracker/internal/config"
	v1 "github.com/adanyl0v/go-task-tracker/internal/delivery/http/v1"
	"github.com/adanyl0v/go-task-tracker/internal/services"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

func main() {
	bootLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Read()
	if err != nil {
		bootLogger.Fatal().
			Err(err).
			Msg("failed to read config")
	}

	logger, err := app.NewLogger(cfg.Env)
	if err != nil {
		bootLogger.Fatal().
			Err(err).
			Msg("failed to initialize logger")
	}

	ctx := context.Background()
	pgPool, err := app.ConnectPostgres(ctx, logger, cfg.Postgres)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("failed to connect to postgres")
	}
	defer pgPool.Close()

	taskService := services.NewTaskService(logger, storage.NewPostgresStore(logger, pgPool))
	authService := services.NewAuthService(
		logger,
		pgPool,
		cfg.JWT.Issuer,
		[]byte(cfg.JWT.SigningKey),
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
	)

	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	v1.New(logger, authService, taskService).RegisterRoutes(router)

	err = app.RunHTTPServer(logger, cfg.HTTP, router)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("http server failed")
	}
}
