package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"guestwall/config"
	adapters "guestwall/internal/adapters/auth"
	delivery "guestwall/internal/delivery/http"
	"guestwall/internal/delivery/http/middleware"
	"guestwall/internal/repository/postgres"
	"guestwall/internal/services"

	_ "guestwall/docs"
)

// @title Guest Wall API
// @version 1.0
// @description Guest identity, sessions, and trust-tiered content moderation for the event guest wall.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	guestRepo := postgres.NewGuestRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	feedRepo := postgres.NewFeedRepository(db)
	pinnedRepo := postgres.NewPinnedItemRepository(db)

	tokens := adapters.NewTokenGenerator()
	secrets := adapters.NewSecretComparer()

	authSvc := services.NewAuthService(guestRepo, sessionRepo, tokens, secrets, cfg.SitePassword, cfg.SessionDuration, logger)
	moderationSvc := services.NewModerationService(contentRepo, feedRepo, pinnedRepo, authSvc, logger)

	authController := delivery.NewAuthController(logger, authSvc, secrets, cfg.AdminPassword, cfg.SessionDuration, cfg.IsProduction())
	wallController := delivery.NewWallController(logger, moderationSvc)
	adminController := delivery.NewAdminController(logger, moderationSvc, guestRepo)

	mux := delivery.NewRouter(authController, wallController, adminController, authSvc, secrets, cfg.AdminPassword)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.Logging(logger, handler)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
