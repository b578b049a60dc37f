package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/esports-db/config"
	"github.com/Dosada05/esports-db/db"
	"github.com/Dosada05/esports-db/handlers"
	"github.com/Dosada05/esports-db/middleware"
	"github.com/Dosada05/esports-db/repositories"
	api "github.com/Dosada05/esports-db/routes"
	"github.com/Dosada05/esports-db/services"
	"github.com/Dosada05/esports-db/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Применение миграций схемы
	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to apply database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Загрузчик файлов (Cloudflare R2) — опционален; без него эндпоинты
	// загрузки логотипов и аватаров отвечают 503.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("object storage is not configured, file uploads disabled")
	}

	// Инициализация репозиториев
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	standingRepo := repositories.NewPostgresStandingRepository(dbConn)
	tournamentTeamRepo := repositories.NewPostgresTournamentTeamRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	tokenRepo := repositories.NewPostgresTokenRepository(dbConn)
	profileRepo := repositories.NewPostgresProfileRepository(dbConn)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(dbConn)
	historyRepo := repositories.NewPostgresHistoryRepository(dbConn)
	applicationRepo := repositories.NewPostgresApplicationRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	authService := services.NewAuthService(userRepo, tokenRepo)
	cabinetService := services.NewCabinetService(profileRepo, favoriteRepo, historyRepo, uploader)
	gameService := services.NewGameService(gameRepo)
	tournamentService := services.NewTournamentService(tournamentRepo, teamRepo, matchRepo, standingRepo)
	teamService := services.NewTeamService(teamRepo, playerRepo, tournamentRepo, standingRepo, matchRepo, uploader)
	playerService := services.NewPlayerService(playerRepo)
	matchService := services.NewMatchService(matchRepo)
	standingService := services.NewStandingService(standingRepo)
	tournamentTeamService := services.NewTournamentTeamService(tournamentTeamRepo)
	reportService := services.NewReportService(teamRepo, gameRepo)
	moderationService := services.NewModerationService(applicationRepo)
	adminService := services.NewAdminService(teamRepo, tournamentRepo, matchRepo, userRepo, applicationRepo)
	logger.Info("services initialized")

	// Обработчики HTTP
	h := api.Handlers{
		Auth:           handlers.NewAuthHandler(authService, cabinetService),
		Game:           handlers.NewGameHandler(gameService),
		Tournament:     handlers.NewTournamentHandler(tournamentService),
		Team:           handlers.NewTeamHandler(teamService),
		Player:         handlers.NewPlayerHandler(playerService),
		Match:          handlers.NewMatchHandler(matchService),
		Standing:       handlers.NewStandingHandler(standingService),
		TournamentTeam: handlers.NewTournamentTeamHandler(tournamentTeamService),
		Report:         handlers.NewReportHandler(reportService),
		Cabinet:        handlers.NewCabinetHandler(cabinetService),
		Application:    handlers.NewApplicationHandler(moderationService),
		Admin:          handlers.NewAdminHandler(adminService),
		Health:         handlers.NewHealthHandler(dbConn),
	}

	authenticator := middleware.NewAuthenticator(tokenRepo)

	router := chi.NewRouter()
	api.SetupRoutes(router, authenticator, h, cfg.CORSOrigins)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
