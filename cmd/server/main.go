package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/bgogeta007/health-hustler/internal/config"
	"github.com/bgogeta007/health-hustler/internal/handler"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/internal/service"
	"github.com/bgogeta007/health-hustler/internal/storage"
	"github.com/bgogeta007/health-hustler/pkg/db"
	"github.com/bgogeta007/health-hustler/pkg/logger"
	"github.com/bgogeta007/health-hustler/pkg/metrics"
	"github.com/bgogeta007/health-hustler/pkg/validation"
)

func main() {
	log := logger.NewLogger("health-hustler")
	log.Info("Starting Health Hustler API...")

	cfg := config.Load()

	conn, err := db.NewConnection(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer conn.Close()

	guard := db.NewSchemaGuard(conn.DB)
	if err := guard.ValidateTables([]db.TableSchema{
		{Name: "profiles", Columns: []db.ColumnType{
			{Name: "id", DataType: "bigint"},
			{Name: "email", DataType: "varchar"},
			{Name: "username", DataType: "varchar"},
			{Name: "password_hash", DataType: "varchar"},
		}},
		{Name: "progress_photos", Columns: []db.ColumnType{
			{Name: "id", DataType: "bigint"},
			{Name: "user_id", DataType: "bigint"},
			{Name: "is_private", DataType: "tinyint"},
			{Name: "community_visible", DataType: "tinyint"},
		}},
		{Name: "challenge_participants", Columns: []db.ColumnType{
			{Name: "id", DataType: "bigint"},
			{Name: "challenge_id", DataType: "bigint"},
			{Name: "user_id", DataType: "bigint"},
			{Name: "completed", DataType: "tinyint"},
		}},
	}); err != nil {
		log.WithError(err).Warn("schema validation warning")
	}
	log.Info("Database connected")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	log.Info("Redis connected")

	files := storage.NewFTPClient(storage.FTPConfig{
		Host:     cfg.FTPHost,
		Port:     cfg.FTPPort,
		User:     cfg.FTPUser,
		Password: cfg.FTPPassword,
		BaseDir:  cfg.FTPBaseDir,
	})

	m := metrics.NewMetrics("api")
	validator := validation.NewCustomValidator()

	// repositories
	userRepo := repository.NewUserRepository(conn.DB)
	sessionRepo := repository.NewSessionRepository(redisClient)
	cacheRepo := repository.NewCacheRepository(redisClient)
	quizRepo := repository.NewQuizRepository(conn.DB)
	photoRepo := repository.NewPhotoRepository(conn.DB)
	commentRepo := repository.NewCommentRepository(conn.DB)
	likeRepo := repository.NewLikeRepository(conn.DB)
	challengeRepo := repository.NewChallengeRepository(conn.DB)
	rewardsRepo := repository.NewRewardsRepository(conn.DB)
	settingsRepo := repository.NewSettingsRepository(conn.DB)
	tipRepo := repository.NewTipRepository(conn.DB)
	adminRepo := repository.NewAdminRepository(conn.DB)

	// services
	authService := service.NewAuthService(userRepo, sessionRepo, files, cfg.PublicCDN, cfg.SessionTTL, log)
	quizService := service.NewQuizService(quizRepo, log)
	photoService := service.NewPhotoService(photoRepo, files, cfg.PublicCDN, log)
	feedService := service.NewFeedService(photoRepo, commentRepo, likeRepo, userRepo, log)
	challengeService := service.NewChallengeService(challengeRepo, rewardsRepo, log)
	tipService := service.NewTipService(tipRepo)
	settingsService := service.NewSettingsService(settingsRepo, cacheRepo, files, cfg.PublicCDN, cfg.SettingsCacheTTL, log)
	adminService := service.NewAdminService(adminRepo, userRepo, challengeRepo, rewardsRepo, log)

	router := handler.NewRouter(handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, validator),
		Quiz:         handler.NewQuizHandler(quizService),
		Feed:         handler.NewFeedHandler(feedService),
		Photo:        handler.NewPhotoHandler(photoService),
		Challenge:    handler.NewChallengeHandler(challengeService),
		Catalog:      handler.NewCatalogHandler(tipService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Admin:        handler.NewAdminHandler(adminService, settingsService, validator),
		AuthService:  authService,
		AdminService: adminService,
	}, m, log)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: promhttp.Handler(),
	}
	go func() {
		log.WithField("port", cfg.MetricsPort).Info("metrics server listening")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("metrics server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.ServerPort).Info("API server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("metrics server shutdown failed")
	}
	log.Info("Shutdown complete")
}
