package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joseeugenio/portfolio-backend/internal/config"
	"github.com/joseeugenio/portfolio-backend/internal/db"
	httpHandlers "github.com/joseeugenio/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/joseeugenio/portfolio-backend/internal/http/router"
	"github.com/joseeugenio/portfolio-backend/internal/logger"
	"github.com/joseeugenio/portfolio-backend/internal/repository"
	"github.com/joseeugenio/portfolio-backend/internal/service"
	"github.com/joseeugenio/portfolio-backend/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)

	cleaner, err := storage.NewCleaner(cfg.AssetsPath)
	if err != nil {
		log.Fatalf("main: не удалось подготовить каталог ассетов: %v", err)
	}
	if cfg.S3Endpoint != "" {
		if err := cleaner.AttachS3(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL, cfg.S3UseSSL); err != nil {
			log.Fatalf("main: не удалось подключить объектное хранилище: %v", err)
		}
	}

	// Репозитории.
	projectRepo := repository.NewProjectRepository(dbConn)
	softwareRepo := repository.NewSoftwareRepository(dbConn)
	profileRepo := repository.NewProfileRepository(dbConn)
	mediaRepo := repository.NewMediaRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash, tokenManager)
	mediaService := service.NewMediaService(mediaRepo, cleaner)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService, tokenManager, cfg.Env == "production")
	projectHandler := httpHandlers.NewProjectHandler(projectRepo)
	softwareHandler := httpHandlers.NewSoftwareHandler(softwareRepo)
	profileHandler := httpHandlers.NewProfileHandler(profileRepo)
	mediaHandler := httpHandlers.NewMediaHandler(mediaService, cfg.MaxUploadSizeMB)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, projectHandler, softwareHandler, profileHandler, mediaHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
