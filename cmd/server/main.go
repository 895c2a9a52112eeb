package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renovateiq/renovateiq-backend/internal/config"
	"github.com/renovateiq/renovateiq-backend/internal/db"
	httpHandlers "github.com/renovateiq/renovateiq-backend/internal/http/handlers"
	"github.com/renovateiq/renovateiq-backend/internal/http/middleware"
	httpRouter "github.com/renovateiq/renovateiq-backend/internal/http/router"
	"github.com/renovateiq/renovateiq-backend/internal/identity"
	"github.com/renovateiq/renovateiq-backend/internal/logger"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
	"github.com/renovateiq/renovateiq-backend/internal/service"
	"github.com/renovateiq/renovateiq-backend/internal/storage"
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
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
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

	// Проверка токенов: локально по секрету или через identity provider.
	var verifier identity.TokenVerifier
	if cfg.SupabaseJWTKey != "" {
		verifier = identity.NewLocalVerifier(cfg.SupabaseJWTKey)
	} else {
		verifier = identity.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
	}

	mediaStore, err := storage.NewMediaStore(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	limitStore, err := middleware.NewRateLimitStore(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("main: не удалось подготовить rate limiter: %v", err)
	}

	// Репозитории.
	projectRepo := repository.NewProjectRepository(dbConn)
	taskRepo := repository.NewTaskRepository(dbConn)
	expenseRepo := repository.NewExpenseRepository(dbConn)
	shoppingRepo := repository.NewShoppingRepository(dbConn)
	contractorRepo := repository.NewContractorRepository(dbConn)
	inventoryRepo := repository.NewInventoryRepository(dbConn)
	permitRepo := repository.NewPermitRepository(dbConn)
	maintenanceRepo := repository.NewMaintenanceRepository(dbConn)
	templateRepo := repository.NewTemplateRepository(dbConn)
	photoRepo := repository.NewPhotoRepository(dbConn)

	// Сервисы.
	expenseService := service.NewExpenseService(expenseRepo)
	templateService := service.NewTemplateService(templateRepo)

	// HTTP хэндлеры.
	h := httpRouter.Handlers{
		Projects:    httpHandlers.NewProjectHandler(projectRepo),
		Tasks:       httpHandlers.NewTaskHandler(taskRepo),
		Expenses:    httpHandlers.NewExpenseHandler(expenseRepo, expenseService),
		Shopping:    httpHandlers.NewShoppingHandler(shoppingRepo),
		Contractors: httpHandlers.NewContractorHandler(contractorRepo),
		Inventory:   httpHandlers.NewInventoryHandler(inventoryRepo),
		Permits:     httpHandlers.NewPermitHandler(permitRepo),
		Maintenance: httpHandlers.NewMaintenanceHandler(maintenanceRepo),
		Templates:   httpHandlers.NewTemplateHandler(templateService),
		Photos:      httpHandlers.NewPhotoHandler(photoRepo, mediaStore),
	}

	engine := httpRouter.SetupRouter(cfg, verifier, limitStore, h)

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
