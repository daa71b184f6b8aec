package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shenikar/safepoint/internal/chatbot"
	"github.com/shenikar/safepoint/internal/config"
	"github.com/shenikar/safepoint/internal/events"
	"github.com/shenikar/safepoint/internal/handler/middleware"
	v1 "github.com/shenikar/safepoint/internal/handler/http/v1"
	"github.com/shenikar/safepoint/internal/repository"
	"github.com/shenikar/safepoint/internal/service"
	"github.com/shenikar/safepoint/internal/webhook"
	"github.com/shenikar/safepoint/pkg/logger"
	"github.com/shenikar/safepoint/pkg/postgres"
	redisclient "github.com/shenikar/safepoint/pkg/redis"
	"github.com/spf13/cobra"

	_ "github.com/shenikar/safepoint/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newServeCmd() *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on start")
	return cmd
}

func serve(skipMigrations bool) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if !skipMigrations {
		if err := runMigrations(cfg, log); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Лента изменений: публикация в Redis, доставка подписчикам через локальную шину
	bus := events.NewBus()
	publishers := events.Publishers{events.NewRedisPublisher(redisClient, cfg.EventsChannel)}
	subscriber := events.NewRedisSubscriber(redisClient, cfg.EventsChannel, log)
	go subscriber.Listen(ctx, bus)

	// Вебхуки ставятся в очередь там, где произошло изменение, чтобы каждый инстанс не дублировал доставку
	if cfg.WebhookURL != "" {
		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Инициализация репозиториев
	safepointRepo := repository.NewSafepointRepository(dbpool)
	configRepo := repository.NewConfigRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)

	// Инициализация сервисов
	policy := service.StorePolicy{
		Timeout:  cfg.DBTimeout,
		Attempts: cfg.DBRetryAttempts,
		Delay:    cfg.DBRetryDelay,
	}
	safepointService := service.NewSafepointService(safepointRepo, configRepo, log, service.SafepointOptions{
		CacheTTL:           cfg.SafepointCacheTTL,
		CodePhraseFallback: cfg.CodePhraseFallback,
		Policy:             policy,
	})
	incidentService := service.NewIncidentService(incidentRepo, safepointService, publishers, log, policy)
	dashboardService := service.NewDashboardService(incidentRepo, bus, log, policy)
	bot := chatbot.NewBot(safepointService, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, safepointService, dashboardService, bot, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(cors.New(corsConfig(cfg)))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	}

	// Останавливаем фоновые задачи и открытые SSE-потоки
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return corsCfg
}
