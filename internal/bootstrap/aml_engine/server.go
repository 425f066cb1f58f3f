package aml_engine

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "invest-aml-engine/docs" // Swagger docs
	"invest-aml-engine/internal/api/rest"
	"invest-aml-engine/internal/config"
)

// StartEngineService запускает AML-движок
func StartEngineService() {
	cfg := config.Load()

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Close()

	// Запуск Kafka consumer в отдельной горутине
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		log.Println("Starting Kafka consumer...")
		if err := deps.KafkaConsumer.Start(ctx); err != nil {
			log.Fatalf("Kafka consumer error: %v", err)
		}
	}()

	// Плановые пакетные сканирования, если включены в конфигурации
	if cfg.Scan.BatchScanIntervalMinutes > 0 {
		go runScheduledScans(ctx, deps.ScanService, cfg.Scan.BatchScanIntervalMinutes)
	}

	// Настройка REST API
	handlers := rest.NewEngineHandlers(
		deps.ScanService,
		deps.AlertService,
		deps.RiskService,
		deps.DashboardService,
		deps.TransactionService,
		deps.RedisClient,
	)
	router := rest.SetupEngineRouter(handlers)

	// Запуск сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.EnginePort),
		Handler: router,
	}

	go func() {
		log.Printf("AML Engine Service starting on port %d", cfg.Server.EnginePort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down services...")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Services exited")
}
