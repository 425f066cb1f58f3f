package aml_engine

import (
	"log"

	"invest-aml-engine/internal/config"
	"invest-aml-engine/internal/kafka"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/redis"
	"invest-aml-engine/internal/rules"
	"invest-aml-engine/internal/scoring"
	"invest-aml-engine/internal/services"
	"invest-aml-engine/internal/storage"
	"invest-aml-engine/internal/storage/sqlite"
)

// Dependencies содержит все зависимости AML-движка.
// RedisClient может быть nil: движок работает без кеша,
// недоступна только статистика сканирований.
type Dependencies struct {
	StorageConn        *sqlite.SQLiteStorage
	TransactionRepo    storage.TransactionRepository
	UserRepo           storage.UserRepository
	AlertRepo          storage.AlertRepository
	AuditRepo          storage.AuditRepository
	RedisClient        redis.ClientInterface
	KafkaProducer      kafka.Producer
	KafkaConsumer      kafka.Consumer
	ScanService        services.ScanService
	AlertService       services.AlertService
	RiskService        services.RiskService
	DashboardService   services.DashboardService
	TransactionService services.TransactionService
}

// InitializeDependencies инициализирует все зависимости AML-движка
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	repo := sqlite.NewRepository(storageConn)

	// Инициализация Redis
	var redisClient redis.ClientInterface
	log.Println("Connecting to Redis...")
	client, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, scan caching disabled: %v", err)
	} else {
		log.Println("Redis connection established")
		redisClient = client
	}

	// Инициализация Kafka Producer для уведомлений
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	rulesEngine := rules.NewEngine(cfg.Rules)
	riskScorer := scoring.NewScorer(cfg.Scoring)

	scanService := services.NewScanService(repo, repo, repo, rulesEngine, redisClient, producer, cfg.Scan.BatchLookbackHours)
	alertService := services.NewAlertService(repo, repo, cfg.Scan.AlertsPageSize)
	riskService := services.NewRiskService(repo, repo, repo, riskScorer)
	dashboardService := services.NewDashboardService(repo)
	transactionService := services.NewTransactionService(repo, producer)

	// Настройка обработчика Kafka событий
	handler := func(event *models.TransactionEvent) error {
		return processTransactionEvent(event, scanService)
	}

	// Инициализация Kafka Consumer
	consumer, err := kafka.NewConsumer(cfg, handler)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")

	return &Dependencies{
		StorageConn:        storageConn,
		TransactionRepo:    repo,
		UserRepo:           repo,
		AlertRepo:          repo,
		AuditRepo:          repo,
		RedisClient:        redisClient,
		KafkaProducer:      producer,
		KafkaConsumer:      consumer,
		ScanService:        scanService,
		AlertService:       alertService,
		RiskService:        riskService,
		DashboardService:   dashboardService,
		TransactionService: transactionService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
