package ingestion

import (
	"log"

	"invest-aml-engine/internal/config"
	"invest-aml-engine/internal/kafka"
	"invest-aml-engine/internal/services"
	"invest-aml-engine/internal/storage"
	"invest-aml-engine/internal/storage/sqlite"
)

// Dependencies содержит все зависимости сервиса приема транзакций
type Dependencies struct {
	StorageConn        *sqlite.SQLiteStorage
	TransactionRepo    storage.TransactionRepository
	UserRepo           storage.UserRepository
	KafkaProducer      kafka.Producer
	TransactionService services.TransactionService
	UserService        services.UserService
}

// InitializeDependencies инициализирует все зависимости сервиса приема
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	repo := sqlite.NewRepository(storageConn)

	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	transactionService := services.NewTransactionService(repo, producer)
	userService := services.NewUserService(repo)

	return &Dependencies{
		StorageConn:        storageConn,
		TransactionRepo:    repo,
		UserRepo:           repo,
		KafkaProducer:      producer,
		TransactionService: transactionService,
		UserService:        userService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
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
