package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Server  ServerConfig
	Rules   RulesConfig
	Scoring ScoringConfig
	Scan    ScanConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers            []string
	TransactionsTopic  string
	NotificationsTopic string
	ConsumerGroupID    string
}

type ServerConfig struct {
	IngestionPort int
	EnginePort    int
}

// RulesConfig задает пороги правил AML-сканирования.
// Значения по умолчанию соответствуют регламенту комплаенс-отдела.
type RulesConfig struct {
	HighAmountThreshold      decimal.Decimal // правило 1: крупная транзакция
	StructuringThreshold     decimal.Decimal // правило 2: суммарный порог дробления
	StructuringWindowHours   int             // правило 2: окно в часах до транзакции
	RapidMovementWindowHours int             // правило 3: окно депозитов в часах
	RapidWithdrawalRatio     decimal.Decimal // правило 3: доля вывода от суммы депозитов
	NewUserThreshold         decimal.Decimal // правило 4: порог для нового пользователя
	NewUserMaxAgeDays        int             // правило 4: возраст аккаунта в днях
}

// ScoringConfig задает пороги факторов риск-скоринга пользователя.
type ScoringConfig struct {
	HighVolumeThreshold   decimal.Decimal
	MediumVolumeThreshold decimal.Decimal
	LowVolumeThreshold    decimal.Decimal
	NewAccountAgeDays     int
	YoungAccountAgeDays   int
	MatureAccountAgeDays  int
}

type ScanConfig struct {
	BatchLookbackHours       int // окно пакетного сканирования по умолчанию
	BatchScanIntervalMinutes int // 0 - плановые сканирования выключены
	AlertsPageSize           int
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/invest_aml.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:            []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			TransactionsTopic:  getEnv("KAFKA_TRANSACTIONS_TOPIC", "aml.transactions.completed"),
			NotificationsTopic: getEnv("KAFKA_NOTIFICATIONS_TOPIC", "aml.notifications.requested"),
			ConsumerGroupID:    getEnv("KAFKA_CONSUMER_GROUP", "aml-engine-group"),
		},
		Server: ServerConfig{
			IngestionPort: getEnvAsInt("INGESTION_SERVICE_PORT", 8080),
			EnginePort:    getEnvAsInt("AML_ENGINE_SERVICE_PORT", 8081),
		},
		Rules: RulesConfig{
			HighAmountThreshold:      getEnvAsDecimal("RULE_HIGH_AMOUNT_THRESHOLD", 50000),
			StructuringThreshold:     getEnvAsDecimal("RULE_STRUCTURING_THRESHOLD", 20000),
			StructuringWindowHours:   getEnvAsInt("RULE_STRUCTURING_WINDOW_HOURS", 1),
			RapidMovementWindowHours: getEnvAsInt("RULE_RAPID_MOVEMENT_WINDOW_HOURS", 2),
			RapidWithdrawalRatio:     getEnvAsDecimal("RULE_RAPID_WITHDRAWAL_RATIO", 0.8),
			NewUserThreshold:         getEnvAsDecimal("RULE_NEW_USER_THRESHOLD", 10000),
			NewUserMaxAgeDays:        getEnvAsInt("RULE_NEW_USER_MAX_AGE_DAYS", 30),
		},
		Scoring: ScoringConfig{
			HighVolumeThreshold:   getEnvAsDecimal("SCORING_HIGH_VOLUME_THRESHOLD", 500000),
			MediumVolumeThreshold: getEnvAsDecimal("SCORING_MEDIUM_VOLUME_THRESHOLD", 100000),
			LowVolumeThreshold:    getEnvAsDecimal("SCORING_LOW_VOLUME_THRESHOLD", 25000),
			NewAccountAgeDays:     getEnvAsInt("SCORING_NEW_ACCOUNT_AGE_DAYS", 30),
			YoungAccountAgeDays:   getEnvAsInt("SCORING_YOUNG_ACCOUNT_AGE_DAYS", 90),
			MatureAccountAgeDays:  getEnvAsInt("SCORING_MATURE_ACCOUNT_AGE_DAYS", 365),
		},
		Scan: ScanConfig{
			BatchLookbackHours:       getEnvAsInt("SCAN_BATCH_LOOKBACK_HOURS", 24),
			BatchScanIntervalMinutes: getEnvAsInt("SCAN_BATCH_INTERVAL_MINUTES", 0),
			AlertsPageSize:           getEnvAsInt("ALERTS_PAGE_SIZE", 20),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key string, defaultValue float64) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return decimal.NewFromFloat(defaultValue)
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return decimal.NewFromFloat(defaultValue)
	}
	return value
}
