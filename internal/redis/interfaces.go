package redis

import (
	"invest-aml-engine/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis
// Это позволяет легко создавать моки для тестирования
// Реализуется типом Client
type ClientInterface interface {
	// SaveScanResult сохраняет результат сканирования транзакции в Redis
	SaveScanResult(transactionID string, result *models.ScanResponse) error

	// GetScanResult получает результат сканирования из Redis
	GetScanResult(transactionID string) (*models.ScanResponse, error)

	// IncrementScanCount увеличивает счетчик выполненных сканирований
	IncrementScanCount() error

	// IncrementAlertStats увеличивает счетчики созданных алертов по серьезности
	IncrementAlertStats(severity string) error

	// GetScanStats возвращает накопленные счетчики сканирований и алертов
	GetScanStats() (map[string]int64, error)

	// ClearScanData очищает кешированные сканирования и счетчики статистики
	ClearScanData() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
