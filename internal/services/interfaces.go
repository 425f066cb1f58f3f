package services

import (
	"invest-aml-engine/internal/models"
)

// TransactionService определяет интерфейс приема транзакций в реестр
type TransactionService interface {
	// SubmitTransaction принимает транзакцию, сохраняет ее в реестре и
	// публикует событие в Kafka, если транзакция завершена
	SubmitTransaction(req *models.SubmitTransactionRequest) (*models.SubmitTransactionResponse, error)

	// GetTransaction возвращает транзакцию по идентификатору
	GetTransaction(transactionID string) (*models.Transaction, error)

	// ListTransactions возвращает последние транзакции реестра
	ListTransactions(limit int) ([]*models.Transaction, error)

	// ClearAllTransactions очищает реестр (для стендов)
	ClearAllTransactions() error
}

// UserService определяет интерфейс каталога пользователей
type UserService interface {
	// RegisterUser сохраняет профиль пользователя в каталоге
	RegisterUser(req *models.RegisterUserRequest) (*models.UserProfile, error)

	// GetUser возвращает профиль пользователя
	GetUser(userID string) (*models.UserProfile, error)
}

// ScanService определяет интерфейс оркестратора AML-сканирования
type ScanService interface {
	// ScanTransaction сканирует одну транзакцию и сохраняет созданные алерты.
	// Повторное сканирование той же транзакции создает дубликаты алертов.
	ScanTransaction(transactionID string) (*models.ScanResponse, error)

	// ScanRecentTransactions сканирует транзакции за hoursBack часов.
	// Ошибка сканирования одной транзакции не прерывает проход.
	ScanRecentTransactions(hoursBack int) (*models.BatchScanSummary, error)
}

// AlertService определяет интерфейс работы с алертами и их ревью
type AlertService interface {
	// GetAlert возвращает алерт по идентификатору
	GetAlert(alertID string) (*models.Alert, error)

	// ListAlerts возвращает страницу алертов по фильтру
	ListAlerts(filter *models.AlertFilter) (*models.AlertListResponse, error)

	// ReviewAlert переводит алерт в целевой статус и пишет запись в журнал ревью
	ReviewAlert(alertID string, req *models.ReviewAlertRequest) (*models.ReviewConfirmation, error)

	// ListAuditEntries возвращает историю ревью алерта
	ListAuditEntries(alertID string) ([]*models.AuditEntry, error)
}

// RiskService определяет интерфейс риск-скоринга пользователей
type RiskService interface {
	// GetUserRiskReport вычисляет риск-отчет пользователя.
	// Отчет не сохраняется; для неизвестного пользователя возвращается (nil, nil).
	GetUserRiskReport(userID string) (*models.RiskReport, error)
}

// DashboardService определяет интерфейс сводки для дашборда комплаенса
type DashboardService interface {
	// GetDashboardStats возвращает агрегированную сводку по алертам
	GetDashboardStats() (*models.DashboardStats, error)
}
