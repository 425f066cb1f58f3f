package storage

import (
	"time"

	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRepository определяет интерфейс чтения реестра транзакций.
// Реестр для движка append-only: записи создает только сервис приема.
type TransactionRepository interface {
	// SaveTransaction сохраняет транзакцию в реестре
	SaveTransaction(tx *models.Transaction) error

	// GetTransactionByID получает транзакцию по transaction_id
	GetTransactionByID(transactionID string) (*models.Transaction, error)

	// ListByUserInWindow получает транзакции пользователя в окне [start, end].
	// Транзакция с excludeID исключается; пустой excludeID не исключает ничего.
	ListByUserInWindow(userID string, start, end time.Time, excludeID string) ([]*models.Transaction, error)

	// ListCompletedDeposits получает завершенные депозиты пользователя в окне [start, end]
	ListCompletedDeposits(userID string, start, end time.Time) ([]*models.Transaction, error)

	// ListTransactionRefsSince получает минимальные проекции транзакций,
	// созданных не раньше since, для пакетного сканирования
	ListTransactionRefsSince(since time.Time) ([]*models.TransactionRef, error)

	// ListTransactions получает последние транзакции реестра
	ListTransactions(limit int) ([]*models.Transaction, error)

	// SumAmountByUser возвращает сумму всех транзакций пользователя за все время
	SumAmountByUser(userID string) (decimal.Decimal, error)

	// ClearAllTransactions удаляет все транзакции из реестра (для стендов)
	ClearAllTransactions() error
}

// UserRepository определяет интерфейс каталога пользователей платформы
type UserRepository interface {
	// SaveUser сохраняет профиль пользователя
	SaveUser(user *models.UserProfile) error

	// GetUserByID получает профиль по user_id
	GetUserByID(userID string) (*models.UserProfile, error)

	// ListUsersByRole получает профили с заданной ролью
	ListUsersByRole(role string) ([]*models.UserProfile, error)
}

// AlertRepository определяет интерфейс хранилища алертов.
// Алерты только добавляются и патчатся по полям ревью; удаления нет.
type AlertRepository interface {
	// SaveAlert добавляет алерт в хранилище
	SaveAlert(alert *models.Alert) error

	// GetAlertByID получает алерт по alert_id
	GetAlertByID(alertID string) (*models.Alert, error)

	// ListAlerts получает страницу алертов по фильтру и общее число подходящих
	ListAlerts(filter *models.AlertFilter) ([]*models.Alert, int, error)

	// UpdateAlertReview обновляет статус и поля ревью алерта
	UpdateAlertReview(alertID, status string, reviewedAt time.Time, notes, reviewerID string) error

	// GetUserAlertStats возвращает сводку алертов пользователя для риск-скоринга
	GetUserAlertStats(userID string) (*models.UserAlertStats, error)

	// CountAlertsByStatus возвращает количество алертов по каждому статусу
	CountAlertsByStatus() (map[string]int, error)

	// CountAlertsBySeverity возвращает количество алертов по каждой серьезности
	CountAlertsBySeverity() (map[string]int, error)

	// ListHighRiskUserIDs возвращает пользователей с HIGH-алертами или эскалациями
	ListHighRiskUserIDs() ([]string, error)

	// ListRecentAlerts возвращает последние алерты по времени сканирования
	ListRecentAlerts(limit int) ([]*models.Alert, error)
}

// AuditRepository определяет интерфейс журнала ревью.
// Журнал append-only: записи никогда не изменяются и не удаляются.
type AuditRepository interface {
	// SaveAuditEntry добавляет запись в журнал ревью
	SaveAuditEntry(entry *models.AuditEntry) error

	// ListAuditEntriesByAlert получает историю ревью алерта
	ListAuditEntriesByAlert(alertID string) ([]*models.AuditEntry, error)
}
