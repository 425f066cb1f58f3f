package sqlite

import (
	"time"

	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/storage"

	"github.com/shopspring/decimal"
)

// Repository реализует интерфейсы хранилища поверх SQLite
type Repository struct {
	storage *SQLiteStorage
}

// Проверки соответствия интерфейсам
var (
	_ storage.TransactionRepository = (*Repository)(nil)
	_ storage.UserRepository        = (*Repository)(nil)
	_ storage.AlertRepository       = (*Repository)(nil)
	_ storage.AuditRepository       = (*Repository)(nil)
)

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) *Repository {
	return &Repository{storage: storage}
}

// Реестр транзакций

func (r *Repository) SaveTransaction(tx *models.Transaction) error {
	return r.storage.SaveTransaction(tx)
}

func (r *Repository) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	return r.storage.GetTransactionByID(transactionID)
}

func (r *Repository) ListByUserInWindow(userID string, start, end time.Time, excludeID string) ([]*models.Transaction, error) {
	return r.storage.ListByUserInWindow(userID, start, end, excludeID)
}

func (r *Repository) ListCompletedDeposits(userID string, start, end time.Time) ([]*models.Transaction, error) {
	return r.storage.ListCompletedDeposits(userID, start, end)
}

func (r *Repository) ListTransactionRefsSince(since time.Time) ([]*models.TransactionRef, error) {
	return r.storage.ListTransactionRefsSince(since)
}

func (r *Repository) ListTransactions(limit int) ([]*models.Transaction, error) {
	return r.storage.ListTransactions(limit)
}

func (r *Repository) SumAmountByUser(userID string) (decimal.Decimal, error) {
	return r.storage.SumAmountByUser(userID)
}

func (r *Repository) ClearAllTransactions() error {
	return r.storage.ClearAllTransactions()
}

// Каталог пользователей

func (r *Repository) SaveUser(user *models.UserProfile) error {
	return r.storage.SaveUser(user)
}

func (r *Repository) GetUserByID(userID string) (*models.UserProfile, error) {
	return r.storage.GetUserByID(userID)
}

func (r *Repository) ListUsersByRole(role string) ([]*models.UserProfile, error) {
	return r.storage.ListUsersByRole(role)
}

// Хранилище алертов

func (r *Repository) SaveAlert(alert *models.Alert) error {
	return r.storage.SaveAlert(alert)
}

func (r *Repository) GetAlertByID(alertID string) (*models.Alert, error) {
	return r.storage.GetAlertByID(alertID)
}

func (r *Repository) ListAlerts(filter *models.AlertFilter) ([]*models.Alert, int, error) {
	return r.storage.ListAlerts(filter)
}

func (r *Repository) UpdateAlertReview(alertID, status string, reviewedAt time.Time, notes, reviewerID string) error {
	return r.storage.UpdateAlertReview(alertID, status, reviewedAt, notes, reviewerID)
}

func (r *Repository) GetUserAlertStats(userID string) (*models.UserAlertStats, error) {
	return r.storage.GetUserAlertStats(userID)
}

func (r *Repository) CountAlertsByStatus() (map[string]int, error) {
	return r.storage.CountAlertsByStatus()
}

func (r *Repository) CountAlertsBySeverity() (map[string]int, error) {
	return r.storage.CountAlertsBySeverity()
}

func (r *Repository) ListHighRiskUserIDs() ([]string, error) {
	return r.storage.ListHighRiskUserIDs()
}

func (r *Repository) ListRecentAlerts(limit int) ([]*models.Alert, error) {
	return r.storage.ListRecentAlerts(limit)
}

// Журнал ревью

func (r *Repository) SaveAuditEntry(entry *models.AuditEntry) error {
	return r.storage.SaveAuditEntry(entry)
}

func (r *Repository) ListAuditEntriesByAlert(alertID string) ([]*models.AuditEntry, error) {
	return r.storage.ListAuditEntriesByAlert(alertID)
}
