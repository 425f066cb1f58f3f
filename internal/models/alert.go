package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы алертов, которые порождают правила сканирования
const (
	AlertTypeHighValueTransaction   = "high_value_transaction"
	AlertTypeStructuringSuspected   = "structuring_suspected"
	AlertTypeRapidDepositWithdrawal = "rapid_deposit_withdrawal"
	AlertTypeNewUserHighValue       = "new_user_high_value"
)

// Уровни серьезности алерта
const (
	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// Статусы жизненного цикла алерта. Начальный статус всегда pending,
// дальнейшие переходы выполняются только через процедуру ревью.
const (
	AlertStatusPending   = "pending"
	AlertStatusReviewed  = "reviewed"
	AlertStatusEscalated = "escalated"
	AlertStatusCleared   = "cleared"
	AlertStatusReported  = "reported"
)

// AllAlertStatuses перечисляет статусы в порядке отображения на дашборде
var AllAlertStatuses = []string{
	AlertStatusPending,
	AlertStatusReviewed,
	AlertStatusEscalated,
	AlertStatusCleared,
	AlertStatusReported,
}

// AllSeverities перечисляет уровни серьезности в порядке возрастания
var AllSeverities = []string{SeverityLow, SeverityMedium, SeverityHigh}

// IsValidReviewStatus проверяет, что статус допустим как цель ревью
func IsValidReviewStatus(status string) bool {
	switch status {
	case AlertStatusReviewed, AlertStatusEscalated, AlertStatusCleared, AlertStatusReported:
		return true
	}
	return false
}

// Alert представляет подозрительную транзакцию, помеченную правилом.
// Запись неизменяема, кроме статуса и полей ревью; алерты никогда не удаляются.
type Alert struct {
	AlertID       string          `json:"alert_id"`
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id,omitempty"`
	AlertType     string          `json:"alert_type"`
	Severity      string          `json:"severity"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	ScannedAt     time.Time       `json:"scanned_at"`
	ReviewedAt    *time.Time      `json:"reviewed_at,omitempty"`
	ReviewNotes   *string         `json:"review_notes,omitempty"`
	ReviewedBy    *string         `json:"reviewed_by,omitempty"`
}

// AlertFilter задает условия выборки алертов
type AlertFilter struct {
	Status   string
	Severity string
	UserID   string
	Page     int
	PageSize int
}

// AlertListResponse представляет страницу выборки алертов
type AlertListResponse struct {
	Alerts   []*Alert `json:"alerts"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// ReviewAlertRequest представляет действие ревьюера над алертом
type ReviewAlertRequest struct {
	Status     string `json:"status" binding:"required,oneof=reviewed escalated cleared reported"`
	Notes      string `json:"notes"`
	ReviewerID string `json:"reviewer_id" binding:"required"`
}

// ReviewConfirmation представляет подтверждение выполненного ревью
type ReviewConfirmation struct {
	AlertID        string    `json:"alert_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ReviewedAt     time.Time `json:"reviewed_at"`
	Message        string    `json:"message"`
}

// AuditEntry представляет неизменяемую запись журнала ревью
type AuditEntry struct {
	AuditID        string    `json:"audit_id"`
	AlertID        string    `json:"alert_id"`
	TransactionID  string    `json:"transaction_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Notes          string    `json:"notes"`
	ReviewerID     string    `json:"reviewer_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserAlertStats представляет сводку алертов пользователя для риск-скоринга
type UserAlertStats struct {
	TotalAlerts    int  `json:"total_alerts"`
	HasSevereAlert bool `json:"has_severe_alert"`
}

// ScanResponse представляет результат сканирования одной транзакции
type ScanResponse struct {
	TransactionID string    `json:"transaction_id"`
	AlertsCreated int       `json:"alerts_created"`
	Alerts        []*Alert  `json:"alerts"`
	ScannedAt     time.Time `json:"scanned_at"`
}

// BatchScanRequest представляет запрос на пакетное сканирование
type BatchScanRequest struct {
	HoursBack int `json:"hours_back" binding:"omitempty,gte=0"`
}

// TransactionScanSummary представляет итог сканирования одной транзакции
// внутри пакетного прохода
type TransactionScanSummary struct {
	TransactionID string   `json:"transaction_id"`
	AlertCount    int      `json:"alert_count"`
	AlertTypes    []string `json:"alert_types,omitempty"`
}

// BatchScanSummary представляет итог пакетного сканирования.
// FailedCount учитывает транзакции, которые не удалось просканировать.
type BatchScanSummary struct {
	StartedAt    time.Time                `json:"started_at"`
	CompletedAt  time.Time                `json:"completed_at"`
	ScannedCount int                      `json:"scanned_count"`
	AlertCount   int                      `json:"alert_count"`
	FailedCount  int                      `json:"failed_count"`
	Results      []TransactionScanSummary `json:"results"`
}

// DashboardStats представляет сводку по алертам для дашборда комплаенса
type DashboardStats struct {
	TotalAlerts   int            `json:"total_alerts"`
	ByStatus      map[string]int `json:"by_status"`
	BySeverity    map[string]int `json:"by_severity"`
	HighRiskUsers []string       `json:"high_risk_users"`
	RecentAlerts  []*Alert       `json:"recent_alerts"`
}
