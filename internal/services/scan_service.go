package services

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"invest-aml-engine/internal/kafka"
	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/redis"
	"invest-aml-engine/internal/rules"
	"invest-aml-engine/internal/storage"
)

// ScanServiceImpl реализует интерфейс ScanService.
// Redis и Kafka-продюсер опциональны: без них кеширование результатов
// и уведомления администраторов отключены, сканирование работает как обычно.
type ScanServiceImpl struct {
	txRepo             storage.TransactionRepository
	userRepo           storage.UserRepository
	alertRepo          storage.AlertRepository
	engine             *rules.Engine
	redisClient        redis.ClientInterface
	producer           kafka.Producer
	batchLookbackHours int
}

// NewScanService создает новый оркестратор сканирования
func NewScanService(
	txRepo storage.TransactionRepository,
	userRepo storage.UserRepository,
	alertRepo storage.AlertRepository,
	engine *rules.Engine,
	redisClient redis.ClientInterface,
	producer kafka.Producer,
	batchLookbackHours int,
) ScanService {
	return &ScanServiceImpl{
		txRepo:             txRepo,
		userRepo:           userRepo,
		alertRepo:          alertRepo,
		engine:             engine,
		redisClient:        redisClient,
		producer:           producer,
		batchLookbackHours: batchLookbackHours,
	}
}

// ScanTransaction сканирует одну транзакцию и сохраняет созданные алерты.
// Дедупликации нет: повторный вызов для той же транзакции создает
// новый набор алертов.
func (s *ScanServiceImpl) ScanTransaction(transactionID string) (*models.ScanResponse, error) {
	tx, err := s.txRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, transactionID)
	}

	logger.LogEvent(logger.EventScanStarted, "aml-engine-service", "rules", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"user_id":        tx.UserID,
	})

	evalCtx, err := s.buildContext(tx)
	if err != nil {
		return nil, err
	}

	drafts := s.engine.Evaluate(tx, evalCtx)

	scannedAt := time.Now().UTC()
	alerts := make([]*models.Alert, 0, len(drafts))
	for _, draft := range drafts {
		draft.AlertID = "alert_" + uuid.New().String()
		draft.Status = models.AlertStatusPending
		draft.ScannedAt = scannedAt

		if err := s.alertRepo.SaveAlert(draft); err != nil {
			return nil, err
		}
		alerts = append(alerts, draft)

		logger.LogEvent(logger.EventAlertCreated, "aml-engine-service", "rules", map[string]interface{}{
			"alert_id":       draft.AlertID,
			"transaction_id": draft.TransactionID,
			"alert_type":     draft.AlertType,
			"severity":       draft.Severity,
		})

		if s.redisClient != nil {
			if err := s.redisClient.IncrementAlertStats(draft.Severity); err != nil {
				log.Printf("Error updating alert stats: %v", err)
			}
		}
	}

	response := &models.ScanResponse{
		TransactionID: tx.TransactionID,
		AlertsCreated: len(alerts),
		Alerts:        alerts,
		ScannedAt:     scannedAt,
	}

	if s.redisClient != nil {
		if err := s.redisClient.SaveScanResult(tx.TransactionID, response); err != nil {
			log.Printf("Error saving scan result to Redis: %v", err)
		} else {
			logger.LogEvent(logger.EventRedisSaved, "aml-engine-service", "redis", map[string]interface{}{
				"transaction_id": tx.TransactionID,
				"alerts_created": response.AlertsCreated,
			})
		}
		if err := s.redisClient.IncrementScanCount(); err != nil {
			log.Printf("Error updating scan stats: %v", err)
		}
	}

	logger.LogEvent(logger.EventScanCompleted, "aml-engine-service", "rules", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"alerts_created": response.AlertsCreated,
	})

	return response, nil
}

// buildContext собирает историю пользователя для правил. Для транзакций
// без пользователя контекст остается пустым.
func (s *ScanServiceImpl) buildContext(tx *models.Transaction) (*rules.EvaluationContext, error) {
	evalCtx := &rules.EvaluationContext{}
	if tx.UserID == "" {
		return evalCtx, nil
	}

	windowTxs, err := s.txRepo.ListByUserInWindow(
		tx.UserID, s.engine.StructuringWindowStart(tx), tx.CreatedAt, tx.TransactionID)
	if err != nil {
		return nil, err
	}
	evalCtx.WindowTransactions = windowTxs

	deposits, err := s.txRepo.ListCompletedDeposits(
		tx.UserID, s.engine.DepositWindowStart(tx), tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	evalCtx.CompletedDeposits = deposits

	user, err := s.userRepo.GetUserByID(tx.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		evalCtx.UserCreatedAt = &user.CreatedAt
	}

	return evalCtx, nil
}

// ScanRecentTransactions сканирует транзакции за hoursBack часов.
// Ошибка одной транзакции логируется и не прерывает проход; по итогам
// администраторы получают одно уведомление со сводкой.
func (s *ScanServiceImpl) ScanRecentTransactions(hoursBack int) (*models.BatchScanSummary, error) {
	if hoursBack <= 0 {
		hoursBack = s.batchLookbackHours
	}

	startedAt := time.Now().UTC()
	since := startedAt.Add(-time.Duration(hoursBack) * time.Hour)

	refs, err := s.txRepo.ListTransactionRefsSince(since)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventBatchScanStarted, "aml-engine-service", "rules", map[string]interface{}{
		"hours_back":        hoursBack,
		"transaction_count": len(refs),
	})

	summary := &models.BatchScanSummary{
		StartedAt: startedAt,
		Results:   []models.TransactionScanSummary{},
	}

	for _, ref := range refs {
		result, err := s.ScanTransaction(ref.TransactionID)
		if err != nil {
			log.Printf("Error scanning transaction %s: %v", ref.TransactionID, err)
			summary.FailedCount++
			continue
		}

		summary.ScannedCount++
		summary.AlertCount += result.AlertsCreated

		if result.AlertsCreated > 0 {
			summary.Results = append(summary.Results, models.TransactionScanSummary{
				TransactionID: result.TransactionID,
				AlertCount:    result.AlertsCreated,
				AlertTypes:    collectAlertTypes(result.Alerts),
			})
		}
	}

	summary.CompletedAt = time.Now().UTC()

	if summary.AlertCount > 0 {
		s.notifyAdmins(summary)
	}

	logger.LogEvent(logger.EventBatchScanCompleted, "aml-engine-service", "rules", map[string]interface{}{
		"scanned_count": summary.ScannedCount,
		"alert_count":   summary.AlertCount,
		"failed_count":  summary.FailedCount,
	})

	return summary, nil
}

// notifyAdmins отправляет администраторам сводку пакетного сканирования.
// Сбои доставки не влияют на результат сканирования.
func (s *ScanServiceImpl) notifyAdmins(summary *models.BatchScanSummary) {
	if s.producer == nil {
		return
	}

	admins, err := s.userRepo.ListUsersByRole(models.RoleAdmin)
	if err != nil {
		log.Printf("Error listing admin users for notification: %v", err)
		return
	}

	for _, admin := range admins {
		event := &models.NotificationEvent{
			EventID:   "evt_" + uuid.New().String(),
			EventType: models.EventTypeNotificationRequest,
			Timestamp: time.Now(),
			Notification: models.Notification{
				UserID: admin.UserID,
				Kind:   "aml_batch_scan",
				Title:  "AML batch scan completed",
				Body: fmt.Sprintf("%d alerts created across %d scanned transactions",
					summary.AlertCount, summary.ScannedCount),
				Data: map[string]string{
					"alert_count":   strconv.Itoa(summary.AlertCount),
					"scanned_count": strconv.Itoa(summary.ScannedCount),
					"failed_count":  strconv.Itoa(summary.FailedCount),
				},
			},
		}

		if err := s.producer.PublishNotification(event); err != nil {
			log.Printf("Error sending batch scan notification to %s: %v", admin.UserID, err)
			continue
		}

		logger.LogEvent(logger.EventNotificationSent, "aml-engine-service", "kafka", map[string]interface{}{
			"user_id":     admin.UserID,
			"alert_count": summary.AlertCount,
		})
	}
}

func collectAlertTypes(alerts []*models.Alert) []string {
	types := make([]string, 0, len(alerts))
	for _, a := range alerts {
		types = append(types, a.AlertType)
	}
	return types
}
