package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"invest-aml-engine/internal/kafka"
	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/storage"
)

// TransactionServiceImpl реализует интерфейс TransactionService
type TransactionServiceImpl struct {
	repo     storage.TransactionRepository
	producer kafka.Producer
}

// NewTransactionService создает новый сервис приема транзакций
func NewTransactionService(repo storage.TransactionRepository, producer kafka.Producer) TransactionService {
	return &TransactionServiceImpl{
		repo:     repo,
		producer: producer,
	}
}

// SubmitTransaction принимает транзакцию в реестр
func (s *TransactionServiceImpl) SubmitTransaction(req *models.SubmitTransactionRequest) (*models.SubmitTransactionResponse, error) {
	// Сумму binding проверить не может, валидируем вручную
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = "txn_" + uuid.New().String()
	}

	status := req.Status
	if status == "" {
		status = models.TransactionStatusPending
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx := &models.Transaction{
		TransactionID: transactionID,
		UserID:        req.UserID,
		Type:          req.Type,
		Amount:        req.Amount,
		Status:        status,
		CreatedAt:     createdAt,
	}

	if err := s.repo.SaveTransaction(tx); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventTransactionSaved, "ingestion-service", "sqlite", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"user_id":        tx.UserID,
		"type":           tx.Type,
		"status":         tx.Status,
	})

	// Только завершенные транзакции попадают в поток сканирования
	if tx.Status == models.TransactionStatusCompleted {
		event := &models.TransactionEvent{
			EventID:     "evt_" + uuid.New().String(),
			EventType:   models.EventTypeTransactionCompleted,
			Timestamp:   time.Now(),
			Transaction: *tx,
		}

		if err := s.producer.PublishTransactionEvent(event); err != nil {
			return nil, err
		}

		logger.LogEvent(logger.EventKafkaSent, "ingestion-service", "kafka", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"event_id":       event.EventID,
		})
	}

	return &models.SubmitTransactionResponse{
		TransactionID: tx.TransactionID,
		Status:        tx.Status,
		Message:       "Transaction accepted",
	}, nil
}

// GetTransaction возвращает транзакцию по идентификатору
func (s *TransactionServiceImpl) GetTransaction(transactionID string) (*models.Transaction, error) {
	return s.repo.GetTransactionByID(transactionID)
}

// ListTransactions возвращает последние транзакции реестра
func (s *TransactionServiceImpl) ListTransactions(limit int) ([]*models.Transaction, error) {
	return s.repo.ListTransactions(limit)
}

// ClearAllTransactions очищает реестр
func (s *TransactionServiceImpl) ClearAllTransactions() error {
	return s.repo.ClearAllTransactions()
}
