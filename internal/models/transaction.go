package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Суммы сериализуются как числа, а не как строки
	decimal.MarshalJSONWithoutQuotes = true
}

// Статусы транзакции в реестре платформы
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

// Базовые типы транзакций инвестиционной платформы.
// Набор открытый: реестр может содержать и другие типы.
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeInvestment = "investment"
	TransactionTypeDividend   = "dividend"
)

// Transaction представляет транзакцию платформы в единой отчетной валюте.
// Запись неизменяема после завершения; движок только читает ее.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionRef представляет минимальную проекцию транзакции
// для пакетного сканирования
type TransactionRef struct {
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitTransactionRequest представляет запрос на прием транзакции в реестр
type SubmitTransactionRequest struct {
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Type          string          `json:"type" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status" binding:"omitempty,oneof=pending completed failed cancelled"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SubmitTransactionResponse представляет ответ на прием транзакции
type SubmitTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}
