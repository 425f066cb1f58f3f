package mocks

import (
	"time"

	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository является моком для storage.TransactionRepository интерфейса
type MockTransactionRepository struct {
	mock.Mock
}

// SaveTransaction мок для SaveTransaction
func (m *MockTransactionRepository) SaveTransaction(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

// GetTransactionByID мок для GetTransactionByID
func (m *MockTransactionRepository) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// ListByUserInWindow мок для ListByUserInWindow
func (m *MockTransactionRepository) ListByUserInWindow(userID string, start, end time.Time, excludeID string) ([]*models.Transaction, error) {
	args := m.Called(userID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// ListCompletedDeposits мок для ListCompletedDeposits
func (m *MockTransactionRepository) ListCompletedDeposits(userID string, start, end time.Time) ([]*models.Transaction, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// ListTransactionRefsSince мок для ListTransactionRefsSince
func (m *MockTransactionRepository) ListTransactionRefsSince(since time.Time) ([]*models.TransactionRef, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TransactionRef), args.Error(1)
}

// ListTransactions мок для ListTransactions
func (m *MockTransactionRepository) ListTransactions(limit int) ([]*models.Transaction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// SumAmountByUser мок для SumAmountByUser
func (m *MockTransactionRepository) SumAmountByUser(userID string) (decimal.Decimal, error) {
	args := m.Called(userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// ClearAllTransactions мок для ClearAllTransactions
func (m *MockTransactionRepository) ClearAllTransactions() error {
	args := m.Called()
	return args.Error(0)
}
