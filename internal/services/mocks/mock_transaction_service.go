package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionService является моком для services.TransactionService интерфейса
type MockTransactionService struct {
	mock.Mock
}

// SubmitTransaction мок для SubmitTransaction
func (m *MockTransactionService) SubmitTransaction(req *models.SubmitTransactionRequest) (*models.SubmitTransactionResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitTransactionResponse), args.Error(1)
}

// GetTransaction мок для GetTransaction
func (m *MockTransactionService) GetTransaction(transactionID string) (*models.Transaction, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// ListTransactions мок для ListTransactions
func (m *MockTransactionService) ListTransactions(limit int) ([]*models.Transaction, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// ClearAllTransactions мок для ClearAllTransactions
func (m *MockTransactionService) ClearAllTransactions() error {
	args := m.Called()
	return args.Error(0)
}
