package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockScanService является моком для services.ScanService интерфейса
type MockScanService struct {
	mock.Mock
}

// ScanTransaction мок для ScanTransaction
func (m *MockScanService) ScanTransaction(transactionID string) (*models.ScanResponse, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScanResponse), args.Error(1)
}

// ScanRecentTransactions мок для ScanRecentTransactions
func (m *MockScanService) ScanRecentTransactions(hoursBack int) (*models.BatchScanSummary, error) {
	args := m.Called(hoursBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchScanSummary), args.Error(1)
}
