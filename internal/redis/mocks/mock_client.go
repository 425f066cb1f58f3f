package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// SaveScanResult мок для SaveScanResult
func (m *MockClientInterface) SaveScanResult(transactionID string, result *models.ScanResponse) error {
	args := m.Called(transactionID, result)
	return args.Error(0)
}

// GetScanResult мок для GetScanResult
func (m *MockClientInterface) GetScanResult(transactionID string) (*models.ScanResponse, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScanResponse), args.Error(1)
}

// IncrementScanCount мок для IncrementScanCount
func (m *MockClientInterface) IncrementScanCount() error {
	args := m.Called()
	return args.Error(0)
}

// IncrementAlertStats мок для IncrementAlertStats
func (m *MockClientInterface) IncrementAlertStats(severity string) error {
	args := m.Called(severity)
	return args.Error(0)
}

// GetScanStats мок для GetScanStats
func (m *MockClientInterface) GetScanStats() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ClearScanData мок для ClearScanData
func (m *MockClientInterface) ClearScanData() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
