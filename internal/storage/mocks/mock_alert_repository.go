package mocks

import (
	"time"

	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAlertRepository является моком для storage.AlertRepository интерфейса
type MockAlertRepository struct {
	mock.Mock
}

// SaveAlert мок для SaveAlert
func (m *MockAlertRepository) SaveAlert(alert *models.Alert) error {
	args := m.Called(alert)
	return args.Error(0)
}

// GetAlertByID мок для GetAlertByID
func (m *MockAlertRepository) GetAlertByID(alertID string) (*models.Alert, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

// ListAlerts мок для ListAlerts
func (m *MockAlertRepository) ListAlerts(filter *models.AlertFilter) ([]*models.Alert, int, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Alert), args.Int(1), args.Error(2)
}

// UpdateAlertReview мок для UpdateAlertReview
func (m *MockAlertRepository) UpdateAlertReview(alertID, status string, reviewedAt time.Time, notes, reviewerID string) error {
	args := m.Called(alertID, status, reviewedAt, notes, reviewerID)
	return args.Error(0)
}

// GetUserAlertStats мок для GetUserAlertStats
func (m *MockAlertRepository) GetUserAlertStats(userID string) (*models.UserAlertStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAlertStats), args.Error(1)
}

// CountAlertsByStatus мок для CountAlertsByStatus
func (m *MockAlertRepository) CountAlertsByStatus() (map[string]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// CountAlertsBySeverity мок для CountAlertsBySeverity
func (m *MockAlertRepository) CountAlertsBySeverity() (map[string]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// ListHighRiskUserIDs мок для ListHighRiskUserIDs
func (m *MockAlertRepository) ListHighRiskUserIDs() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ListRecentAlerts мок для ListRecentAlerts
func (m *MockAlertRepository) ListRecentAlerts(limit int) ([]*models.Alert, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Alert), args.Error(1)
}
