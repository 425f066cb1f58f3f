package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAlertService является моком для services.AlertService интерфейса
type MockAlertService struct {
	mock.Mock
}

// GetAlert мок для GetAlert
func (m *MockAlertService) GetAlert(alertID string) (*models.Alert, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

// ListAlerts мок для ListAlerts
func (m *MockAlertService) ListAlerts(filter *models.AlertFilter) (*models.AlertListResponse, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlertListResponse), args.Error(1)
}

// ReviewAlert мок для ReviewAlert
func (m *MockAlertService) ReviewAlert(alertID string, req *models.ReviewAlertRequest) (*models.ReviewConfirmation, error) {
	args := m.Called(alertID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewConfirmation), args.Error(1)
}

// ListAuditEntries мок для ListAuditEntries
func (m *MockAlertService) ListAuditEntries(alertID string) ([]*models.AuditEntry, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditEntry), args.Error(1)
}
