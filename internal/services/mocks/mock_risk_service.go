package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRiskService является моком для services.RiskService интерфейса
type MockRiskService struct {
	mock.Mock
}

// GetUserRiskReport мок для GetUserRiskReport
func (m *MockRiskService) GetUserRiskReport(userID string) (*models.RiskReport, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskReport), args.Error(1)
}
