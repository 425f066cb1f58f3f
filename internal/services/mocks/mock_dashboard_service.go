package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockDashboardService является моком для services.DashboardService интерфейса
type MockDashboardService struct {
	mock.Mock
}

// GetDashboardStats мок для GetDashboardStats
func (m *MockDashboardService) GetDashboardStats() (*models.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}
