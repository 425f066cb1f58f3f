package services

import (
	"errors"
	"testing"

	"invest-aml-engine/internal/models"
	storagemocks "invest-aml-engine/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboardService(t *testing.T) {
	mockAlertRepo := new(storagemocks.MockAlertRepository)

	service := NewDashboardService(mockAlertRepo)

	assert.NotNil(t, service)
}

func TestDashboardService_GetDashboardStats(t *testing.T) {
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewDashboardService(mockAlertRepo)

	recent := []*models.Alert{
		{AlertID: "alert_002", Severity: models.SeverityHigh},
		{AlertID: "alert_001", Severity: models.SeverityLow},
	}

	mockAlertRepo.On("CountAlertsByStatus").Return(map[string]int{
		models.AlertStatusPending:  3,
		models.AlertStatusReviewed: 1,
	}, nil)
	mockAlertRepo.On("CountAlertsBySeverity").Return(map[string]int{
		models.SeverityHigh: 2,
		models.SeverityLow:  2,
	}, nil)
	mockAlertRepo.On("ListHighRiskUserIDs").Return([]string{"user_007"}, nil)
	mockAlertRepo.On("ListRecentAlerts", 10).Return(recent, nil)

	stats, err := service.GetDashboardStats()

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.TotalAlerts)

	// Все известные статусы и серьезности присутствуют, даже нулевые
	assert.Equal(t, 3, stats.ByStatus[models.AlertStatusPending])
	assert.Equal(t, 0, stats.ByStatus[models.AlertStatusEscalated])
	assert.Equal(t, 0, stats.ByStatus[models.AlertStatusCleared])
	assert.Equal(t, 0, stats.ByStatus[models.AlertStatusReported])
	assert.Len(t, stats.ByStatus, 5)

	assert.Equal(t, 2, stats.BySeverity[models.SeverityHigh])
	assert.Equal(t, 0, stats.BySeverity[models.SeverityMedium])
	assert.Len(t, stats.BySeverity, 3)

	assert.Equal(t, []string{"user_007"}, stats.HighRiskUsers)
	assert.Equal(t, recent, stats.RecentAlerts)

	mockAlertRepo.AssertExpectations(t)
}

func TestDashboardService_GetDashboardStats_Empty(t *testing.T) {
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewDashboardService(mockAlertRepo)

	mockAlertRepo.On("CountAlertsByStatus").Return(map[string]int{}, nil)
	mockAlertRepo.On("CountAlertsBySeverity").Return(map[string]int{}, nil)
	mockAlertRepo.On("ListHighRiskUserIDs").Return(nil, nil)
	mockAlertRepo.On("ListRecentAlerts", 10).Return(nil, nil)

	stats, err := service.GetDashboardStats()

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAlerts)
	assert.NotNil(t, stats.HighRiskUsers)
	assert.Empty(t, stats.HighRiskUsers)
	assert.NotNil(t, stats.RecentAlerts)
	assert.Empty(t, stats.RecentAlerts)
}

func TestDashboardService_GetDashboardStats_CountError(t *testing.T) {
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewDashboardService(mockAlertRepo)

	mockAlertRepo.On("CountAlertsByStatus").Return(nil, errors.New("database error"))

	stats, err := service.GetDashboardStats()

	assert.Error(t, err)
	assert.Nil(t, stats)

	mockAlertRepo.AssertNotCalled(t, "ListRecentAlerts")
}
