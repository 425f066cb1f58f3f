package services

import (
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/storage"
)

// Размер превью последних алертов на дашборде
const recentAlertsLimit = 10

// DashboardServiceImpl реализует интерфейс DashboardService
type DashboardServiceImpl struct {
	alertRepo storage.AlertRepository
}

// NewDashboardService создает новый сервис сводки дашборда
func NewDashboardService(alertRepo storage.AlertRepository) DashboardService {
	return &DashboardServiceImpl{alertRepo: alertRepo}
}

// GetDashboardStats возвращает агрегированную сводку по алертам.
// Счетчики заполняются нулями для всех известных статусов и серьезностей,
// чтобы дашборд всегда видел полный набор ключей.
func (s *DashboardServiceImpl) GetDashboardStats() (*models.DashboardStats, error) {
	byStatus, err := s.alertRepo.CountAlertsByStatus()
	if err != nil {
		return nil, err
	}
	for _, status := range models.AllAlertStatuses {
		if _, ok := byStatus[status]; !ok {
			byStatus[status] = 0
		}
	}

	bySeverity, err := s.alertRepo.CountAlertsBySeverity()
	if err != nil {
		return nil, err
	}
	for _, severity := range models.AllSeverities {
		if _, ok := bySeverity[severity]; !ok {
			bySeverity[severity] = 0
		}
	}

	highRiskUsers, err := s.alertRepo.ListHighRiskUserIDs()
	if err != nil {
		return nil, err
	}
	if highRiskUsers == nil {
		highRiskUsers = []string{}
	}

	recentAlerts, err := s.alertRepo.ListRecentAlerts(recentAlertsLimit)
	if err != nil {
		return nil, err
	}
	if recentAlerts == nil {
		recentAlerts = []*models.Alert{}
	}

	total := 0
	for _, count := range byStatus {
		total += count
	}

	return &models.DashboardStats{
		TotalAlerts:   total,
		ByStatus:      byStatus,
		BySeverity:    bySeverity,
		HighRiskUsers: highRiskUsers,
		RecentAlerts:  recentAlerts,
	}, nil
}
