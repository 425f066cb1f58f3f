package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/storage"
)

// AlertServiceImpl реализует интерфейс AlertService
type AlertServiceImpl struct {
	alertRepo       storage.AlertRepository
	auditRepo       storage.AuditRepository
	defaultPageSize int
}

// NewAlertService создает новый сервис работы с алертами
func NewAlertService(alertRepo storage.AlertRepository, auditRepo storage.AuditRepository, defaultPageSize int) AlertService {
	return &AlertServiceImpl{
		alertRepo:       alertRepo,
		auditRepo:       auditRepo,
		defaultPageSize: defaultPageSize,
	}
}

// GetAlert возвращает алерт по идентификатору
func (s *AlertServiceImpl) GetAlert(alertID string) (*models.Alert, error) {
	return s.alertRepo.GetAlertByID(alertID)
}

// ListAlerts возвращает страницу алертов по фильтру
func (s *AlertServiceImpl) ListAlerts(filter *models.AlertFilter) (*models.AlertListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = s.defaultPageSize
	}

	alerts, total, err := s.alertRepo.ListAlerts(filter)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []*models.Alert{}
	}

	return &models.AlertListResponse{
		Alerts:   alerts,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// ReviewAlert переводит алерт в целевой статус. Статус всегда перезаписывается
// статусом из запроса: процедура не навязывает более строгую таблицу переходов,
// и уже отревьюированный алерт может быть, например, эскалирован повторно.
func (s *AlertServiceImpl) ReviewAlert(alertID string, req *models.ReviewAlertRequest) (*models.ReviewConfirmation, error) {
	if !models.IsValidReviewStatus(req.Status) {
		return nil, fmt.Errorf("%w: invalid review status %q", ErrValidation, req.Status)
	}
	if req.ReviewerID == "" {
		return nil, fmt.Errorf("%w: reviewer_id is required", ErrValidation)
	}

	alert, err := s.alertRepo.GetAlertByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlertNotFound, alertID)
	}

	previousStatus := alert.Status
	reviewedAt := time.Now().UTC()

	if err := s.alertRepo.UpdateAlertReview(alertID, req.Status, reviewedAt, req.Notes, req.ReviewerID); err != nil {
		return nil, err
	}

	entry := &models.AuditEntry{
		AuditID:        "audit_" + uuid.New().String(),
		AlertID:        alertID,
		TransactionID:  alert.TransactionID,
		PreviousStatus: previousStatus,
		NewStatus:      req.Status,
		Notes:          req.Notes,
		ReviewerID:     req.ReviewerID,
		CreatedAt:      reviewedAt,
	}
	if err := s.auditRepo.SaveAuditEntry(entry); err != nil {
		// Статус уже изменен, но без записи в журнале ревью считается незавершенным
		return nil, err
	}

	logger.LogEvent(logger.EventAlertReviewed, "aml-engine-service", "sqlite", map[string]interface{}{
		"alert_id":        alertID,
		"previous_status": previousStatus,
		"new_status":      req.Status,
		"reviewer_id":     req.ReviewerID,
	})

	return &models.ReviewConfirmation{
		AlertID:        alertID,
		PreviousStatus: previousStatus,
		NewStatus:      req.Status,
		ReviewedAt:     reviewedAt,
		Message:        "Alert review recorded",
	}, nil
}

// ListAuditEntries возвращает историю ревью алерта
func (s *AlertServiceImpl) ListAuditEntries(alertID string) ([]*models.AuditEntry, error) {
	entries, err := s.auditRepo.ListAuditEntriesByAlert(alertID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.AuditEntry{}
	}
	return entries, nil
}
