package sqlite

import (
	"database/sql"
	"time"

	"invest-aml-engine/internal/models"
)

const alertColumns = `alert_id, transaction_id, user_id, alert_type, severity,
		description, status, amount, scanned_at, reviewed_at, review_notes, reviewed_by`

// SaveAlert добавляет алерт в хранилище
func (s *SQLiteStorage) SaveAlert(alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			alert_id, transaction_id, user_id, alert_type, severity,
			description, status, amount, scanned_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	return s.execWithRetry(
		query,
		alert.AlertID, alert.TransactionID, nullString(alert.UserID), alert.AlertType,
		alert.Severity, alert.Description, alert.Status, alert.Amount,
		alert.ScannedAt.UTC(),
	)
}

// GetAlertByID получает алерт по alert_id
func (s *SQLiteStorage) GetAlertByID(alertID string) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = ?`

	alert, err := scanAlert(s.DB.QueryRow(query, alertID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return alert, nil
}

// ListAlerts получает страницу алертов по фильтру и общее число подходящих.
// Условия собираются только по заполненным полям фильтра, выборка идет
// по индексированным колонкам.
func (s *SQLiteStorage) ListAlerts(filter *models.AlertFilter) ([]*models.Alert, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		where += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.Severity != "" {
		where += ` AND severity = ?`
		args = append(args, filter.Severity)
	}
	if filter.UserID != "" {
		where += ` AND user_id = ?`
		args = append(args, filter.UserID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM alerts` + where
	if err := s.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	listQuery := `SELECT ` + alertColumns + ` FROM alerts` + where +
		` ORDER BY scanned_at DESC LIMIT ? OFFSET ?`
	listArgs := append(args, filter.PageSize, offset)

	rows, err := s.DB.Query(listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	alerts, err := collectAlerts(rows)
	if err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// UpdateAlertReview обновляет статус и поля ревью алерта
func (s *SQLiteStorage) UpdateAlertReview(alertID, status string, reviewedAt time.Time, notes, reviewerID string) error {
	query := `
		UPDATE alerts
		SET status = ?,
		    reviewed_at = ?,
		    review_notes = ?,
		    reviewed_by = ?
		WHERE alert_id = ?
	`

	return s.execWithRetry(query, status, reviewedAt.UTC(), notes, reviewerID, alertID)
}

// GetUserAlertStats возвращает сводку алертов пользователя для риск-скоринга
func (s *SQLiteStorage) GetUserAlertStats(userID string) (*models.UserAlertStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN severity = ? OR status = ? THEN 1 ELSE 0 END), 0)
		FROM alerts
		WHERE user_id = ?
	`

	var stats models.UserAlertStats
	var severeCount int
	err := s.DB.QueryRow(query, models.SeverityHigh, models.AlertStatusEscalated, userID).
		Scan(&stats.TotalAlerts, &severeCount)
	if err != nil {
		return nil, err
	}

	stats.HasSevereAlert = severeCount > 0
	return &stats, nil
}

// CountAlertsByStatus возвращает количество алертов по каждому статусу
func (s *SQLiteStorage) CountAlertsByStatus() (map[string]int, error) {
	return s.countAlertsGroupedBy("status")
}

// CountAlertsBySeverity возвращает количество алертов по каждой серьезности
func (s *SQLiteStorage) CountAlertsBySeverity() (map[string]int, error) {
	return s.countAlertsGroupedBy("severity")
}

func (s *SQLiteStorage) countAlertsGroupedBy(column string) (map[string]int, error) {
	// column приходит только из CountAlertsByStatus/CountAlertsBySeverity
	query := `SELECT ` + column + `, COUNT(*) FROM alerts GROUP BY ` + column

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}

	return counts, rows.Err()
}

// ListHighRiskUserIDs возвращает пользователей с HIGH-алертами или эскалациями
func (s *SQLiteStorage) ListHighRiskUserIDs() ([]string, error) {
	query := `
		SELECT DISTINCT user_id
		FROM alerts
		WHERE user_id IS NOT NULL AND (severity = ? OR status = ?)
		ORDER BY user_id ASC
	`

	rows, err := s.DB.Query(query, models.SeverityHigh, models.AlertStatusEscalated)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}

	return userIDs, rows.Err()
}

// ListRecentAlerts возвращает последние алерты по времени сканирования
func (s *SQLiteStorage) ListRecentAlerts(limit int) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY scanned_at DESC LIMIT ?`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAlerts(rows)
}

// scanAlert читает одну строку хранилища алертов в модель
func scanAlert(row rowScanner) (*models.Alert, error) {
	var alert models.Alert
	var userID sql.NullString

	err := row.Scan(
		&alert.AlertID, &alert.TransactionID, &userID, &alert.AlertType,
		&alert.Severity, &alert.Description, &alert.Status, &alert.Amount,
		&alert.ScannedAt, &alert.ReviewedAt, &alert.ReviewNotes, &alert.ReviewedBy,
	)
	if err != nil {
		return nil, err
	}

	alert.UserID = userID.String
	return &alert, nil
}

// collectAlerts читает все строки результата в список моделей
func collectAlerts(rows *sql.Rows) ([]*models.Alert, error) {
	var alerts []*models.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}
