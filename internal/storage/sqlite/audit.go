package sqlite

import (
	"invest-aml-engine/internal/models"
)

// SaveAuditEntry добавляет запись в журнал ревью
func (s *SQLiteStorage) SaveAuditEntry(entry *models.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (
			audit_id, alert_id, transaction_id, previous_status, new_status,
			notes, reviewer_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	return s.execWithRetry(
		query,
		entry.AuditID, entry.AlertID, entry.TransactionID, entry.PreviousStatus,
		entry.NewStatus, entry.Notes, entry.ReviewerID, entry.CreatedAt.UTC(),
	)
}

// ListAuditEntriesByAlert получает историю ревью алерта в порядке записи
func (s *SQLiteStorage) ListAuditEntriesByAlert(alertID string) ([]*models.AuditEntry, error) {
	query := `
		SELECT audit_id, alert_id, transaction_id, previous_status, new_status,
		       notes, reviewer_id, created_at
		FROM audit_entries
		WHERE alert_id = ?
		ORDER BY created_at ASC
	`

	rows, err := s.DB.Query(query, alertID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		err := rows.Scan(
			&entry.AuditID, &entry.AlertID, &entry.TransactionID, &entry.PreviousStatus,
			&entry.NewStatus, &entry.Notes, &entry.ReviewerID, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
