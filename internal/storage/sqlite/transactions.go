package sqlite

import (
	"database/sql"
	"time"

	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
)

// SaveTransaction сохраняет транзакцию в реестре
func (s *SQLiteStorage) SaveTransaction(tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	return s.execWithRetry(
		query,
		tx.TransactionID, nullString(tx.UserID), tx.Type, tx.Amount, tx.Status,
		tx.CreatedAt.UTC(),
	)
}

// GetTransactionByID получает транзакцию по transaction_id
func (s *SQLiteStorage) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, status, created_at
		FROM transactions
		WHERE transaction_id = ?
	`

	tx, err := scanTransaction(s.DB.QueryRow(query, transactionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// ListByUserInWindow получает транзакции пользователя в окне [start, end],
// исключая транзакцию с excludeID. Порядок - по времени создания.
func (s *SQLiteStorage) ListByUserInWindow(userID string, start, end time.Time, excludeID string) ([]*models.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, status, created_at
		FROM transactions
		WHERE user_id = ? AND created_at >= ? AND created_at <= ? AND transaction_id != ?
		ORDER BY created_at ASC
	`

	rows, err := s.DB.Query(query, userID, start.UTC(), end.UTC(), excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListCompletedDeposits получает завершенные депозиты пользователя в окне [start, end]
func (s *SQLiteStorage) ListCompletedDeposits(userID string, start, end time.Time) ([]*models.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, status, created_at
		FROM transactions
		WHERE user_id = ? AND type = ? AND status = ? AND created_at >= ? AND created_at <= ?
		ORDER BY created_at ASC
	`

	rows, err := s.DB.Query(
		query,
		userID, models.TransactionTypeDeposit, models.TransactionStatusCompleted,
		start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListTransactionRefsSince получает минимальные проекции транзакций,
// созданных не раньше since
func (s *SQLiteStorage) ListTransactionRefsSince(since time.Time) ([]*models.TransactionRef, error) {
	query := `
		SELECT transaction_id, created_at
		FROM transactions
		WHERE created_at >= ?
		ORDER BY created_at ASC
	`

	rows, err := s.DB.Query(query, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.TransactionRef
	for rows.Next() {
		var ref models.TransactionRef
		if err := rows.Scan(&ref.TransactionID, &ref.CreatedAt); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}

	return refs, rows.Err()
}

// ListTransactions получает последние транзакции реестра
func (s *SQLiteStorage) ListTransactions(limit int) ([]*models.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, status, created_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// SumAmountByUser возвращает сумму всех транзакций пользователя за все время
func (s *SQLiteStorage) SumAmountByUser(userID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ?`

	var total float64
	if err := s.DB.QueryRow(query, userID).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromFloat(total), nil
}

// ClearAllTransactions удаляет все транзакции из реестра
func (s *SQLiteStorage) ClearAllTransactions() error {
	return s.execWithRetry(`DELETE FROM transactions`)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTransaction читает одну строку реестра в модель
func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	var userID sql.NullString

	err := row.Scan(&tx.TransactionID, &userID, &tx.Type, &tx.Amount, &tx.Status, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}

	tx.UserID = userID.String
	return &tx, nil
}

// collectTransactions читает все строки результата в список моделей
func collectTransactions(rows *sql.Rows) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
