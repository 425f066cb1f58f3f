package sqlite

// initSchema инициализирует схему БД.
// Алерты хранятся как типизированные записи с индексами по полям фильтрации,
// а журнал ревью лежит в отдельной append-only таблице.
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS transactions (
		transaction_id TEXT PRIMARY KEY,
		user_id TEXT,
		type TEXT NOT NULL,
		amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'completed',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions(user_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);

	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'investor',
		kyc_status TEXT NOT NULL DEFAULT 'pending',
		kyc_level INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);

	CREATE TABLE IF NOT EXISTS alerts (
		alert_id TEXT PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		user_id TEXT,
		alert_type TEXT NOT NULL,
		severity TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		amount REAL NOT NULL,
		scanned_at DATETIME NOT NULL,
		reviewed_at DATETIME,
		review_notes TEXT,
		reviewed_by TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_alerts_status ON alerts(status);
	CREATE INDEX IF NOT EXISTS idx_alerts_severity ON alerts(severity);
	CREATE INDEX IF NOT EXISTS idx_alerts_user_id ON alerts(user_id);
	CREATE INDEX IF NOT EXISTS idx_alerts_transaction_id ON alerts(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_alerts_scanned_at ON alerts(scanned_at);

	CREATE TABLE IF NOT EXISTS audit_entries (
		audit_id TEXT PRIMARY KEY,
		alert_id TEXT NOT NULL,
		transaction_id TEXT NOT NULL,
		previous_status TEXT NOT NULL,
		new_status TEXT NOT NULL,
		notes TEXT,
		reviewer_id TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audit_alert_id ON audit_entries(alert_id);
	`

	_, err := s.DB.Exec(query)
	return err
}
