package sqlite

import (
	"database/sql"

	"invest-aml-engine/internal/models"
)

// SaveUser сохраняет профиль пользователя в каталоге
func (s *SQLiteStorage) SaveUser(user *models.UserProfile) error {
	query := `
		INSERT INTO users (user_id, email, role, kyc_status, kyc_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	return s.execWithRetry(
		query,
		user.UserID, user.Email, user.Role, user.KYCStatus, user.KYCLevel,
		user.CreatedAt.UTC(),
	)
}

// GetUserByID получает профиль по user_id
func (s *SQLiteStorage) GetUserByID(userID string) (*models.UserProfile, error) {
	query := `
		SELECT user_id, email, role, kyc_status, kyc_level, created_at
		FROM users
		WHERE user_id = ?
	`

	var user models.UserProfile
	err := s.DB.QueryRow(query, userID).Scan(
		&user.UserID, &user.Email, &user.Role, &user.KYCStatus, &user.KYCLevel,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsersByRole получает профили с заданной ролью
func (s *SQLiteStorage) ListUsersByRole(role string) ([]*models.UserProfile, error) {
	query := `
		SELECT user_id, email, role, kyc_status, kyc_level, created_at
		FROM users
		WHERE role = ?
		ORDER BY created_at ASC
	`

	rows, err := s.DB.Query(query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.UserProfile
	for rows.Next() {
		var user models.UserProfile
		err := rows.Scan(
			&user.UserID, &user.Email, &user.Role, &user.KYCStatus, &user.KYCLevel,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}
