package services

import (
	"time"

	"github.com/google/uuid"

	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/storage"
)

// UserServiceImpl реализует интерфейс UserService
type UserServiceImpl struct {
	repo storage.UserRepository
}

// NewUserService создает новый сервис каталога пользователей
func NewUserService(repo storage.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

// RegisterUser сохраняет профиль пользователя в каталоге.
// Идентификатор из запроса сохраняется, чтобы стенды могли
// регистрировать пользователей с известными user_id.
func (s *UserServiceImpl) RegisterUser(req *models.RegisterUserRequest) (*models.UserProfile, error) {
	userID := req.UserID
	if userID == "" {
		userID = "user_" + uuid.New().String()
	}

	role := req.Role
	if role == "" {
		role = models.RoleInvestor
	}

	kycStatus := req.KYCStatus
	if kycStatus == "" {
		kycStatus = models.KYCStatusPending
	}

	user := &models.UserProfile{
		UserID:    userID,
		Email:     req.Email,
		Role:      role,
		KYCStatus: kycStatus,
		KYCLevel:  req.KYCLevel,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.SaveUser(user); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventUserRegistered, "ingestion-service", "sqlite", map[string]interface{}{
		"user_id": user.UserID,
		"role":    user.Role,
	})

	return user, nil
}

// GetUser возвращает профиль пользователя
func (s *UserServiceImpl) GetUser(userID string) (*models.UserProfile, error) {
	return s.repo.GetUserByID(userID)
}
