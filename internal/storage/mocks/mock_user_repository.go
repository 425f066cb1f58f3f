package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository является моком для storage.UserRepository интерфейса
type MockUserRepository struct {
	mock.Mock
}

// SaveUser мок для SaveUser
func (m *MockUserRepository) SaveUser(user *models.UserProfile) error {
	args := m.Called(user)
	return args.Error(0)
}

// GetUserByID мок для GetUserByID
func (m *MockUserRepository) GetUserByID(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

// ListUsersByRole мок для ListUsersByRole
func (m *MockUserRepository) ListUsersByRole(role string) ([]*models.UserProfile, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserProfile), args.Error(1)
}
