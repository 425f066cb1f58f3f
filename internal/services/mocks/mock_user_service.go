package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserService является моком для services.UserService интерфейса
type MockUserService struct {
	mock.Mock
}

// RegisterUser мок для RegisterUser
func (m *MockUserService) RegisterUser(req *models.RegisterUserRequest) (*models.UserProfile, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

// GetUser мок для GetUser
func (m *MockUserService) GetUser(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}
