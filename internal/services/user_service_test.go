package services

import (
	"errors"
	"testing"
	"time"

	"invest-aml-engine/internal/models"
	storagemocks "invest-aml-engine/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUserService(t *testing.T) {
	mockRepo := new(storagemocks.MockUserRepository)

	service := NewUserService(mockRepo)

	assert.NotNil(t, service)
}

func TestUserService_RegisterUser_Defaults(t *testing.T) {
	mockRepo := new(storagemocks.MockUserRepository)
	service := NewUserService(mockRepo)

	req := &models.RegisterUserRequest{
		Email: "ivanov@example.com",
	}

	var saved *models.UserProfile
	mockRepo.On("SaveUser", mock.AnythingOfType("*models.UserProfile")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.UserProfile)
	}).Return(nil)

	user, err := service.RegisterUser(req)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Contains(t, user.UserID, "user_")
	assert.Equal(t, "ivanov@example.com", user.Email)
	assert.Equal(t, models.RoleInvestor, user.Role)
	assert.Equal(t, models.KYCStatusPending, user.KYCStatus)
	assert.Equal(t, 0, user.KYCLevel)
	assert.WithinDuration(t, time.Now().UTC(), user.CreatedAt, 5*time.Second)

	require.NotNil(t, saved)
	assert.Equal(t, user.UserID, saved.UserID)

	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_ExplicitFields(t *testing.T) {
	mockRepo := new(storagemocks.MockUserRepository)
	service := NewUserService(mockRepo)

	req := &models.RegisterUserRequest{
		UserID:    "user_admin_001",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
		KYCStatus: models.KYCStatusApproved,
		KYCLevel:  3,
	}

	mockRepo.On("SaveUser", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	user, err := service.RegisterUser(req)

	require.NoError(t, err)
	assert.Equal(t, "user_admin_001", user.UserID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, models.KYCStatusApproved, user.KYCStatus)
	assert.Equal(t, 3, user.KYCLevel)

	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_RepositoryError(t *testing.T) {
	mockRepo := new(storagemocks.MockUserRepository)
	service := NewUserService(mockRepo)

	req := &models.RegisterUserRequest{
		Email: "ivanov@example.com",
	}

	mockRepo.On("SaveUser", mock.AnythingOfType("*models.UserProfile")).Return(errors.New("database error"))

	user, err := service.RegisterUser(req)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(storagemocks.MockUserRepository)
	service := NewUserService(mockRepo)

	profile := &models.UserProfile{
		UserID:    "user_001",
		Email:     "ivanov@example.com",
		Role:      models.RoleInvestor,
		KYCStatus: models.KYCStatusApproved,
		KYCLevel:  2,
		CreatedAt: time.Now().Add(-90 * 24 * time.Hour),
	}

	mockRepo.On("GetUserByID", "user_001").Return(profile, nil)
	mockRepo.On("GetUserByID", "user_missing").Return(nil, nil)

	found, err := service.GetUser("user_001")
	require.NoError(t, err)
	assert.Equal(t, profile, found)

	missing, err := service.GetUser("user_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	mockRepo.AssertExpectations(t)
}
