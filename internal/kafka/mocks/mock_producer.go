package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// PublishTransactionEvent мок для PublishTransactionEvent
func (m *MockProducer) PublishTransactionEvent(event *models.TransactionEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// PublishNotification мок для PublishNotification
func (m *MockProducer) PublishNotification(event *models.NotificationEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
