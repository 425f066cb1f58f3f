package mocks

import (
	"invest-aml-engine/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAuditRepository является моком для storage.AuditRepository интерфейса
type MockAuditRepository struct {
	mock.Mock
}

// SaveAuditEntry мок для SaveAuditEntry
func (m *MockAuditRepository) SaveAuditEntry(entry *models.AuditEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

// ListAuditEntriesByAlert мок для ListAuditEntriesByAlert
func (m *MockAuditRepository) ListAuditEntriesByAlert(alertID string) ([]*models.AuditEntry, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditEntry), args.Error(1)
}
