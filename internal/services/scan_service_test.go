package services

import (
	"errors"
	"testing"
	"time"

	"invest-aml-engine/internal/config"
	kafkamocks "invest-aml-engine/internal/kafka/mocks"
	"invest-aml-engine/internal/models"
	redismocks "invest-aml-engine/internal/redis/mocks"
	"invest-aml-engine/internal/rules"
	storagemocks "invest-aml-engine/internal/storage/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scanTestEngine() *rules.Engine {
	return rules.NewEngine(config.RulesConfig{
		HighAmountThreshold:      decimal.NewFromInt(50000),
		StructuringThreshold:     decimal.NewFromInt(20000),
		StructuringWindowHours:   1,
		RapidMovementWindowHours: 2,
		RapidWithdrawalRatio:     decimal.NewFromFloat(0.8),
		NewUserThreshold:         decimal.NewFromInt(10000),
		NewUserMaxAgeDays:        30,
	})
}

func scanTestTransaction(id, userID string, amount int64) *models.Transaction {
	return &models.Transaction{
		TransactionID: id,
		UserID:        userID,
		Type:          models.TransactionTypeDeposit,
		Amount:        decimal.NewFromInt(amount),
		Status:        models.TransactionStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestNewScanService(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)

	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	assert.NotNil(t, service)
}

func TestScanService_ScanTransaction_NotFound(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	mockTxRepo.On("GetTransactionByID", "txn_missing").Return(nil, nil)

	response, err := service.ScanTransaction("txn_missing")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransactionNotFound))
	assert.Contains(t, err.Error(), "txn_missing")
	assert.Nil(t, response)

	mockTxRepo.AssertExpectations(t)
	mockAlertRepo.AssertNotCalled(t, "SaveAlert")
}

func TestScanService_ScanTransaction_RepositoryError(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	mockTxRepo.On("GetTransactionByID", "txn_001").Return(nil, errors.New("database error"))

	response, err := service.ScanTransaction("txn_001")

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "database error")
}

func TestScanService_ScanTransaction_UserlessHighValue(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	tx := scanTestTransaction("txn_001", "", 60000)
	mockTxRepo.On("GetTransactionByID", "txn_001").Return(tx, nil)
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Return(nil)

	response, err := service.ScanTransaction("txn_001")

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "txn_001", response.TransactionID)
	assert.Equal(t, 1, response.AlertsCreated)
	require.Len(t, response.Alerts, 1)

	alert := response.Alerts[0]
	assert.Contains(t, alert.AlertID, "alert_")
	assert.Equal(t, models.AlertTypeHighValueTransaction, alert.AlertType)
	assert.Equal(t, models.SeverityHigh, alert.Severity)
	assert.Equal(t, models.AlertStatusPending, alert.Status)
	assert.False(t, alert.ScannedAt.IsZero())

	// Для транзакции без пользователя история не запрашивается
	mockTxRepo.AssertNotCalled(t, "ListByUserInWindow")
	mockTxRepo.AssertNotCalled(t, "ListCompletedDeposits")
	mockUserRepo.AssertNotCalled(t, "GetUserByID")

	mockTxRepo.AssertExpectations(t)
	mockAlertRepo.AssertExpectations(t)
}

func TestScanService_ScanTransaction_WithUserHistory(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	mockRedis := new(redismocks.MockClientInterface)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), mockRedis, nil, 24)

	tx := scanTestTransaction("txn_001", "user_001", 60000)
	window := []*models.Transaction{
		scanTestTransaction("txn_prev", "user_001", 5000),
	}
	user := &models.UserProfile{
		UserID:    "user_001",
		CreatedAt: tx.CreatedAt.Add(-400 * 24 * time.Hour),
	}

	mockTxRepo.On("GetTransactionByID", "txn_001").Return(tx, nil)
	mockTxRepo.On("ListByUserInWindow", "user_001",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "txn_001").Return(window, nil)
	mockTxRepo.On("ListCompletedDeposits", "user_001",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]*models.Transaction{}, nil)
	mockUserRepo.On("GetUserByID", "user_001").Return(user, nil)
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Return(nil)
	mockRedis.On("IncrementAlertStats", models.SeverityHigh).Return(nil)
	mockRedis.On("IncrementAlertStats", models.SeverityMedium).Return(nil)
	mockRedis.On("SaveScanResult", "txn_001", mock.AnythingOfType("*models.ScanResponse")).Return(nil)
	mockRedis.On("IncrementScanCount").Return(nil)

	response, err := service.ScanTransaction("txn_001")

	require.NoError(t, err)
	require.Equal(t, 2, response.AlertsCreated)
	assert.Equal(t, models.AlertTypeHighValueTransaction, response.Alerts[0].AlertType)
	assert.Equal(t, models.AlertTypeStructuringSuspected, response.Alerts[1].AlertType)

	mockTxRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockAlertRepo.AssertExpectations(t)
	mockRedis.AssertExpectations(t)
}

// Повторное сканирование не дедуплицируется: каждый запуск создает новый
// набор алертов с новыми идентификаторами.
func TestScanService_ScanTransaction_RescanDuplicatesAlerts(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	tx := scanTestTransaction("txn_001", "", 60000)
	mockTxRepo.On("GetTransactionByID", "txn_001").Return(tx, nil)

	var savedIDs []string
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Run(func(args mock.Arguments) {
		savedIDs = append(savedIDs, args.Get(0).(*models.Alert).AlertID)
	}).Return(nil)

	first, err := service.ScanTransaction("txn_001")
	require.NoError(t, err)
	second, err := service.ScanTransaction("txn_001")
	require.NoError(t, err)

	assert.Equal(t, 1, first.AlertsCreated)
	assert.Equal(t, 1, second.AlertsCreated)

	require.Len(t, savedIDs, 2)
	assert.NotEqual(t, savedIDs[0], savedIDs[1])

	mockAlertRepo.AssertNumberOfCalls(t, "SaveAlert", 2)
}

func TestScanService_ScanTransaction_SaveAlertError(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	tx := scanTestTransaction("txn_001", "", 60000)
	mockTxRepo.On("GetTransactionByID", "txn_001").Return(tx, nil)
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Return(errors.New("database error"))

	response, err := service.ScanTransaction("txn_001")

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "database error")
}

func TestScanService_ScanTransaction_WindowQueryError(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	tx := scanTestTransaction("txn_001", "user_001", 60000)
	mockTxRepo.On("GetTransactionByID", "txn_001").Return(tx, nil)
	mockTxRepo.On("ListByUserInWindow", "user_001",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "txn_001").
		Return(nil, errors.New("database error"))

	response, err := service.ScanTransaction("txn_001")

	assert.Error(t, err)
	assert.Nil(t, response)
	mockAlertRepo.AssertNotCalled(t, "SaveAlert")
}

func TestScanService_ScanTransaction_RedisFailuresDoNotBreakScan(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	mockRedis := new(redismocks.MockClientInterface)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), mockRedis, nil, 24)

	tx := scanTestTransaction("txn_001", "", 60000)
	mockTxRepo.On("GetTransactionByID", "txn_001").Return(tx, nil)
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Return(nil)
	mockRedis.On("IncrementAlertStats", models.SeverityHigh).Return(errors.New("redis error"))
	mockRedis.On("SaveScanResult", "txn_001", mock.AnythingOfType("*models.ScanResponse")).Return(errors.New("redis error"))
	mockRedis.On("IncrementScanCount").Return(errors.New("redis error"))

	response, err := service.ScanTransaction("txn_001")

	require.NoError(t, err)
	assert.Equal(t, 1, response.AlertsCreated)

	mockRedis.AssertExpectations(t)
}

func TestScanService_ScanRecentTransactions(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, mockProducer, 24)

	flagged := scanTestTransaction("txn_big", "", 60000)
	clean := scanTestTransaction("txn_small", "", 500)
	refs := []*models.TransactionRef{
		{TransactionID: "txn_big", CreatedAt: flagged.CreatedAt},
		{TransactionID: "txn_small", CreatedAt: clean.CreatedAt},
	}
	admin := &models.UserProfile{UserID: "user_admin", Role: models.RoleAdmin}

	mockTxRepo.On("ListTransactionRefsSince", mock.AnythingOfType("time.Time")).Return(refs, nil)
	mockTxRepo.On("GetTransactionByID", "txn_big").Return(flagged, nil)
	mockTxRepo.On("GetTransactionByID", "txn_small").Return(clean, nil)
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Return(nil)
	mockUserRepo.On("ListUsersByRole", models.RoleAdmin).Return([]*models.UserProfile{admin}, nil)

	var notification *models.NotificationEvent
	mockProducer.On("PublishNotification", mock.AnythingOfType("*models.NotificationEvent")).Run(func(args mock.Arguments) {
		notification = args.Get(0).(*models.NotificationEvent)
	}).Return(nil)

	summary, err := service.ScanRecentTransactions(6)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.ScannedCount)
	assert.Equal(t, 1, summary.AlertCount)
	assert.Equal(t, 0, summary.FailedCount)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "txn_big", summary.Results[0].TransactionID)
	assert.Equal(t, []string{models.AlertTypeHighValueTransaction}, summary.Results[0].AlertTypes)
	assert.False(t, summary.CompletedAt.IsZero())

	require.NotNil(t, notification)
	assert.Equal(t, "user_admin", notification.Notification.UserID)
	assert.Equal(t, "aml_batch_scan", notification.Notification.Kind)
	assert.Contains(t, notification.Notification.Body, "1 alerts created across 2 scanned transactions")
	assert.Equal(t, "1", notification.Notification.Data["alert_count"])

	mockProducer.AssertExpectations(t)
}

func TestScanService_ScanRecentTransactions_PartialFailure(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, mockProducer, 24)

	clean := scanTestTransaction("txn_ok", "", 500)
	refs := []*models.TransactionRef{
		{TransactionID: "txn_gone", CreatedAt: time.Now()},
		{TransactionID: "txn_ok", CreatedAt: clean.CreatedAt},
	}

	// Первая транзакция исчезла из реестра, проход продолжается
	mockTxRepo.On("ListTransactionRefsSince", mock.AnythingOfType("time.Time")).Return(refs, nil)
	mockTxRepo.On("GetTransactionByID", "txn_gone").Return(nil, nil)
	mockTxRepo.On("GetTransactionByID", "txn_ok").Return(clean, nil)

	summary, err := service.ScanRecentTransactions(6)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ScannedCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.Equal(t, 0, summary.AlertCount)

	mockProducer.AssertNotCalled(t, "PublishNotification")
	mockUserRepo.AssertNotCalled(t, "ListUsersByRole")
}

func TestScanService_ScanRecentTransactions_NoAlertsNoNotification(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, mockProducer, 24)

	clean := scanTestTransaction("txn_small", "", 500)
	refs := []*models.TransactionRef{
		{TransactionID: "txn_small", CreatedAt: clean.CreatedAt},
	}

	mockTxRepo.On("ListTransactionRefsSince", mock.AnythingOfType("time.Time")).Return(refs, nil)
	mockTxRepo.On("GetTransactionByID", "txn_small").Return(clean, nil)

	summary, err := service.ScanRecentTransactions(6)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ScannedCount)
	assert.Equal(t, 0, summary.AlertCount)
	assert.Empty(t, summary.Results)

	mockProducer.AssertNotCalled(t, "PublishNotification")
}

func TestScanService_ScanRecentTransactions_NotificationFailureIgnored(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, mockProducer, 24)

	flagged := scanTestTransaction("txn_big", "", 60000)
	refs := []*models.TransactionRef{
		{TransactionID: "txn_big", CreatedAt: flagged.CreatedAt},
	}
	admin := &models.UserProfile{UserID: "user_admin", Role: models.RoleAdmin}

	mockTxRepo.On("ListTransactionRefsSince", mock.AnythingOfType("time.Time")).Return(refs, nil)
	mockTxRepo.On("GetTransactionByID", "txn_big").Return(flagged, nil)
	mockAlertRepo.On("SaveAlert", mock.AnythingOfType("*models.Alert")).Return(nil)
	mockUserRepo.On("ListUsersByRole", models.RoleAdmin).Return([]*models.UserProfile{admin}, nil)
	mockProducer.On("PublishNotification", mock.AnythingOfType("*models.NotificationEvent")).Return(errors.New("kafka error"))

	summary, err := service.ScanRecentTransactions(6)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.AlertCount)

	mockProducer.AssertExpectations(t)
}

func TestScanService_ScanRecentTransactions_ListError(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	mockTxRepo.On("ListTransactionRefsSince", mock.AnythingOfType("time.Time")).Return(nil, errors.New("database error"))

	summary, err := service.ScanRecentTransactions(6)

	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestScanService_ScanRecentTransactions_DefaultLookback(t *testing.T) {
	mockTxRepo := new(storagemocks.MockTransactionRepository)
	mockUserRepo := new(storagemocks.MockUserRepository)
	mockAlertRepo := new(storagemocks.MockAlertRepository)
	service := NewScanService(mockTxRepo, mockUserRepo, mockAlertRepo, scanTestEngine(), nil, nil, 24)

	var since time.Time
	mockTxRepo.On("ListTransactionRefsSince", mock.AnythingOfType("time.Time")).Run(func(args mock.Arguments) {
		since = args.Get(0).(time.Time)
	}).Return([]*models.TransactionRef{}, nil)

	summary, err := service.ScanRecentTransactions(0)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.ScannedCount)
	assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), since, 5*time.Second)
}
