package generator

import (
	"testing"
	"time"

	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionGenerator(t *testing.T) {
	gen := NewTransactionGenerator()
	require.NotNil(t, gen)
	assert.NotNil(t, gen.rand)
}

func TestTransactionGenerator_GenerateScenario_Clean(t *testing.T) {
	gen := NewTransactionGenerator()

	batch := gen.GenerateScenario(ScenarioClean)
	require.NotNil(t, batch)
	assert.Equal(t, ScenarioClean, batch.Scenario)

	// Проверяем профиль пользователя
	require.NotNil(t, batch.User)
	assert.Contains(t, batch.User.UserID, "user_gen_")
	assert.NotEmpty(t, batch.User.Email)
	assert.Equal(t, models.RoleInvestor, batch.User.Role)
	assert.Equal(t, models.KYCStatusApproved, batch.User.KYCStatus)

	// Все суммы ниже порога нового пользователя
	require.Len(t, batch.Transactions, 2)
	for _, tx := range batch.Transactions {
		assert.Equal(t, batch.User.UserID, tx.UserID)
		assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
		assert.True(t, tx.Amount.LessThan(decimal.NewFromInt(10000)),
			"Clean scenario amount %s should stay below 10000", tx.Amount)
	}
}

func TestTransactionGenerator_GenerateScenario_HighValue(t *testing.T) {
	gen := NewTransactionGenerator()

	batch := gen.GenerateScenario(ScenarioHighValue)
	require.NotNil(t, batch)

	require.Len(t, batch.Transactions, 1)
	tx := batch.Transactions[0]
	assert.True(t, tx.Amount.GreaterThan(decimal.NewFromInt(50000)),
		"High value scenario amount %s should exceed 50000", tx.Amount)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
}

func TestTransactionGenerator_GenerateScenario_Structuring(t *testing.T) {
	gen := NewTransactionGenerator()

	batch := gen.GenerateScenario(ScenarioStructuring)
	require.NotNil(t, batch)
	require.Len(t, batch.Transactions, 3)

	windowStart := time.Now().UTC().Add(-time.Hour)
	total := decimal.Zero
	for _, tx := range batch.Transactions {
		// Каждый перевод небольшой и попадает в часовое окно
		assert.True(t, tx.Amount.LessThan(decimal.NewFromInt(10000)),
			"Structuring transaction %s should stay below 10000", tx.Amount)
		assert.True(t, tx.CreatedAt.After(windowStart))
		assert.Equal(t, batch.User.UserID, tx.UserID)
		total = total.Add(tx.Amount)
	}

	// Суммарно серия превышает порог дробления
	assert.True(t, total.GreaterThan(decimal.NewFromInt(20000)),
		"Structuring total %s should exceed 20000", total)
}

func TestTransactionGenerator_GenerateScenario_RapidMovement(t *testing.T) {
	gen := NewTransactionGenerator()

	batch := gen.GenerateScenario(ScenarioRapidMovement)
	require.NotNil(t, batch)
	require.Len(t, batch.Transactions, 3)

	depositTotal := decimal.Zero
	for _, tx := range batch.Transactions[:2] {
		assert.Equal(t, models.TransactionTypeDeposit, tx.Type)
		assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
		depositTotal = depositTotal.Add(tx.Amount)
	}

	withdrawal := batch.Transactions[2]
	assert.Equal(t, models.TransactionTypeWithdrawal, withdrawal.Type)

	// Вывод покрывает не меньше 80% суммы депозитов
	required := depositTotal.Mul(decimal.NewFromFloat(0.8))
	assert.True(t, withdrawal.Amount.GreaterThanOrEqual(required),
		"Withdrawal %s should cover at least 80%% of deposits %s", withdrawal.Amount, depositTotal)

	// Депозиты старше вывода
	for _, tx := range batch.Transactions[:2] {
		assert.True(t, tx.CreatedAt.Before(withdrawal.CreatedAt))
	}
}

func TestTransactionGenerator_GenerateScenario_NewUser(t *testing.T) {
	gen := NewTransactionGenerator()

	batch := gen.GenerateScenario(ScenarioNewUser)
	require.NotNil(t, batch)

	assert.Equal(t, models.KYCStatusPending, batch.User.KYCStatus)
	assert.Equal(t, 0, batch.User.KYCLevel)

	require.Len(t, batch.Transactions, 1)
	tx := batch.Transactions[0]
	assert.True(t, tx.Amount.GreaterThan(decimal.NewFromInt(10000)),
		"New user scenario amount %s should exceed 10000", tx.Amount)
	assert.True(t, tx.Amount.LessThan(decimal.NewFromInt(20000)),
		"New user scenario amount %s should stay below 20000", tx.Amount)
}

func TestTransactionGenerator_GenerateScenario_UnknownFallsBackToClean(t *testing.T) {
	gen := NewTransactionGenerator()

	batch := gen.GenerateScenario("invalid")
	require.NotNil(t, batch)

	assert.Equal(t, ScenarioClean, batch.Scenario)
	require.Len(t, batch.Transactions, 2)
}

func TestTransactionGenerator_GenerateScenario_UniqueIDs(t *testing.T) {
	gen := NewTransactionGenerator()

	ids := make(map[string]bool)
	for i := 0; i < 10; i++ {
		batch := gen.GenerateScenario(ScenarioStructuring)
		for _, tx := range batch.Transactions {
			assert.False(t, ids[tx.TransactionID], "Transaction ID should be unique")
			ids[tx.TransactionID] = true
		}
	}
}

func TestTransactionGenerator_GenerateRandomTransaction(t *testing.T) {
	gen := NewTransactionGenerator()

	tx := gen.GenerateRandomTransaction()
	require.NotNil(t, tx)

	assert.Contains(t, tx.TransactionID, "txn_gen_")
	assert.Contains(t, tx.UserID, "user_gen_")
	assert.NotEmpty(t, tx.Type)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)

	assert.True(t, tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(100)))
	assert.True(t, tx.Amount.LessThanOrEqual(decimal.NewFromInt(100000)))
}

func TestTransactionGenerator_GenerateRandomTransaction_TypeVariety(t *testing.T) {
	gen := NewTransactionGenerator()

	types := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tx := gen.GenerateRandomTransaction()
		types[tx.Type] = true
	}

	assert.Greater(t, len(types), 1, "Should generate different transaction types")
}
