package generator

import (
	"fmt"
	"math/rand"
	"time"

	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Демонстрационные сценарии генератора
const (
	ScenarioClean         = "clean"
	ScenarioHighValue     = "high_value"
	ScenarioStructuring   = "structuring"
	ScenarioRapidMovement = "rapid_movement"
	ScenarioNewUser       = "new_user"
)

// ScenarioBatch содержит данные одного демонстрационного сценария:
// профиль пользователя и набор транзакций для отправки в реестр
type ScenarioBatch struct {
	Scenario     string                             `json:"scenario"`
	User         *models.RegisterUserRequest        `json:"user"`
	Transactions []*models.SubmitTransactionRequest `json:"transactions"`
}

type TransactionGenerator struct {
	rand *rand.Rand
}

func NewTransactionGenerator() *TransactionGenerator {
	return &TransactionGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateScenario генерирует пакет транзакций для демонстрационного сценария.
// Суммы и временные отступы подобраны под пороги правил по умолчанию,
// так что каждый сценарий задевает свое правило и не задевает остальные.
func (g *TransactionGenerator) GenerateScenario(scenario string) *ScenarioBatch {
	userID := g.newUserID()
	batch := &ScenarioBatch{
		Scenario: scenario,
		User: &models.RegisterUserRequest{
			UserID:    userID,
			Email:     fmt.Sprintf("%s@example.com", userID),
			Role:      models.RoleInvestor,
			KYCStatus: models.KYCStatusApproved,
			KYCLevel:  2,
		},
	}

	switch scenario {
	case ScenarioHighValue:
		g.generateHighValue(batch)
	case ScenarioStructuring:
		g.generateStructuring(batch)
	case ScenarioRapidMovement:
		g.generateRapidMovement(batch)
	case ScenarioNewUser:
		g.generateNewUser(batch)
	case ScenarioClean:
		g.generateClean(batch)
	default:
		batch.Scenario = ScenarioClean
		g.generateClean(batch)
	}

	return batch
}

// GenerateRandomTransaction генерирует одну случайную транзакцию
func (g *TransactionGenerator) GenerateRandomTransaction() *models.SubmitTransactionRequest {
	types := []string{
		models.TransactionTypeDeposit,
		models.TransactionTypeWithdrawal,
		models.TransactionTypeInvestment,
		models.TransactionTypeDividend,
	}

	return g.newRequest(
		g.newUserID(),
		types[g.rand.Intn(len(types))],
		g.randomAmount(100.0, 100000.0),
		time.Now().UTC(),
	)
}

// generateClean генерирует обычную активность ниже всех порогов
func (g *TransactionGenerator) generateClean(batch *ScenarioBatch) {
	batch.User.KYCLevel = 3
	now := time.Now().UTC()

	batch.Transactions = []*models.SubmitTransactionRequest{
		g.newRequest(batch.User.UserID, models.TransactionTypeDeposit, g.randomAmount(100.0, 5000.0), now.Add(-30*time.Minute)),
		g.newRequest(batch.User.UserID, models.TransactionTypeInvestment, g.randomAmount(100.0, 5000.0), now),
	}
}

// generateHighValue генерирует одну крупную транзакцию выше порога 50k
func (g *TransactionGenerator) generateHighValue(batch *ScenarioBatch) {
	batch.User.KYCLevel = 1
	now := time.Now().UTC()

	batch.Transactions = []*models.SubmitTransactionRequest{
		g.newRequest(batch.User.UserID, models.TransactionTypeDeposit, g.randomAmount(60000.0, 150000.0), now),
	}
}

// generateStructuring генерирует серию небольших переводов в пределах часа.
// Каждый перевод ниже порога нового пользователя, суммарно они превышают 20k.
func (g *TransactionGenerator) generateStructuring(batch *ScenarioBatch) {
	now := time.Now().UTC()
	offsets := []time.Duration{-50 * time.Minute, -25 * time.Minute, 0}

	for _, offset := range offsets {
		batch.Transactions = append(batch.Transactions,
			g.newRequest(batch.User.UserID, models.TransactionTypeDeposit, g.randomAmount(7000.0, 9500.0), now.Add(offset)))
	}
}

// generateRapidMovement генерирует два депозита и вывод на 85% их суммы.
// Депозиты отстоят дальше часа от вывода, чтобы не задеть порог дробления.
func (g *TransactionGenerator) generateRapidMovement(batch *ScenarioBatch) {
	now := time.Now().UTC()
	first := g.randomAmount(3500.0, 4500.0)
	second := g.randomAmount(3500.0, 4500.0)
	withdrawal := first.Add(second).Mul(decimal.NewFromFloat(0.85)).Round(2)

	batch.Transactions = []*models.SubmitTransactionRequest{
		g.newRequest(batch.User.UserID, models.TransactionTypeDeposit, first, now.Add(-100*time.Minute)),
		g.newRequest(batch.User.UserID, models.TransactionTypeDeposit, second, now.Add(-70*time.Minute)),
		g.newRequest(batch.User.UserID, models.TransactionTypeWithdrawal, withdrawal, now),
	}
}

// generateNewUser генерирует транзакцию выше 10k от свежезарегистрированного
// пользователя. Сумма остается ниже порога дробления.
func (g *TransactionGenerator) generateNewUser(batch *ScenarioBatch) {
	batch.User.KYCStatus = models.KYCStatusPending
	batch.User.KYCLevel = 0
	now := time.Now().UTC()

	batch.Transactions = []*models.SubmitTransactionRequest{
		g.newRequest(batch.User.UserID, models.TransactionTypeDeposit, g.randomAmount(12000.0, 18000.0), now),
	}
}

func (g *TransactionGenerator) newRequest(userID, txType string, amount decimal.Decimal, createdAt time.Time) *models.SubmitTransactionRequest {
	return &models.SubmitTransactionRequest{
		TransactionID: g.newTransactionID(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		Status:        models.TransactionStatusCompleted,
		CreatedAt:     createdAt,
	}
}

// newTransactionID генерирует уникальный ID на основе времени и случайного числа
func (g *TransactionGenerator) newTransactionID() string {
	baseID := time.Now().UnixNano() + g.rand.Int63n(1000000000)
	return fmt.Sprintf("txn_gen_%d", baseID)
}

func (g *TransactionGenerator) newUserID() string {
	return fmt.Sprintf("user_gen_%d", 100000+g.rand.Intn(900000))
}

// randomAmount генерирует сумму в диапазоне с округлением до 2 знаков
func (g *TransactionGenerator) randomAmount(min, max float64) decimal.Decimal {
	value := min + g.rand.Float64()*(max-min)
	return decimal.NewFromFloat(value).Round(2)
}
