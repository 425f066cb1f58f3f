package rules

import (
	"fmt"
	"time"

	"invest-aml-engine/internal/config"
	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Engine прогоняет транзакции через фиксированный набор AML-правил.
// Пороги задаются конфигурацией при создании, что позволяет настраивать
// их per-deployment и детерминированно тестировать.
type Engine struct {
	cfg config.RulesConfig
}

func NewEngine(cfg config.RulesConfig) *Engine {
	return &Engine{cfg: cfg}
}

// EvaluationContext содержит историю пользователя, собранную оркестратором
// сканирования. Для транзакций без пользователя все поля остаются пустыми.
type EvaluationContext struct {
	// WindowTransactions - транзакции пользователя в окне дробления,
	// без самой сканируемой транзакции
	WindowTransactions []*models.Transaction

	// CompletedDeposits - завершенные депозиты пользователя в окне вывода
	CompletedDeposits []*models.Transaction

	// UserCreatedAt - время создания аккаунта, nil если пользователь неизвестен
	UserCreatedAt *time.Time
}

// Evaluate прогоняет транзакцию через все правила и возвращает черновики
// алертов в порядке правил. Чистая функция: идентификаторы, статус и время
// сканирования проставляет оркестратор. Правила не подавляют друг друга,
// одна транзакция может дать до четырех алертов.
func (e *Engine) Evaluate(tx *models.Transaction, evalCtx *EvaluationContext) []*models.Alert {
	var alerts []*models.Alert

	// 1. Крупная транзакция
	if alert := e.checkHighValue(tx); alert != nil {
		alerts = append(alerts, alert)
	}

	// Правила 2-4 описывают поведение пользователя, для транзакций
	// без пользователя они не применяются
	if tx.UserID == "" {
		return alerts
	}

	// 2. Дробление сумм
	if alert := e.checkStructuring(tx, evalCtx.WindowTransactions); alert != nil {
		alerts = append(alerts, alert)
	}

	// 3. Быстрый вывод после депозитов
	if alert := e.checkRapidMovement(tx, evalCtx.CompletedDeposits); alert != nil {
		alerts = append(alerts, alert)
	}

	// 4. Крупная сумма от нового пользователя
	if alert := e.checkNewUser(tx, evalCtx.UserCreatedAt); alert != nil {
		alerts = append(alerts, alert)
	}

	return alerts
}

// StructuringWindowStart возвращает начало окна дробления для транзакции.
// Окно отсчитывается от времени самой транзакции, а не от текущего момента,
// поэтому пакетное сканирование исторических данных дает тот же результат.
func (e *Engine) StructuringWindowStart(tx *models.Transaction) time.Time {
	return tx.CreatedAt.Add(-time.Duration(e.cfg.StructuringWindowHours) * time.Hour)
}

// DepositWindowStart возвращает начало окна депозитов для транзакции
func (e *Engine) DepositWindowStart(tx *models.Transaction) time.Time {
	return tx.CreatedAt.Add(-time.Duration(e.cfg.RapidMovementWindowHours) * time.Hour)
}

func (e *Engine) checkHighValue(tx *models.Transaction) *models.Alert {
	if !tx.Amount.GreaterThan(e.cfg.HighAmountThreshold) {
		return nil
	}

	description := fmt.Sprintf("Transaction amount %s exceeds high value threshold %s",
		tx.Amount, e.cfg.HighAmountThreshold)
	return draftAlert(tx, models.AlertTypeHighValueTransaction, models.SeverityHigh, description)
}

func (e *Engine) checkStructuring(tx *models.Transaction, window []*models.Transaction) *models.Alert {
	total := tx.Amount
	for _, wt := range window {
		total = total.Add(wt.Amount)
	}

	if !total.GreaterThan(e.cfg.StructuringThreshold) {
		return nil
	}

	description := fmt.Sprintf("Combined amount %s across %d transactions within %dh exceeds structuring threshold %s",
		total, len(window)+1, e.cfg.StructuringWindowHours, e.cfg.StructuringThreshold)
	return draftAlert(tx, models.AlertTypeStructuringSuspected, models.SeverityMedium, description)
}

func (e *Engine) checkRapidMovement(tx *models.Transaction, deposits []*models.Transaction) *models.Alert {
	if tx.Type != models.TransactionTypeWithdrawal {
		return nil
	}

	depositTotal := decimal.Zero
	for _, d := range deposits {
		depositTotal = depositTotal.Add(d.Amount)
	}
	if !depositTotal.IsPositive() {
		return nil
	}

	required := depositTotal.Mul(e.cfg.RapidWithdrawalRatio)
	if !tx.Amount.GreaterThanOrEqual(required) {
		return nil
	}

	description := fmt.Sprintf("Withdrawal of %s follows deposits totaling %s within %dh, potential layering",
		tx.Amount, depositTotal, e.cfg.RapidMovementWindowHours)
	return draftAlert(tx, models.AlertTypeRapidDepositWithdrawal, models.SeverityMedium, description)
}

func (e *Engine) checkNewUser(tx *models.Transaction, userCreatedAt *time.Time) *models.Alert {
	if userCreatedAt == nil {
		return nil
	}
	if !tx.Amount.GreaterThan(e.cfg.NewUserThreshold) {
		return nil
	}

	// Возраст аккаунта считается на момент транзакции
	accountAgeDays := int(tx.CreatedAt.Sub(*userCreatedAt).Hours() / 24)
	if accountAgeDays >= e.cfg.NewUserMaxAgeDays {
		return nil
	}

	description := fmt.Sprintf("Transaction of %s from account aged %d days",
		tx.Amount, accountAgeDays)
	return draftAlert(tx, models.AlertTypeNewUserHighValue, models.SeverityLow, description)
}

func draftAlert(tx *models.Transaction, alertType, severity, description string) *models.Alert {
	return &models.Alert{
		TransactionID: tx.TransactionID,
		UserID:        tx.UserID,
		AlertType:     alertType,
		Severity:      severity,
		Description:   description,
		Amount:        tx.Amount,
	}
}
