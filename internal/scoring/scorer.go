package scoring

import (
	"fmt"
	"time"

	"invest-aml-engine/internal/config"
	"invest-aml-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Веса факторов: KYC до 25, объем до 30, история алертов до 30,
// возраст аккаунта до 15. Сумма ограничивается диапазоном [1, 100].
const (
	minRiskScore = 1
	maxRiskScore = 100
)

// Scorer вычисляет композитный риск-балл пользователя из четырех
// независимых факторов. Побочных эффектов нет: скоринг читает
// переданный снимок состояния и ничего не записывает.
type Scorer struct {
	cfg config.ScoringConfig
}

func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score суммирует вклады факторов и возвращает балл с упорядоченным
// списком факторов для отображения в отчете
func (s *Scorer) Score(user *models.UserProfile, totalVolume decimal.Decimal, alertStats *models.UserAlertStats, now time.Time) (int, []models.RiskFactor) {
	factors := []models.RiskFactor{
		s.kycFactor(user),
		s.volumeFactor(totalVolume),
		s.alertHistoryFactor(alertStats),
		s.accountAgeFactor(user.CreatedAt, now),
	}

	score := 0
	for _, f := range factors {
		score += f.Points
	}

	if score < minRiskScore {
		score = minRiskScore
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}

	return score, factors
}

// RiskLevelForScore возвращает уровень риска по диапазону балла
func RiskLevelForScore(score int) string {
	if score <= 30 {
		return models.RiskLevelLow
	}
	if score <= 60 {
		return models.RiskLevelMedium
	}
	return models.RiskLevelHigh
}

func (s *Scorer) kycFactor(user *models.UserProfile) models.RiskFactor {
	points := 25
	if user.KYCStatus == models.KYCStatusApproved {
		switch {
		case user.KYCLevel >= 3:
			points = 5
		case user.KYCLevel >= 2:
			points = 10
		default:
			points = 15
		}
	}

	return models.RiskFactor{
		Factor:      "kyc_status",
		Points:      points,
		Description: fmt.Sprintf("KYC status %s, level %d", user.KYCStatus, user.KYCLevel),
	}
}

func (s *Scorer) volumeFactor(totalVolume decimal.Decimal) models.RiskFactor {
	points := 5
	switch {
	case totalVolume.GreaterThan(s.cfg.HighVolumeThreshold):
		points = 30
	case totalVolume.GreaterThan(s.cfg.MediumVolumeThreshold):
		points = 20
	case totalVolume.GreaterThan(s.cfg.LowVolumeThreshold):
		points = 10
	}

	return models.RiskFactor{
		Factor:      "transaction_volume",
		Points:      points,
		Description: fmt.Sprintf("Total transaction volume %s", totalVolume),
	}
}

func (s *Scorer) alertHistoryFactor(alertStats *models.UserAlertStats) models.RiskFactor {
	points := 0
	description := "No alerts recorded"

	switch {
	case alertStats.HasSevereAlert:
		points = 30
		description = fmt.Sprintf("%d alerts recorded, including HIGH severity or escalated", alertStats.TotalAlerts)
	case alertStats.TotalAlerts > 5:
		points = 20
		description = fmt.Sprintf("%d alerts recorded", alertStats.TotalAlerts)
	case alertStats.TotalAlerts > 0:
		points = 10
		description = fmt.Sprintf("%d alerts recorded", alertStats.TotalAlerts)
	}

	return models.RiskFactor{
		Factor:      "alert_history",
		Points:      points,
		Description: description,
	}
}

func (s *Scorer) accountAgeFactor(createdAt, now time.Time) models.RiskFactor {
	ageDays := int(now.Sub(createdAt).Hours() / 24)

	points := 0
	switch {
	case ageDays < s.cfg.NewAccountAgeDays:
		points = 15
	case ageDays < s.cfg.YoungAccountAgeDays:
		points = 10
	case ageDays < s.cfg.MatureAccountAgeDays:
		points = 5
	}

	return models.RiskFactor{
		Factor:      "account_age",
		Points:      points,
		Description: fmt.Sprintf("Account age %d days", ageDays),
	}
}
