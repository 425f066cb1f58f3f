package services

import (
	"time"

	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/scoring"
	"invest-aml-engine/internal/storage"
)

// RiskServiceImpl реализует интерфейс RiskService
type RiskServiceImpl struct {
	userRepo  storage.UserRepository
	txRepo    storage.TransactionRepository
	alertRepo storage.AlertRepository
	scorer    *scoring.Scorer
}

// NewRiskService создает новый сервис риск-скоринга
func NewRiskService(
	userRepo storage.UserRepository,
	txRepo storage.TransactionRepository,
	alertRepo storage.AlertRepository,
	scorer *scoring.Scorer,
) RiskService {
	return &RiskServiceImpl{
		userRepo:  userRepo,
		txRepo:    txRepo,
		alertRepo: alertRepo,
		scorer:    scorer,
	}
}

// GetUserRiskReport вычисляет риск-отчет пользователя из текущего состояния.
// Отчет нигде не сохраняется и не имеет собственной идентичности.
func (s *RiskServiceImpl) GetUserRiskReport(userID string) (*models.RiskReport, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	totalVolume, err := s.txRepo.SumAmountByUser(userID)
	if err != nil {
		return nil, err
	}

	alertStats, err := s.alertRepo.GetUserAlertStats(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	score, factors := s.scorer.Score(user, totalVolume, alertStats, now)

	return &models.RiskReport{
		UserID:      userID,
		RiskScore:   score,
		RiskLevel:   scoring.RiskLevelForScore(score),
		Factors:     factors,
		GeneratedAt: now,
	}, nil
}
