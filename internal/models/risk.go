package models

import (
	"time"
)

// Уровни риска пользователя по диапазонам итогового балла
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// RiskFactor представляет вклад одного фактора в итоговый балл
type RiskFactor struct {
	Factor      string `json:"factor"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// RiskReport представляет риск-отчет по пользователю.
// Отчет вычисляется по запросу и нигде не сохраняется.
type RiskReport struct {
	UserID      string       `json:"user_id"`
	RiskScore   int          `json:"risk_score"`
	RiskLevel   string       `json:"risk_level"`
	Factors     []RiskFactor `json:"factors"`
	GeneratedAt time.Time    `json:"generated_at"`
}
