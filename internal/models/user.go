package models

import (
	"time"
)

// Роли пользователей платформы
const (
	RoleInvestor   = "investor"
	RoleAdmin      = "admin"
	RoleCompliance = "compliance"
)

// Статусы KYC-проверки
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// UserProfile представляет снимок профиля пользователя из каталога платформы.
// Движок читает профиль, но никогда его не изменяет.
type UserProfile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	KYCStatus string    `json:"kyc_status"`
	KYCLevel  int       `json:"kyc_level"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterUserRequest представляет запрос на регистрацию профиля в каталоге
type RegisterUserRequest struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"omitempty,oneof=investor admin compliance"`
	KYCStatus string `json:"kyc_status" binding:"omitempty,oneof=pending approved rejected"`
	KYCLevel  int    `json:"kyc_level" binding:"gte=0"`
}
