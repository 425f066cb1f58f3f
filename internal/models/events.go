package models

import (
	"time"
)

// Типы событий в Kafka
const (
	EventTypeTransactionCompleted = "transaction.completed"
	EventTypeNotificationRequest  = "notification.requested"
)

// TransactionEvent представляет событие завершенной транзакции в Kafka.
// Его публикует сервис приема, а движок AML потребляет как триггер сканирования.
type TransactionEvent struct {
	EventID     string      `json:"event_id"`
	EventType   string      `json:"event_type"`
	Timestamp   time.Time   `json:"timestamp"`
	Transaction Transaction `json:"transaction"`
}

// Notification представляет уведомление для пользователя платформы
type Notification struct {
	UserID string            `json:"user_id"`
	Kind   string            `json:"kind"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}

// NotificationEvent представляет запрос на доставку уведомления в Kafka.
// Доставкой занимается внешний сервис; движок публикует по принципу best effort.
type NotificationEvent struct {
	EventID      string       `json:"event_id"`
	EventType    string       `json:"event_type"`
	Timestamp    time.Time    `json:"timestamp"`
	Notification Notification `json:"notification"`
}
