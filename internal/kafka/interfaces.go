package kafka

import (
	"context"

	"invest-aml-engine/internal/models"
)

// Producer определяет интерфейс для отправки сообщений в Kafka
type Producer interface {
	// PublishTransactionEvent публикует событие завершенной транзакции
	PublishTransactionEvent(event *models.TransactionEvent) error

	// PublishNotification публикует запрос на уведомление
	PublishNotification(event *models.NotificationEvent) error

	Close() error
}

// Consumer определяет интерфейс для чтения событий транзакций из Kafka
type Consumer interface {
	// Start блокирует до отмены контекста, вызывая handler на каждое событие
	Start(ctx context.Context) error

	Close() error
}

var _ Producer = (*ProducerImpl)(nil)
var _ Consumer = (*ConsumerImpl)(nil)
