package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"invest-aml-engine/internal/config"
	"invest-aml-engine/internal/models"

	"github.com/IBM/sarama"
)

type ProducerImpl struct {
	producer           sarama.SyncProducer
	transactionsTopic  string
	notificationsTopic string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka producer created successfully")
	return &ProducerImpl{
		producer:           producer,
		transactionsTopic:  cfg.Kafka.TransactionsTopic,
		notificationsTopic: cfg.Kafka.NotificationsTopic,
	}, nil
}

// PublishTransactionEvent публикует событие завершенной транзакции
func (p *ProducerImpl) PublishTransactionEvent(event *models.TransactionEvent) error {
	return p.sendJSON(p.transactionsTopic, event)
}

// PublishNotification публикует запрос на уведомление
func (p *ProducerImpl) PublishNotification(event *models.NotificationEvent) error {
	return p.sendJSON(p.notificationsTopic, event)
}

func (p *ProducerImpl) sendJSON(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Value:     sarama.StringEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Printf("Message sent to topic %s, partition %d, offset %d", topic, partition, offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
