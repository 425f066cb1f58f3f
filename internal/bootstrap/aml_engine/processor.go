package aml_engine

import (
	"errors"
	"log"

	"invest-aml-engine/internal/logger"
	"invest-aml-engine/internal/models"
	"invest-aml-engine/internal/services"
)

// processTransactionEvent сканирует транзакцию из Kafka события
func processTransactionEvent(event *models.TransactionEvent, scanService services.ScanService) error {
	log.Printf("Processing transaction event: %s", event.Transaction.TransactionID)

	logger.LogEvent(logger.EventKafkaReceived, "aml-engine-service", "kafka", map[string]interface{}{
		"transaction_id": event.Transaction.TransactionID,
		"event_id":       event.EventID,
		"topic":          "aml.transactions.completed",
	})

	result, err := scanService.ScanTransaction(event.Transaction.TransactionID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			// Событие могло обогнать запись в реестр даже после retry в хранилище.
			// Не возвращаем ошибку, чтобы не блокировать обработку других транзакций.
			log.Printf("Transaction not found, skipping scan: %s", event.Transaction.TransactionID)
			return nil
		}
		log.Printf("Error scanning transaction %s: %v", event.Transaction.TransactionID, err)
		return err
	}

	log.Printf("Transaction %s scanned: alerts_created=%d", event.Transaction.TransactionID, result.AlertsCreated)
	return nil
}
