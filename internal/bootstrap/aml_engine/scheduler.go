package aml_engine

import (
	"context"
	"log"
	"time"

	"invest-aml-engine/internal/services"
)

// runScheduledScans запускает пакетные сканирования по таймеру.
// Нулевой hoursBack означает окно просмотра по умолчанию из конфигурации.
func runScheduledScans(ctx context.Context, scanService services.ScanService, intervalMinutes int) {
	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
	defer ticker.Stop()

	log.Printf("Scheduled batch scans enabled, interval %d minutes", intervalMinutes)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			summary, err := scanService.ScanRecentTransactions(0)
			if err != nil {
				log.Printf("Scheduled batch scan failed: %v", err)
				continue
			}
			log.Printf("Scheduled batch scan completed: scanned=%d, alerts=%d",
				summary.ScannedCount, summary.AlertCount)
		}
	}
}
