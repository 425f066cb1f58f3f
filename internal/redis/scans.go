package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"invest-aml-engine/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

// Результаты сканирования живут в кеше сутки, потом источником
// правды остается только SQLite.
const scanResultTTL = 24 * time.Hour

// SaveScanResult сохраняет результат сканирования транзакции в Redis
func (c *Client) SaveScanResult(transactionID string, result *models.ScanResponse) error {
	ctx := context.Background()
	key := fmt.Sprintf("transaction:%s:scan_result", transactionID)

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal scan result: %w", err)
	}

	return c.rdb.Set(ctx, key, data, scanResultTTL).Err()
}

// GetScanResult получает результат сканирования из Redis
func (c *Client) GetScanResult(transactionID string) (*models.ScanResponse, error) {
	ctx := context.Background()
	key := fmt.Sprintf("transaction:%s:scan_result", transactionID)

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan result: %w", err)
	}

	var result models.ScanResponse
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scan result: %w", err)
	}

	return &result, nil
}
