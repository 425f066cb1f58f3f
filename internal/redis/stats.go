package redis

import (
	"context"
	"fmt"
	"strings"

	"invest-aml-engine/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

// IncrementScanCount увеличивает счетчик выполненных сканирований
func (c *Client) IncrementScanCount() error {
	ctx := context.Background()
	return c.rdb.Incr(ctx, "aml_stats:scans_total").Err()
}

// IncrementAlertStats увеличивает счетчики созданных алертов по серьезности
func (c *Client) IncrementAlertStats(severity string) error {
	ctx := context.Background()
	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, "aml_stats:alerts_total")
	pipe.Incr(ctx, fmt.Sprintf("aml_stats:alerts:severity:%s", severity))
	_, err := pipe.Exec(ctx)
	return err
}

// GetScanStats возвращает накопленные счетчики сканирований и алертов
func (c *Client) GetScanStats() (map[string]int64, error) {
	ctx := context.Background()

	keys := map[string]string{
		"scans_total":  "aml_stats:scans_total",
		"alerts_total": "aml_stats:alerts_total",
	}
	for _, severity := range models.AllSeverities {
		field := "alerts_" + strings.ToLower(severity)
		keys[field] = fmt.Sprintf("aml_stats:alerts:severity:%s", severity)
	}

	stats := make(map[string]int64, len(keys))
	for field, key := range keys {
		count, err := c.rdb.Get(ctx, key).Int64()
		if err == redisv9.Nil {
			stats[field] = 0
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get stat %s: %w", key, err)
		}
		stats[field] = count
	}

	return stats, nil
}
