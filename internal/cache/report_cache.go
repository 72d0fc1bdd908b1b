package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"formlab/internal/model"
)

// ReportCache handles Redis caching of aggregate form reports
type ReportCache interface {
	Set(ctx context.Context, report *model.FormReport) error
	Get(ctx context.Context, formID string) (*model.FormReport, error)
	Invalidate(ctx context.Context, formID string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *reportCache) key(formID string) string {
	return fmt.Sprintf("report:%s", formID)
}

func (c *reportCache) Set(ctx context.Context, report *model.FormReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(report.FormID), data, c.ttl).Err()
}

func (c *reportCache) Get(ctx context.Context, formID string) (*model.FormReport, error) {
	data, err := c.client.Get(ctx, c.key(formID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.FormReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) Invalidate(ctx context.Context, formID string) error {
	return c.client.Del(ctx, c.key(formID)).Err()
}
