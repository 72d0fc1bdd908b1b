package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"formlab/internal/model"
)

// DraftCache handles Redis operations for draft authoring sessions
type DraftCache interface {
	Set(ctx context.Context, draft *model.Draft) error
	Get(ctx context.Context, id string) (*model.Draft, error)
	Delete(ctx context.Context, id string) error
}

type draftCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftCache creates a new draft cache
func NewDraftCache(client *redis.Client) DraftCache {
	return &draftCache{
		client: client,
		ttl:    24 * time.Hour, // Abandoned drafts expire after 24h
	}
}

func (c *draftCache) key(id string) string {
	return fmt.Sprintf("draft:%s", id)
}

func (c *draftCache) Set(ctx context.Context, draft *model.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(draft.ID), data, c.ttl).Err()
}

func (c *draftCache) Get(ctx context.Context, id string) (*model.Draft, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft model.Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *draftCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
