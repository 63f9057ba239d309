package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "products:"
	defaultTTL  = 5 * time.Minute
	scanBatch   = 500
	deleteBatch = 500
)

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisProductCache(client *redis.Client, ttl time.Duration) *redisProductCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisProductCache{client: client, ttl: ttl}
}

func pageKey(req entity.PageRequest) string {
	return fmt.Sprintf("%spage:%d:%d:%s:%s", keyPrefix, req.Page, req.Size, req.Sort.Property, req.Sort.Direction)
}

func productKey(id int64) string {
	return fmt.Sprintf("%sid:%d", keyPrefix, id)
}

func (c *redisProductCache) GetPage(ctx context.Context, req entity.PageRequest) (*entity.Page[*entity.Product], bool, error) {
	page := new(entity.Page[*entity.Product])
	found, err := c.get(ctx, pageKey(req), page)
	if !found {
		return nil, false, err
	}

	return page, true, nil
}

func (c *redisProductCache) SetPage(ctx context.Context, req entity.PageRequest, page *entity.Page[*entity.Product]) error {
	return c.set(ctx, pageKey(req), page)
}

func (c *redisProductCache) GetProduct(ctx context.Context, id int64) (*entity.Product, bool, error) {
	product := new(entity.Product)
	found, err := c.get(ctx, productKey(id), product)
	if !found {
		return nil, false, err
	}

	return product, true, nil
}

func (c *redisProductCache) SetProduct(ctx context.Context, product *entity.Product) error {
	return c.set(ctx, productKey(product.ID), product)
}

// Invalidate deletes every key under the products: prefix.
func (c *redisProductCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return errors.Wrap(err, "failed to scan product cache keys")
		}

		for start := 0; start < len(keys); start += deleteBatch {
			end := min(start+deleteBatch, len(keys))
			if err := c.client.Del(ctx, keys[start:end]...).Err(); err != nil {
				return errors.Wrap(err, "failed to evict product cache keys")
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *redisProductCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", key)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// A stale encoding is treated as a miss and overwritten on the next fill.
		return false, nil
	}

	return true, nil
}

func (c *redisProductCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}
