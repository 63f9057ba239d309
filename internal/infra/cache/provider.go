// Package cache keeps recently read catalog pages and products in Redis.
package cache

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/lifecycle"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the product cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed ProductCache, or a no-op cache when redis is not configured.
func New(params Params) service.ProductCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Product cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return newRedisProductCache(client, cfg.TTL)
}

type noopCache struct{}

func (noopCache) GetPage(context.Context, entity.PageRequest) (*entity.Page[*entity.Product], bool, error) {
	return nil, false, nil
}

func (noopCache) SetPage(context.Context, entity.PageRequest, *entity.Page[*entity.Product]) error {
	return nil
}

func (noopCache) GetProduct(context.Context, int64) (*entity.Product, bool, error) {
	return nil, false, nil
}

func (noopCache) SetProduct(context.Context, *entity.Product) error {
	return nil
}

func (noopCache) Invalidate(context.Context) error {
	return nil
}
