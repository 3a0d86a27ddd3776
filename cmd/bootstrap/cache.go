package bootstrap

import (
	"context"
	"log/slog"

	"hall-allocation/internal/infra/cache"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/usecase/queries"
	"hall-allocation/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewHallCache,
	),
)

type HallCacheResult struct {
	fx.Out

	Lists       queries.HallListCache
	Invalidator shared.HallCacheInvalidator
}

// NewHallCache falls back to a cache that always misses when Redis is
// disabled.
func NewHallCache(lc fx.Lifecycle, cfg config.Config) (HallCacheResult, error) {
	if !cfg.Redis.Enabled {
		slog.Info("hall cache disabled")
		noop := cache.NoopHallCache{}
		return HallCacheResult{Lists: noop, Invalidator: noop}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return HallCacheResult{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	hc := cache.NewHallCache(client, cfg.Redis.HallListTTL)
	slog.Info("hall cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.HallListTTL.String())
	return HallCacheResult{Lists: hc, Invalidator: hc}, nil
}
