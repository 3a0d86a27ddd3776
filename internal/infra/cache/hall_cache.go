package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hall-allocation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	hallGenerationKey = "halls:gen"
	hallListKeyFormat = "halls:list:v%d:%s"
)

// HallCache stores hall listings per status filter. Keys embed a generation
// counter; bumping the counter orphans every cached listing at once and the
// orphans expire through their TTL.
type HallCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewHallCache(client redis.Cmdable, ttl time.Duration) *HallCache {
	return &HallCache{
		client: client,
		ttl:    ttl,
	}
}

// GetHallList returns the cached listing for filter. On a miss the returned
// slot is the key resolved before the caller reads the database; SetHallList
// writes to that slot so a listing read across an invalidation lands under
// the old generation, where nobody looks for it.
func (c *HallCache) GetHallList(ctx context.Context, filter string) ([]*queries.HallView, string, bool) {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		slog.WarnContext(ctx, "hall cache generation lookup failed", "filter", filter, "error", err.Error())
		return nil, "", false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "hall cache read failed", "key", key, "error", err.Error())
		}
		return nil, key, false
	}

	var views []*queries.HallView
	if err := json.Unmarshal(raw, &views); err != nil {
		slog.WarnContext(ctx, "hall cache entry is corrupt", "key", key, "error", err.Error())
		return nil, key, false
	}
	return views, key, true
}

func (c *HallCache) SetHallList(ctx context.Context, slot string, views []*queries.HallView) {
	if slot == "" {
		return
	}

	raw, err := json.Marshal(views)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode hall list for cache", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, slot, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "hall cache write failed", "key", slot, "error", err.Error())
	}
}

func (c *HallCache) InvalidateHalls(ctx context.Context) error {
	gen, err := c.client.Incr(ctx, hallGenerationKey).Result()
	if err != nil {
		return fmt.Errorf("failed to bump hall cache generation: %w", err)
	}
	slog.DebugContext(ctx, "hall cache invalidated", "generation", gen)
	return nil
}

func (c *HallCache) listKey(ctx context.Context, filter string) (string, error) {
	gen, err := c.client.Get(ctx, hallGenerationKey).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return "", err
		}
		gen = 0
	}
	return fmt.Sprintf(hallListKeyFormat, gen, filter), nil
}

// NoopHallCache is used when Redis is disabled. Every lookup misses.
type NoopHallCache struct{}

func (NoopHallCache) GetHallList(context.Context, string) ([]*queries.HallView, string, bool) {
	return nil, "", false
}

func (NoopHallCache) SetHallList(context.Context, string, []*queries.HallView) {}

func (NoopHallCache) InvalidateHalls(context.Context) error { return nil }
