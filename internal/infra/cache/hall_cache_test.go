//go:build unit

package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestHallCache_UnavailableRedis(t *testing.T) {
	ctx := context.Background()
	c := NewHallCache(unreachableClient(t), time.Minute)

	t.Run("get misses instead of failing", func(t *testing.T) {
		views, slot, ok := c.GetHallList(ctx, queries.StatusAll)
		assert.False(t, ok)
		assert.Nil(t, views)
		assert.Empty(t, slot)
	})

	t.Run("set does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			c.SetHallList(ctx, "halls:list:v0:all", []*queries.HallView{{Name: "Room A"}})
		})
	})

	t.Run("invalidate reports the error", func(t *testing.T) {
		err := c.InvalidateHalls(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hall cache generation")
	})
}

func TestNoopHallCache(t *testing.T) {
	ctx := context.Background()
	var c NoopHallCache

	c.SetHallList(ctx, "available", []*queries.HallView{{Name: "Room A"}})
	views, _, ok := c.GetHallList(ctx, "available")

	assert.False(t, ok)
	assert.Nil(t, views)
	assert.NoError(t, c.InvalidateHalls(ctx))
}

// memoryRedis implements the commands HallCache uses; anything else panics
// through the nil embedded interface.
type memoryRedis struct {
	redis.Cmdable
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	if v, ok := m.data[key]; ok {
		_, _ = fmt.Sscan(v, &n)
	}
	n++
	m.data[key] = fmt.Sprint(n)
	return redis.NewIntResult(n, nil)
}

// committingReadStore returns the rows it read, then lets an allocation
// commit and invalidate the cache before the caller stores the listing.
type committingReadStore struct {
	queries.HallReadStore
	hallID    uuid.UUID
	status    string
	afterRead func()
}

func (s *committingReadStore) List(_ context.Context, _ *string) ([]*queries.HallView, error) {
	snapshot := []*queries.HallView{{ID: s.hallID, Name: "Room A", Status: s.status}}
	if hook := s.afterRead; hook != nil {
		s.afterRead = nil
		hook()
	}
	return snapshot, nil
}

func TestHallCache_InvalidationDuringRead(t *testing.T) {
	ctx := context.Background()
	c := NewHallCache(newMemoryRedis(), time.Minute)
	store := &committingReadStore{hallID: uuid.New(), status: "available"}
	store.afterRead = func() {
		store.status = "allocated"
		require.NoError(t, c.InvalidateHalls(ctx))
	}
	uc := queries.NewHallQueries(store, c)

	first, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "available", first[0].Status)

	second, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "allocated", second[0].Status, "listing read before the invalidation must not be served after it")
}

func TestHallCache_StoresUnderLookupGeneration(t *testing.T) {
	ctx := context.Background()
	rdb := newMemoryRedis()
	c := NewHallCache(rdb, time.Minute)

	_, slot, ok := c.GetHallList(ctx, "available")
	require.False(t, ok)
	assert.Equal(t, "halls:list:v0:available", slot)

	require.NoError(t, c.InvalidateHalls(ctx))
	c.SetHallList(ctx, slot, []*queries.HallView{{Name: "Room A"}})

	_, slot, ok = c.GetHallList(ctx, "available")
	assert.False(t, ok)
	assert.Equal(t, "halls:list:v1:available", slot)

	c.SetHallList(ctx, slot, []*queries.HallView{{Name: "Room A"}})
	views, _, ok := c.GetHallList(ctx, "available")
	require.True(t, ok)
	assert.Equal(t, "Room A", views[0].Name)
}
