package queries

import (
	"context"
	"log/slog"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/usecase/shared"

	"github.com/google/uuid"
)

// StatusAll is the cache/filter key used when no status filter is given.
const StatusAll = "all"

type HallQueries interface {
	List(ctx context.Context, status string) ([]*HallView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HallView, error)
	ListAllocatedTo(ctx context.Context, lecturerID uuid.UUID) ([]*HallView, error)
}

type HallReadStore interface {
	List(ctx context.Context, status *string) ([]*HallView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*HallView, error)
	ListAllocatedTo(ctx context.Context, lecturerID uuid.UUID) ([]*HallView, error)
}

// HallListCache holds listings keyed by status filter. Implementations log
// and swallow their own failures; a miss is reported as ok == false together
// with the slot to fill once the listing has been read. An empty slot means
// the listing must not be cached.
type HallListCache interface {
	GetHallList(ctx context.Context, filter string) (views []*HallView, slot string, ok bool)
	SetHallList(ctx context.Context, slot string, views []*HallView)
}

type hallQueriesImpl struct {
	readStore HallReadStore
	cache     HallListCache
}

func NewHallQueries(readStore HallReadStore, cache HallListCache) HallQueries {
	return &hallQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

// List returns halls ordered by name. An empty status means every hall.
func (q *hallQueriesImpl) List(ctx context.Context, status string) ([]*HallView, error) {
	var filter *string
	key := StatusAll
	if status != "" {
		st, err := hall.NewStatus(status)
		if err != nil {
			return nil, err
		}
		s := st.String()
		filter, key = &s, s
	}

	views, slot, ok := q.cache.GetHallList(ctx, key)
	if ok {
		return views, nil
	}

	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	q.cache.SetHallList(ctx, slot, views)
	slog.DebugContext(ctx, "hall list loaded from database", "filter", key, "count", len(views))
	return views, nil
}

func (q *hallQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HallView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateNotFound(err, hall.ErrNotFound)
	}
	return view, nil
}

func (q *hallQueriesImpl) ListAllocatedTo(ctx context.Context, lecturerID uuid.UUID) ([]*HallView, error) {
	return q.readStore.ListAllocatedTo(ctx, lecturerID)
}
