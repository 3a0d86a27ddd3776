package queries

import (
	"context"

	"hall-allocation/internal/domain/hallrequest"

	"github.com/google/uuid"
)

type HallRequestQueries interface {
	ListPending(ctx context.Context) ([]*HallRequestView, error)
	ListByLecturer(ctx context.Context, lecturerID uuid.UUID, status string) ([]*HallRequestView, error)
}

type HallRequestReadStore interface {
	ListPending(ctx context.Context) ([]*HallRequestView, error)
	ListByLecturer(ctx context.Context, lecturerID uuid.UUID, status *string) ([]*HallRequestView, error)
}

type hallRequestQueriesImpl struct {
	readStore HallRequestReadStore
}

func NewHallRequestQueries(readStore HallRequestReadStore) HallRequestQueries {
	return &hallRequestQueriesImpl{readStore: readStore}
}

func (q *hallRequestQueriesImpl) ListPending(ctx context.Context) ([]*HallRequestView, error) {
	return q.readStore.ListPending(ctx)
}

// ListByLecturer returns every request of the lecturer when status is empty.
func (q *hallRequestQueriesImpl) ListByLecturer(ctx context.Context, lecturerID uuid.UUID, status string) ([]*HallRequestView, error) {
	var filter *string
	if status != "" {
		st, err := hallrequest.NewStatus(status)
		if err != nil {
			return nil, err
		}
		s := st.String()
		filter = &s
	}
	return q.readStore.ListByLecturer(ctx, lecturerID, filter)
}
