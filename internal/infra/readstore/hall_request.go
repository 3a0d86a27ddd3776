package readstore

import (
	"context"

	"hall-allocation/internal/infra"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/pkg/pgconv"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HallRequestReadQueries interface {
	ListPendingHallRequestViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPendingHallRequestViewsRow, error)
	ListHallRequestViewsByLecturer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHallRequestViewsByLecturerParams) ([]sqlc.ListHallRequestViewsByLecturerRow, error)
}

type HallRequestReadStore struct {
	queries HallRequestReadQueries
	db      sqlc.DBTX
}

func NewHallRequestReadStore(queries HallRequestReadQueries, db sqlc.DBTX) *HallRequestReadStore {
	return &HallRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HallRequestReadStore) ListPending(ctx context.Context) ([]*queries.HallRequestView, error) {
	rows, err := r.queries.ListPendingHallRequestViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending hall requests", err)
	}
	views := make([]*queries.HallRequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toHallRequestView(hallRequestRow(row)))
	}
	return views, nil
}

func (r *HallRequestReadStore) ListByLecturer(ctx context.Context, lecturerID uuid.UUID, status *string) ([]*queries.HallRequestView, error) {
	rows, err := r.queries.ListHallRequestViewsByLecturer(ctx, r.db, sqlc.ListHallRequestViewsByLecturerParams{
		LecturerID: lecturerID,
		Status:     pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hall requests by lecturer", err)
	}
	views := make([]*queries.HallRequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toHallRequestView(hallRequestRow(row)))
	}
	return views, nil
}

type hallRequestRow struct {
	ID            uuid.UUID
	LecturerID    uuid.UUID
	HallID        uuid.UUID
	ExamTitle     string
	ExamDate      pgtype.Timestamptz
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
	LecturerName  string
	LecturerEmail string
	HallName      pgtype.Text
	HallLocation  pgtype.Text
	HallCapacity  pgtype.Int4
	HallStatus    pgtype.Text
}

// toHallRequestView leaves Hall nil when the LEFT JOIN found no hall.
func toHallRequestView(row hallRequestRow) *queries.HallRequestView {
	view := &queries.HallRequestView{
		ID:            row.ID,
		LecturerID:    row.LecturerID,
		LecturerName:  row.LecturerName,
		LecturerEmail: row.LecturerEmail,
		HallID:        row.HallID,
		ExamTitle:     row.ExamTitle,
		ExamDate:      pgconv.TimePtrFromPgtype(row.ExamDate),
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.HallName.Valid {
		view.Hall = &queries.HallSummary{
			ID:       row.HallID,
			Name:     row.HallName.String,
			Location: row.HallLocation.String,
			Capacity: pgconv.IntPtrFromPgtype(row.HallCapacity),
			Status:   row.HallStatus.String,
		}
	}
	return view
}
