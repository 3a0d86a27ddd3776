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

type HallReadQueries interface {
	ListHallViews(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListHallViewsRow, error)
	GetHallViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHallViewByIDRow, error)
	ListHallViewsByLecturer(ctx context.Context, db sqlc.DBTX, lecturerID uuid.UUID) ([]sqlc.ListHallViewsByLecturerRow, error)
}

type HallReadStore struct {
	queries HallReadQueries
	db      sqlc.DBTX
}

func NewHallReadStore(queries HallReadQueries, db sqlc.DBTX) *HallReadStore {
	return &HallReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HallReadStore) List(ctx context.Context, status *string) ([]*queries.HallView, error) {
	rows, err := r.queries.ListHallViews(ctx, r.db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls", err)
	}
	views := make([]*queries.HallView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toHallView(hallRow(row)))
	}
	return views, nil
}

func (r *HallReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HallView, error) {
	row, err := r.queries.GetHallViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hall view by id", err)
	}
	return toHallView(hallRow(row)), nil
}

func (r *HallReadStore) ListAllocatedTo(ctx context.Context, lecturerID uuid.UUID) ([]*queries.HallView, error) {
	rows, err := r.queries.ListHallViewsByLecturer(ctx, r.db, lecturerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls allocated to lecturer", err)
	}
	views := make([]*queries.HallView, 0, len(rows))
	for _, row := range rows {
		hr := hallRow{
			ID:                  row.ID,
			Name:                row.Name,
			Location:            row.Location,
			Capacity:            row.Capacity,
			Status:              row.Status,
			AllocatedLecturerID: row.AllocatedLecturerID,
			AllocatedExamTitle:  row.AllocatedExamTitle,
			AllocatedExamDate:   row.AllocatedExamDate,
			AllocatedAt:         row.AllocatedAt,
			CreatedAt:           row.CreatedAt,
			UpdatedAt:           row.UpdatedAt,
			LecturerName:        pgconv.StringToPgtype(row.LecturerName),
			LecturerEmail:       pgconv.StringToPgtype(row.LecturerEmail),
		}
		views = append(views, toHallView(hr))
	}
	return views, nil
}

// hallRow is the column set shared by every hall view query.
type hallRow struct {
	ID                  uuid.UUID
	Name                string
	Location            string
	Capacity            pgtype.Int4
	Status              string
	AllocatedLecturerID pgtype.UUID
	AllocatedExamTitle  pgtype.Text
	AllocatedExamDate   pgtype.Timestamptz
	AllocatedAt         pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
	LecturerName        pgtype.Text
	LecturerEmail       pgtype.Text
}

func toHallView(row hallRow) *queries.HallView {
	view := &queries.HallView{
		ID:        row.ID,
		Name:      row.Name,
		Location:  row.Location,
		Capacity:  pgconv.IntPtrFromPgtype(row.Capacity),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if lecturerID := pgconv.UUIDPtrFromPgtype(row.AllocatedLecturerID); lecturerID != nil {
		view.AllocatedTo = &queries.AllocationView{
			LecturerID:    *lecturerID,
			LecturerName:  row.LecturerName.String,
			LecturerEmail: row.LecturerEmail.String,
			ExamTitle:     row.AllocatedExamTitle.String,
			ExamDate:      pgconv.TimePtrFromPgtype(row.AllocatedExamDate),
			AllocatedAt:   pgconv.TimeFromPgtype(row.AllocatedAt),
		}
	}
	return view
}
