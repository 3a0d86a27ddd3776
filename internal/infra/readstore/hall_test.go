//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hall-allocation/internal/infra"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHallReadQueries struct {
	mock.Mock
}

func (m *MockHallReadQueries) ListHallViews(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListHallViewsRow, error) {
	args := m.Called(ctx, db, status)
	return args.Get(0).([]sqlc.ListHallViewsRow), args.Error(1)
}

func (m *MockHallReadQueries) GetHallViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHallViewByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetHallViewByIDRow), args.Error(1)
}

func (m *MockHallReadQueries) ListHallViewsByLecturer(ctx context.Context, db sqlc.DBTX, lecturerID uuid.UUID) ([]sqlc.ListHallViewsByLecturerRow, error) {
	args := m.Called(ctx, db, lecturerID)
	return args.Get(0).([]sqlc.ListHallViewsByLecturerRow), args.Error(1)
}

var (
	fixedTime  = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	fixedTS    = pgtype.Timestamptz{Time: fixedTime, Valid: true}
	lecturerID = uuid.New()
)

func availableHallRow() sqlc.ListHallViewsRow {
	return sqlc.ListHallViewsRow{
		ID:        uuid.New(),
		Name:      "Room B",
		Location:  "Block 2",
		Status:    "available",
		CreatedAt: fixedTS,
		UpdatedAt: fixedTS,
	}
}

func allocatedHallRow() sqlc.ListHallViewsRow {
	return sqlc.ListHallViewsRow{
		ID:                  uuid.New(),
		Name:                "Room A",
		Location:            "Block 1",
		Capacity:            pgtype.Int4{Int32: 120, Valid: true},
		Status:              "allocated",
		AllocatedLecturerID: pgtype.UUID{Bytes: lecturerID, Valid: true},
		AllocatedExamTitle:  pgtype.Text{String: "Midterm", Valid: true},
		AllocatedAt:         fixedTS,
		CreatedAt:           fixedTS,
		UpdatedAt:           fixedTS,
		LecturerName:        pgtype.Text{String: "Dr. Smith", Valid: true},
		LecturerEmail:       pgtype.Text{String: "smith@example.com", Valid: true},
	}
}

func TestHallList(t *testing.T) {
	t.Run("views carry allocation only for allocated halls", func(t *testing.T) {
		allocated := allocatedHallRow()
		available := availableHallRow()

		mockQueries := new(MockHallReadQueries)
		mockQueries.On("ListHallViews", mock.Anything, mock.Anything, pgtype.Text{}).
			Return([]sqlc.ListHallViewsRow{allocated, available}, nil)

		views, err := NewHallReadStore(mockQueries, nil).List(context.Background(), nil)
		require.NoError(t, err)

		capacity := 120
		want := []*queries.HallView{
			{
				ID:       allocated.ID,
				Name:     "Room A",
				Location: "Block 1",
				Capacity: &capacity,
				Status:   "allocated",
				AllocatedTo: &queries.AllocationView{
					LecturerID:    lecturerID,
					LecturerName:  "Dr. Smith",
					LecturerEmail: "smith@example.com",
					ExamTitle:     "Midterm",
					AllocatedAt:   fixedTime,
				},
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
			{
				ID:        available.ID,
				Name:      "Room B",
				Location:  "Block 2",
				Status:    "available",
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		}
		if diff := cmp.Diff(want, views); diff != "" {
			t.Errorf("HallView mismatch (-want +got):\n%s", diff)
		}
		mockQueries.AssertExpectations(t)
	})

	t.Run("status filter is passed through", func(t *testing.T) {
		status := "available"
		mockQueries := new(MockHallReadQueries)
		mockQueries.On("ListHallViews", mock.Anything, mock.Anything, pgtype.Text{String: "available", Valid: true}).
			Return([]sqlc.ListHallViewsRow{}, nil)

		views, err := NewHallReadStore(mockQueries, nil).List(context.Background(), &status)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockHallReadQueries)
		mockQueries.On("ListHallViews", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListHallViewsRow(nil), assert.AnError)

		views, err := NewHallReadStore(mockQueries, nil).List(context.Background(), nil)

		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestHallFindByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		row := sqlc.GetHallViewByIDRow(allocatedHallRow())
		mockQueries := new(MockHallReadQueries)
		mockQueries.On("GetHallViewByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewHallReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		require.NotNil(t, view.AllocatedTo)
		assert.Equal(t, "Dr. Smith", view.AllocatedTo.LecturerName)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockHallReadQueries)
		mockQueries.On("GetHallViewByID", mock.Anything, mock.Anything, id).Return(sqlc.GetHallViewByIDRow{}, pgx.ErrNoRows)

		view, err := NewHallReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestHallListAllocatedTo(t *testing.T) {
	base := allocatedHallRow()
	row := sqlc.ListHallViewsByLecturerRow{
		ID:                  base.ID,
		Name:                base.Name,
		Location:            base.Location,
		Capacity:            base.Capacity,
		Status:              base.Status,
		AllocatedLecturerID: base.AllocatedLecturerID,
		AllocatedExamTitle:  base.AllocatedExamTitle,
		AllocatedAt:         base.AllocatedAt,
		CreatedAt:           base.CreatedAt,
		UpdatedAt:           base.UpdatedAt,
		LecturerName:        "Dr. Smith",
		LecturerEmail:       "smith@example.com",
	}

	mockQueries := new(MockHallReadQueries)
	mockQueries.On("ListHallViewsByLecturer", mock.Anything, mock.Anything, lecturerID).
		Return([]sqlc.ListHallViewsByLecturerRow{row}, nil)

	views, err := NewHallReadStore(mockQueries, nil).ListAllocatedTo(context.Background(), lecturerID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].AllocatedTo)
	assert.Equal(t, lecturerID, views[0].AllocatedTo.LecturerID)
	assert.Equal(t, "smith@example.com", views[0].AllocatedTo.LecturerEmail)
	assert.Nil(t, views[0].AllocatedTo.ExamDate)
}
