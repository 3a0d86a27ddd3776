//go:build unit

package repository

import (
	"context"
	"testing"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/infra"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHallWriteQueries struct {
	mock.Mock
}

func (m *MockHallWriteQueries) CreateHall(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHallParams) (sqlc.Halls, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Halls), args.Error(1)
}

func (m *MockHallWriteQueries) GetHallByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Halls, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Halls), args.Error(1)
}

func (m *MockHallWriteQueries) UpdateHallDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHallDetailsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHallWriteQueries) UpdateHallAllocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHallAllocationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHallWriteQueries) DeleteHall(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestHallCreate(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
		},
		{
			name:      "duplicate name",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "halls_name_key"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := builder.NewHallBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries := new(MockHallWriteQueries)
			mockQueries.On("CreateHall", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateHallParams) bool {
				return p.ID == h.ID() &&
					p.Name == "Room A" &&
					p.Status == "available" &&
					p.Capacity == pgtype.Int4{Int32: 120, Valid: true}
			})).Return(sqlc.Halls{}, tt.mockError)

			err = NewHallRepository(mockQueries).Create(context.Background(), nil, h)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestHallFindByIDForUpdate(t *testing.T) {
	lecturerID := uuid.New()

	t.Run("allocated row is restored with its allocation", func(t *testing.T) {
		row := builder.NewHallBuilder().AllocatedTo(lecturerID, "Midterm").BuildInfra()

		mockQueries := new(MockHallWriteQueries)
		mockQueries.On("GetHallByIDForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		h, err := NewHallRepository(mockQueries).FindByIDForUpdate(context.Background(), nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, h.ID())
		assert.Equal(t, hall.StatusAllocated, h.Status())
		require.NotNil(t, h.Allocation())
		assert.Equal(t, lecturerID, h.Allocation().LecturerID())
		assert.Equal(t, "Midterm", h.Allocation().ExamTitle())
	})

	t.Run("missing row is NOT_FOUND", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockHallWriteQueries)
		mockQueries.On("GetHallByIDForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Halls{}, pgx.ErrNoRows)

		h, err := NewHallRepository(mockQueries).FindByIDForUpdate(context.Background(), nil, id)

		assert.Nil(t, h)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("inconsistent row is DB_FAILURE", func(t *testing.T) {
		row := builder.NewHallBuilder().BuildInfra()
		row.Status = "allocated"

		mockQueries := new(MockHallWriteQueries)
		mockQueries.On("GetHallByIDForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		h, err := NewHallRepository(mockQueries).FindByIDForUpdate(context.Background(), nil, row.ID)

		assert.Nil(t, h)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestHallUpdateAllocation(t *testing.T) {
	t.Run("deallocated hall clears every allocation column", func(t *testing.T) {
		h, err := builder.NewHallBuilder().AllocatedTo(uuid.New(), "Midterm").BuildDomain()
		require.NoError(t, err)
		h.Deallocate(h.UpdatedAt())

		mockQueries := new(MockHallWriteQueries)
		mockQueries.On("UpdateHallAllocation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateHallAllocationParams) bool {
			return p.ID == h.ID() &&
				p.Status == "available" &&
				!p.AllocatedLecturerID.Valid &&
				!p.AllocatedExamTitle.Valid &&
				!p.AllocatedExamDate.Valid &&
				!p.AllocatedAt.Valid
		})).Return(int64(1), nil)

		err = NewHallRepository(mockQueries).UpdateAllocation(context.Background(), nil, h)

		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("zero rows is NOT_FOUND", func(t *testing.T) {
		h, err := builder.NewHallBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries := new(MockHallWriteQueries)
		mockQueries.On("UpdateHallAllocation", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err = NewHallRepository(mockQueries).UpdateAllocation(context.Background(), nil, h)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestHallUpdateDetails(t *testing.T) {
	h, err := builder.NewHallBuilder().WithoutCapacity().BuildDomain()
	require.NoError(t, err)

	mockQueries := new(MockHallWriteQueries)
	mockQueries.On("UpdateHallDetails", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateHallDetailsParams) bool {
		return p.ID == h.ID() && p.Name == "Room A" && !p.Capacity.Valid
	})).Return(int64(1), nil)

	err = NewHallRepository(mockQueries).UpdateDetails(context.Background(), nil, h)

	assert.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestHallDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "not found", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			mockQueries := new(MockHallWriteQueries)
			mockQueries.On("DeleteHall", mock.Anything, mock.Anything, id).Return(tt.affected, tt.mockErr)

			err := NewHallRepository(mockQueries).Delete(context.Background(), nil, id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
