//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/usecase/queries"
	"hall-allocation/tests/common/builder"
	queriesmock "hall-allocation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHallRequestQueries_ListByLecturer(t *testing.T) {
	lecturerID := uuid.New()
	pending := "pending"

	tests := []struct {
		name       string
		status     string
		wantFilter *string
		wantErr    error
	}{
		{name: "絞り込みなしは全件", status: "", wantFilter: nil},
		{name: "保留中のみ", status: "pending", wantFilter: &pending},
		{name: "未知の状態はVALIDATION", status: "unknown", wantErr: hallrequest.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			readStore := queriesmock.NewMockHallRequestReadStore(ctrl)
			uc := queries.NewHallRequestQueries(readStore)

			views := []*queries.HallRequestView{builder.NewHallRequestBuilder().WithLecturerID(lecturerID).BuildView()}
			if tt.wantErr == nil {
				readStore.EXPECT().ListByLecturer(gomock.Any(), lecturerID, tt.wantFilter).Return(views, nil)
			}

			got, err := uc.ListByLecturer(context.Background(), lecturerID, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, views, got)
		})
	}
}

func TestHallRequestQueries_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockHallRequestReadStore(ctrl)
	uc := queries.NewHallRequestQueries(readStore)

	views := []*queries.HallRequestView{
		builder.NewHallRequestBuilder().WithExamTitle("Midterm").BuildView(),
		builder.NewHallRequestBuilder().WithExamTitle("Final").BuildView(),
	}
	readStore.EXPECT().ListPending(gomock.Any()).Return(views, nil)

	got, err := uc.ListPending(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
