//go:build unit

package response

import (
	"testing"
	"time"

	"hall-allocation/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHallViews(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	examDate := now.Add(72 * time.Hour)
	capacity := 80
	lecturerID := uuid.New()

	views := []*queries.HallView{
		{
			ID:       uuid.New(),
			Name:     "Room A",
			Location: "Block 1",
			Capacity: &capacity,
			Status:   "allocated",
			AllocatedTo: &queries.AllocationView{
				LecturerID:    lecturerID,
				LecturerName:  "Dr. Ada",
				LecturerEmail: "ada@example.com",
				ExamTitle:     "Midterm",
				ExamDate:      &examDate,
				AllocatedAt:   now,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Room B",
			Location:  "Block 2",
			Status:    "available",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	got, err := FromHallViews(views)
	require.NoError(t, err)

	want := []*HallResponse{
		{
			ID:       views[0].ID,
			Name:     "Room A",
			Location: "Block 1",
			Capacity: &capacity,
			Status:   "allocated",
			AllocatedTo: &AllocationResponse{
				LecturerID:    lecturerID,
				LecturerName:  "Dr. Ada",
				LecturerEmail: "ada@example.com",
				ExamTitle:     "Midterm",
				ExamDate:      &examDate,
				AllocatedAt:   now,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        views[1].ID,
			Name:      "Room B",
			Location:  "Block 2",
			Status:    "available",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromHallViews mismatch (-want +got):\n%s", diff)
	}
}

func TestFromHallViews_EmptyIsNotNil(t *testing.T) {
	got, err := FromHallViews([]*queries.HallView{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFromHallRequestViews_DeletedHall(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	views := []*queries.HallRequestView{{
		ID:            uuid.New(),
		LecturerID:    uuid.New(),
		LecturerName:  "Dr. Ada",
		LecturerEmail: "ada@example.com",
		HallID:        uuid.New(),
		ExamTitle:     "Midterm",
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}}

	got, err := FromHallRequestViews(views)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Hall)
	assert.Equal(t, views[0].HallID, got[0].HallID)
	assert.Equal(t, "Midterm", got[0].ExamTitle)
}
