package response

import (
	"time"

	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
)

type HallSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Capacity *int      `json:"capacity,omitempty"`
	Status   string    `json:"status"`
}

// HallRequestResponse has no hall object when the hall was deleted.
type HallRequestResponse struct {
	ID            uuid.UUID            `json:"id"`
	LecturerID    uuid.UUID            `json:"lecturer_id"`
	LecturerName  string               `json:"lecturer_name"`
	LecturerEmail string               `json:"lecturer_email"`
	HallID        uuid.UUID            `json:"hall_id"`
	Hall          *HallSummaryResponse `json:"hall,omitempty"`
	ExamTitle     string               `json:"exam_title"`
	ExamDate      *time.Time           `json:"exam_date,omitempty"`
	Status        string               `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func FromHallRequestViews(vs []*queries.HallRequestView) ([]*HallRequestResponse, error) {
	return copySlice[HallRequestResponse](vs)
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
